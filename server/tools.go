package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bioseqkit/bioseq/orf"
	"github.com/bioseqkit/bioseq/toolkit"
)

type reverseComplementTool struct{ p toolkit.Provider }

func (t *reverseComplementTool) Handle() mcp.Tool {
	return mcp.NewTool("reverse_complement",
		mcp.WithDescription("Returns the reverse complement of a DNA or RNA sequence."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("DNA or RNA sequence string")),
	)
}

func (t *reverseComplementTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	rc, err := t.p.ReverseComplement(seq)
	if err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(rc), nil
}

type transcribeTool struct{ p toolkit.Provider }

func (t *transcribeTool) Handle() mcp.Tool {
	return mcp.NewTool("transcribe",
		mcp.WithDescription("Transcribes a DNA sequence to RNA (replaces T with U)."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("DNA sequence string")),
	)
}

func (t *transcribeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	rna, err := t.p.Transcribe(seq)
	if err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(rna), nil
}

type backTranscribeTool struct{ p toolkit.Provider }

func (t *backTranscribeTool) Handle() mcp.Tool {
	return mcp.NewTool("back_transcribe",
		mcp.WithDescription("Back-transcribes an RNA sequence to DNA (replaces U with T)."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("RNA sequence string")),
	)
}

func (t *backTranscribeTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	dna, err := t.p.BackTranscribe(seq)
	if err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(dna), nil
}

type translateTool struct{ p toolkit.Provider }

func (t *translateTool) Handle() mcp.Tool {
	return mcp.NewTool("translate",
		mcp.WithDescription("Translates a DNA or RNA sequence to protein sequence."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("DNA or RNA sequence string")),
		mcp.WithString("table",
			mcp.Description("Genetic code table name or NCBI id (default: Standard)")),
	)
}

func (t *translateTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	table := request.GetString("table", "Standard")
	prot, err := t.p.Translate(seq, table)
	if err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(prot), nil
}

type gcContentTool struct{ p toolkit.Provider }

func (t *gcContentTool) Handle() mcp.Tool {
	return mcp.NewTool("gc_content",
		mcp.WithDescription("Calculates the GC content (percentage) of a DNA/RNA sequence."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("DNA or RNA sequence string")),
	)
}

func (t *gcContentTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	gc, err := t.p.GCContent(seq)
	if err != nil {
		return failure(err)
	}
	return number(gc), nil
}

type molecularWeightTool struct{ p toolkit.Provider }

func (t *molecularWeightTool) Handle() mcp.Tool {
	return mcp.NewTool("molecular_weight",
		mcp.WithDescription("Calculates molecular weight of a sequence in Daltons."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("Sequence string")),
		mcp.WithString("seq_type",
			mcp.Description("Type of sequence - DNA, RNA, or protein (default: DNA)")),
	)
}

func (t *molecularWeightTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	seqType := request.GetString("seq_type", "DNA")
	mw, err := t.p.MolecularWeight(seq, seqType)
	if err != nil {
		return failure(err)
	}
	return number(mw), nil
}

type proteinAnalysisTool struct{ p toolkit.Provider }

func (t *proteinAnalysisTool) Handle() mcp.Tool {
	return mcp.NewTool("protein_analysis",
		mcp.WithDescription("Comprehensive protein sequence analysis including molecular weight, "+
			"aromaticity, instability index, isoelectric point, and secondary structure."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("Protein sequence string")),
	)
}

func (t *proteinAnalysisTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	analysis, err := t.p.AnalyzeProtein(seq)
	if err != nil {
		return failure(err)
	}
	return jsonResult(analysis)
}

type convertFormatTool struct{ p toolkit.Provider }

func (t *convertFormatTool) Handle() mcp.Tool {
	return mcp.NewTool("convert_sequence_format",
		mcp.WithDescription("Converts between sequence file formats (fasta, genbank, embl)."),
		mcp.WithString("sequence_data", mcp.Required(),
			mcp.Description("Sequence data in the input format")),
		mcp.WithString("input_format", mcp.Required(),
			mcp.Description("Input format (fasta, genbank, embl)")),
		mcp.WithString("output_format", mcp.Required(),
			mcp.Description("Output format (fasta, genbank, embl)")),
	)
}

func (t *convertFormatTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := request.RequireString("sequence_data")
	if err != nil {
		return failure(err)
	}
	inFormat, err := request.RequireString("input_format")
	if err != nil {
		return failure(err)
	}
	outFormat, err := request.RequireString("output_format")
	if err != nil {
		return failure(err)
	}
	out, err := t.p.ConvertFormat(data, inFormat, outFormat)
	if err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(out), nil
}

type findMotifTool struct{ p toolkit.Provider }

func (t *findMotifTool) Handle() mcp.Tool {
	return mcp.NewTool("find_motif",
		mcp.WithDescription("Finds all occurrences of a motif in a sequence (1-indexed positions)."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("DNA, RNA, or protein sequence")),
		mcp.WithString("motif", mcp.Required(),
			mcp.Description("Motif pattern to search for")),
	)
}

func (t *findMotifTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	motif, err := request.RequireString("motif")
	if err != nil {
		return failure(err)
	}
	positions, err := t.p.FindMotif(seq, motif)
	if err != nil {
		return failure(err)
	}
	return jsonResult(positions)
}

type findORFsTool struct{ p toolkit.Provider }

func (t *findORFsTool) Handle() mcp.Tool {
	return mcp.NewTool("find_orfs",
		mcp.WithDescription("Finds Open Reading Frames (ORFs) in a DNA sequence across all six reading frames."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("DNA sequence")),
		mcp.WithNumber("min_length",
			mcp.Description("Minimum ORF length in nucleotides (default: 100)")),
	)
}

func (t *findORFsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	minLength := request.GetInt("min_length", orf.DefaultMinLength)
	orfs, err := t.p.FindORFs(seq, minLength)
	if err != nil {
		return failure(err)
	}
	return jsonResult(orfs)
}

type pairwiseAlignmentTool struct{ p toolkit.Provider }

func (t *pairwiseAlignmentTool) Handle() mcp.Tool {
	return mcp.NewTool("pairwise_alignment",
		mcp.WithDescription("Performs pairwise sequence alignment using Needleman-Wunsch (global) "+
			"or Smith-Waterman (local) algorithm."),
		mcp.WithString("seq1", mcp.Required(),
			mcp.Description("First sequence")),
		mcp.WithString("seq2", mcp.Required(),
			mcp.Description("Second sequence")),
		mcp.WithString("alignment_type",
			mcp.Description("global or local (default: global)")),
	)
}

func (t *pairwiseAlignmentTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq1, err := request.RequireString("seq1")
	if err != nil {
		return failure(err)
	}
	seq2, err := request.RequireString("seq2")
	if err != nil {
		return failure(err)
	}
	mode := request.GetString("alignment_type", "global")
	result, err := t.p.Align(seq1, seq2, mode)
	if err != nil {
		return failure(err)
	}
	return jsonResult(result)
}

type blastSearchTool struct{ p toolkit.Provider }

func (t *blastSearchTool) Handle() mcp.Tool {
	return mcp.NewTool("ncbi_blast_search",
		mcp.WithDescription("Performs NCBI BLAST search for a sequence and summarizes the top hits."),
		mcp.WithString("sequence", mcp.Required(),
			mcp.Description("Query sequence")),
		mcp.WithString("database",
			mcp.Description("BLAST database (default: nt)")),
		mcp.WithString("program",
			mcp.Description("BLAST program (default: blastn)")),
	)
}

func (t *blastSearchTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq, err := request.RequireString("sequence")
	if err != nil {
		return failure(err)
	}
	database := request.GetString("database", "nt")
	program := request.GetString("program", "blastn")
	hits, err := t.p.SearchRemoteDatabase(ctx, seq, database, program)
	if err != nil {
		return failure(err)
	}
	return jsonResult(hits)
}

type sequenceDistanceTool struct{ p toolkit.Provider }

func (t *sequenceDistanceTool) Handle() mcp.Tool {
	return mcp.NewTool("calculate_sequence_distance",
		mcp.WithDescription("Calculates Hamming distance between two sequences of equal length "+
			"(proportion of differing positions)."),
		mcp.WithString("seq1", mcp.Required(),
			mcp.Description("First sequence")),
		mcp.WithString("seq2", mcp.Required(),
			mcp.Description("Second sequence")),
	)
}

func (t *sequenceDistanceTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seq1, err := request.RequireString("seq1")
	if err != nil {
		return failure(err)
	}
	seq2, err := request.RequireString("seq2")
	if err != nil {
		return failure(err)
	}
	d, err := t.p.Distance(seq1, seq2)
	if err != nil {
		return failure(err)
	}
	return number(d), nil
}
