// Package toolkit defines the capability interface the tool server
// depends on and its concrete implementation backed by the bio, orf,
// protein, align, seqio and blast packages. Keeping the server on the
// interface allows substituting fakes in tests.
package toolkit

import (
	"context"

	"github.com/bioseqkit/bioseq/align"
	"github.com/bioseqkit/bioseq/bio"
	"github.com/bioseqkit/bioseq/blast"
	"github.com/bioseqkit/bioseq/orf"
	"github.com/bioseqkit/bioseq/protein"
	"github.com/bioseqkit/bioseq/seqio"
)

// Provider is the sequence analysis capability surface. Every method
// is stateless and safe for concurrent use.
type Provider interface {
	ReverseComplement(sequence string) (string, error)
	Transcribe(sequence string) (string, error)
	BackTranscribe(sequence string) (string, error)
	Translate(sequence, table string) (string, error)
	GCContent(sequence string) (float64, error)
	MolecularWeight(sequence, seqType string) (float64, error)
	AnalyzeProtein(sequence string) (*protein.Analysis, error)
	ConvertFormat(data, inFormat, outFormat string) (string, error)
	FindMotif(sequence, motif string) ([]int, error)
	FindORFs(sequence string, minLength int) ([]orf.ORF, error)
	Align(seq1, seq2, mode string) (*align.Result, error)
	SearchRemoteDatabase(ctx context.Context, sequence, database, program string) ([]blast.Hit, error)
	Distance(seq1, seq2 string) (float64, error)
}

// SeqKit is the production Provider.
type SeqKit struct {
	blast *blast.Client
}

// New creates a SeqKit. blastClient may be nil when remote search is
// not configured; SearchRemoteDatabase then builds a default client
// on first use.
func New(blastClient *blast.Client) *SeqKit {
	if blastClient == nil {
		blastClient = blast.NewClient()
	}
	return &SeqKit{blast: blastClient}
}

func (k *SeqKit) ReverseComplement(sequence string) (string, error) {
	return bio.ReverseComplement(sequence)
}

func (k *SeqKit) Transcribe(sequence string) (string, error) {
	return bio.Transcribe(sequence)
}

func (k *SeqKit) BackTranscribe(sequence string) (string, error) {
	return bio.BackTranscribe(sequence)
}

func (k *SeqKit) Translate(sequence, table string) (string, error) {
	return bio.Translate(sequence, table)
}

func (k *SeqKit) GCContent(sequence string) (float64, error) {
	return bio.GC(sequence)
}

func (k *SeqKit) MolecularWeight(sequence, seqType string) (float64, error) {
	return bio.MolecularWeight(sequence, seqType)
}

func (k *SeqKit) AnalyzeProtein(sequence string) (*protein.Analysis, error) {
	return protein.Analyze(sequence)
}

func (k *SeqKit) ConvertFormat(data, inFormat, outFormat string) (string, error) {
	return seqio.Convert(data, inFormat, outFormat)
}

func (k *SeqKit) FindMotif(sequence, motif string) ([]int, error) {
	return bio.FindMotif(sequence, motif)
}

func (k *SeqKit) FindORFs(sequence string, minLength int) ([]orf.ORF, error) {
	return orf.Find(sequence, minLength)
}

// Align dispatches on mode: "global" or "local".
func (k *SeqKit) Align(seq1, seq2, mode string) (*align.Result, error) {
	if mode == "local" {
		return align.Local(seq1, seq2)
	}
	return align.Global(seq1, seq2)
}

func (k *SeqKit) SearchRemoteDatabase(ctx context.Context, sequence, database, program string) ([]blast.Hit, error) {
	return k.blast.Search(ctx, sequence, database, program)
}

func (k *SeqKit) Distance(seq1, seq2 string) (float64, error) {
	return bio.Distance(seq1, seq2)
}
