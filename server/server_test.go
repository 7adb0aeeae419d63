package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bioseqkit/bioseq/blast"
	"github.com/bioseqkit/bioseq/orf"
	"github.com/bioseqkit/bioseq/toolkit"
)

// fakeSearch overrides the remote search so handler tests never reach
// the network.
type fakeSearch struct {
	*toolkit.SeqKit
}

func (f fakeSearch) SearchRemoteDatabase(ctx context.Context, sequence, database, program string) ([]blast.Hit, error) {
	return []blast.Hit{
		{Title: "test subject", Length: 100, EValue: 1e-5, Score: 42, Identities: "20/20"},
	}, nil
}

func provider() toolkit.Provider {
	return fakeSearch{toolkit.New(nil)}
}

func callReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(tst *testing.T, res *mcp.CallToolResult) string {
	if res == nil || len(res.Content) == 0 {
		tst.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		tst.Fatalf("unexpected content type %T", res.Content[0])
	}
	return tc.Text
}

func findTool(tst *testing.T, name string) Tool {
	for _, t := range Tools(provider()) {
		if t.Handle().Name == name {
			return t
		}
	}
	tst.Fatal("no such tool:", name)
	return nil
}

func TestToolRegistry(tst *testing.T) {
	tools := Tools(provider())
	if len(tools) != 13 {
		tst.Error("wrong number of tools:", len(tools))
	}
	seen := make(map[string]bool)
	for _, t := range tools {
		h := t.Handle()
		if h.Name == "" {
			tst.Error("tool with empty name")
		}
		if seen[h.Name] {
			tst.Error("duplicate tool name:", h.Name)
		}
		seen[h.Name] = true
	}
	for _, name := range []string{
		"reverse_complement", "transcribe", "back_transcribe", "translate",
		"gc_content", "molecular_weight", "protein_analysis",
		"convert_sequence_format", "find_motif", "find_orfs",
		"pairwise_alignment", "ncbi_blast_search", "calculate_sequence_distance",
	} {
		if !seen[name] {
			tst.Error("missing tool:", name)
		}
	}
}

func TestReverseComplementHandler(tst *testing.T) {
	t := findTool(tst, "reverse_complement")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence": "ATGC",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	if res.IsError {
		tst.Fatal("unexpected error result:", resultText(tst, res))
	}
	if text := resultText(tst, res); text != "GCAT" {
		tst.Error("wrong reverse complement:", text)
	}
}

func TestMissingArgument(tst *testing.T) {
	t := findTool(tst, "reverse_complement")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{}))
	if err != nil {
		tst.Fatal("missing argument should be a tool error, not a protocol error:", err)
	}
	if !res.IsError {
		tst.Error("expected an error result for a missing argument")
	}
}

func TestInvalidSequence(tst *testing.T) {
	t := findTool(tst, "reverse_complement")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence": "ATZ9",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	if !res.IsError {
		tst.Error("expected an error result for an invalid sequence")
	}
	if text := resultText(tst, res); !strings.Contains(text, "invalid") {
		tst.Error("error text should name the problem:", text)
	}
}

func TestTranslateHandler(tst *testing.T) {
	t := findTool(tst, "translate")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence": "ATGAAATAG",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	if text := resultText(tst, res); text != "MK*" {
		tst.Error("wrong translation:", text)
	}

	res, err = t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence": "ATGTGATAG",
		"table":    "2",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	if text := resultText(tst, res); text != "MW*" {
		tst.Error("wrong mitochondrial translation:", text)
	}
}

func TestGCContentHandler(tst *testing.T) {
	t := findTool(tst, "gc_content")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence": "GGCC",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	if text := resultText(tst, res); text != "100" {
		tst.Error("wrong GC content:", text)
	}
}

func TestFindORFsHandler(tst *testing.T) {
	t := findTool(tst, "find_orfs")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence":   "ATGAAATAG",
		"min_length": 3,
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	var orfs []orf.ORF
	if err = json.Unmarshal([]byte(resultText(tst, res)), &orfs); err != nil {
		tst.Fatal("Error decoding result", err)
	}
	if len(orfs) == 0 {
		tst.Fatal("no reading frames found")
	}
	if orfs[0].Protein != "MK" || orfs[0].Start != 1 || orfs[0].End != 9 {
		tst.Error("wrong first frame:", orfs[0])
	}
}

func TestPairwiseAlignmentHandler(tst *testing.T) {
	t := findTool(tst, "pairwise_alignment")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"seq1":           "GATTACA",
		"seq2":           "GATTACA",
		"alignment_type": "local",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	var result struct {
		Score float64 `json:"score"`
	}
	if err = json.Unmarshal([]byte(resultText(tst, res)), &result); err != nil {
		tst.Fatal("Error decoding result", err)
	}
	if result.Score != 7 {
		tst.Error("wrong alignment score:", result.Score)
	}
}

func TestConvertFormatHandler(tst *testing.T) {
	t := findTool(tst, "convert_sequence_format")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence_data": ">seq1 test\nATGAAACCC\n",
		"input_format":  "fasta",
		"output_format": "genbank",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	text := resultText(tst, res)
	if !strings.HasPrefix(text, "LOCUS") || !strings.Contains(text, "seq1") {
		tst.Error("wrong GenBank output:", text)
	}
}

func TestBlastSearchHandler(tst *testing.T) {
	t := findTool(tst, "ncbi_blast_search")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"sequence": "ATGAAACCC",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	var hits []blast.Hit
	if err = json.Unmarshal([]byte(resultText(tst, res)), &hits); err != nil {
		tst.Fatal("Error decoding result", err)
	}
	if len(hits) != 1 || hits[0].Title != "test subject" {
		tst.Error("wrong hits:", hits)
	}
}

func TestDistanceHandler(tst *testing.T) {
	t := findTool(tst, "calculate_sequence_distance")
	res, err := t.Handler(context.Background(), callReq(map[string]interface{}{
		"seq1": "ATGC",
		"seq2": "ATGG",
	}))
	if err != nil {
		tst.Fatal("Error calling handler", err)
	}
	if text := resultText(tst, res); text != "0.25" {
		tst.Error("wrong distance:", text)
	}
}
