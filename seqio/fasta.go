package seqio

import (
	"strings"

	"github.com/bioseqkit/bioseq/bio"
)

type fastaFormat struct{}

func init() { register(fastaFormat{}) }

func (fastaFormat) Name() string { return "fasta" }

func (fastaFormat) Parse(data string) ([]Record, error) {
	seqs, err := bio.ParseFasta(strings.NewReader(data))
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(seqs))
	for i, s := range seqs {
		id, desc := splitHeader(s.Name)
		records[i] = Record{ID: id, Description: desc, Sequence: s.Sequence}
	}
	return records, nil
}

func (fastaFormat) Write(records []Record) (string, error) {
	seqs := make(bio.Sequences, len(records))
	for i, r := range records {
		header := r.ID
		if r.Description != "" {
			header += " " + r.Description
		}
		seqs[i] = bio.Sequence{Name: header, Sequence: r.Sequence}
	}
	if len(seqs) == 0 {
		return "", nil
	}
	return seqs.String() + "\n", nil
}

// splitHeader separates a FASTA header into id and description.
func splitHeader(header string) (string, string) {
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i], strings.TrimSpace(header[i+1:])
	}
	return header, ""
}
