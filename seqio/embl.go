package seqio

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bioseqkit/bioseq/bio"
)

// emblFormat implements the subset of the EMBL flat file needed for
// round-tripping plain sequence records: ID, DE, SQ and the record
// terminator.
type emblFormat struct{}

func init() { register(emblFormat{}) }

func (emblFormat) Name() string { return "embl" }

func (emblFormat) Parse(data string) ([]Record, error) {
	var records []Record
	var cur *Record
	inSeq := false

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "ID   "):
			id := strings.TrimSpace(line[5:])
			if i := strings.IndexByte(id, ';'); i >= 0 {
				id = id[:i]
			}
			records = append(records, Record{ID: id})
			cur = &records[len(records)-1]
			inSeq = false
		case cur == nil:
			continue
		case strings.HasPrefix(line, "DE   "):
			if cur.Description != "" {
				cur.Description += " "
			}
			cur.Description += strings.TrimSuffix(strings.TrimSpace(line[5:]), ".")
		case strings.HasPrefix(line, "SQ   "):
			inSeq = true
		case strings.HasPrefix(line, "//"):
			cur = nil
			inSeq = false
		case inSeq:
			for _, f := range strings.Fields(line) {
				if f[0] >= '0' && f[0] <= '9' {
					continue // trailing position column
				}
				cur.Sequence += strings.ToUpper(f)
			}
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no EMBL records found", bio.ErrInvalidSequence)
	}
	return records, nil
}

func (emblFormat) Write(records []Record) (string, error) {
	var b strings.Builder
	for _, r := range records {
		name := r.ID
		if name == "" {
			name = "sequence"
		}
		fmt.Fprintf(&b, "ID   %s; SV 1; linear; DNA; STD; UNC; %d BP.\n", name, len(r.Sequence))
		b.WriteString("XX\n")
		desc := r.Description
		if desc == "" {
			desc = name
		}
		fmt.Fprintf(&b, "DE   %s.\n", desc)
		b.WriteString("XX\n")
		fmt.Fprintf(&b, "SQ   Sequence %d BP;\n", len(r.Sequence))
		seq := strings.ToLower(r.Sequence)
		for i := 0; i < len(seq); i += 60 {
			end := i + 60
			if end > len(seq) {
				end = len(seq)
			}
			b.WriteString("    ")
			for j := i; j < end; j += 10 {
				blockEnd := j + 10
				if blockEnd > end {
					blockEnd = end
				}
				b.WriteString(" " + seq[j:blockEnd])
			}
			fmt.Fprintf(&b, " %d\n", end)
		}
		b.WriteString("//\n")
	}
	return b.String(), nil
}
