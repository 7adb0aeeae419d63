package seqio

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bioseqkit/bioseq/bio"
)

// genbankFormat implements the subset of the GenBank flat file needed
// for round-tripping plain sequence records: LOCUS, DEFINITION,
// ACCESSION, ORIGIN and the record terminator.
type genbankFormat struct{}

func init() { register(genbankFormat{}) }

func (genbankFormat) Name() string { return "genbank" }

func (genbankFormat) Parse(data string) ([]Record, error) {
	var records []Record
	var cur *Record
	inOrigin := false

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "LOCUS"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: malformed LOCUS line", bio.ErrInvalidSequence)
			}
			records = append(records, Record{ID: fields[1]})
			cur = &records[len(records)-1]
			inOrigin = false
		case cur == nil:
			continue
		case strings.HasPrefix(line, "DEFINITION"):
			cur.Description = strings.TrimSuffix(strings.TrimSpace(line[len("DEFINITION"):]), ".")
		case strings.HasPrefix(line, "ACCESSION"):
			// ID from LOCUS wins unless it was missing
			if cur.ID == "" {
				cur.ID = strings.TrimSpace(line[len("ACCESSION"):])
			}
		case strings.HasPrefix(line, "ORIGIN"):
			inOrigin = true
		case strings.HasPrefix(line, "//"):
			cur = nil
			inOrigin = false
		case inOrigin:
			for _, f := range strings.Fields(line) {
				if f[0] >= '0' && f[0] <= '9' {
					continue // base position column
				}
				cur.Sequence += strings.ToUpper(f)
			}
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no GenBank records found", bio.ErrInvalidSequence)
	}
	return records, nil
}

func (genbankFormat) Write(records []Record) (string, error) {
	var b strings.Builder
	for _, r := range records {
		name := r.ID
		if name == "" {
			name = "sequence"
		}
		fmt.Fprintf(&b, "LOCUS       %-16s %d bp    DNA     linear   UNA\n", name, len(r.Sequence))
		desc := r.Description
		if desc == "" {
			desc = name
		}
		fmt.Fprintf(&b, "DEFINITION  %s.\n", desc)
		fmt.Fprintf(&b, "ACCESSION   %s\n", name)
		b.WriteString("ORIGIN\n")
		seq := strings.ToLower(r.Sequence)
		for i := 0; i < len(seq); i += 60 {
			end := i + 60
			if end > len(seq) {
				end = len(seq)
			}
			fmt.Fprintf(&b, "%9d", i+1)
			for j := i; j < end; j += 10 {
				blockEnd := j + 10
				if blockEnd > end {
					blockEnd = end
				}
				b.WriteString(" " + seq[j:blockEnd])
			}
			b.WriteString("\n")
		}
		b.WriteString("//\n")
	}
	return b.String(), nil
}
