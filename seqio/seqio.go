// Package seqio reads and writes annotated sequence records in the
// common flat-file formats (FASTA, GenBank, EMBL) and converts
// between them.
package seqio

import (
	"fmt"
	"strings"

	"github.com/bioseqkit/bioseq/bio"
)

// Record is one sequence record with its minimal shared annotation.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// Format parses and renders records in one flat-file format.
type Format interface {
	Name() string
	Parse(data string) ([]Record, error)
	Write(records []Record) (string, error)
}

var formats = map[string]Format{}

func register(f Format) {
	formats[f.Name()] = f
}

// Lookup returns the format registered under the given name
// (case-insensitive).
func Lookup(name string) (Format, error) {
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sequence format %q", bio.ErrInvalidArgument, name)
	}
	return f, nil
}

// Formats lists the names of all registered formats.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	return names
}

// Convert parses data in one format and renders it in another.
func Convert(data, inFormat, outFormat string) (string, error) {
	in, err := Lookup(inFormat)
	if err != nil {
		return "", err
	}
	out, err := Lookup(outFormat)
	if err != nil {
		return "", err
	}
	records, err := in.Parse(data)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: no %s records found", bio.ErrInvalidSequence, in.Name())
	}
	return out.Write(records)
}
