// Package orf implements a six-frame open reading frame scanner. The
// sequence and its reverse complement are translated in each of the
// three frame offsets and maximal stop-free runs of amino acids are
// reported with their coordinates on the forward strand.
package orf

import (
	"fmt"
	"strings"

	"github.com/bioseqkit/bioseq/bio"
)

// ORF is one discovered open reading frame. Start and End are
// 1-indexed inclusive positions on the original (forward) sequence;
// End includes the stop codon when the run is stop-terminated. Length
// counts coding nucleotides only, so it is always three times the
// number of amino acids in Protein.
type ORF struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Strand  string `json:"strand"`
	Frame   int    `json:"frame"`
	Length  int    `json:"length"`
	Protein string `json:"protein"`
}

// DefaultMinLength is the default ORF length threshold in nucleotides.
const DefaultMinLength = 100

// Find scans all six reading frames of a DNA sequence for open
// reading frames of at least minLength nucleotides. The threshold is
// compared as minLength/3 amino acids, truncating when minLength is
// not a multiple of three. Records are emitted forward frames 1-3
// first, then reverse frames 1-3, each in increasing translated
// order.
func Find(sequence string, minLength int) ([]ORF, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("%w: negative minimum length %d", bio.ErrInvalidArgument, minLength)
	}
	seq := bio.Normalize(sequence)
	if err := bio.ValidateDNA(seq); err != nil {
		return nil, err
	}
	rc, err := bio.ReverseComplement(seq)
	if err != nil {
		return nil, err
	}

	gc := bio.StandardCode()
	n := len(seq)
	minAA := minLength / 3
	orfs := []ORF{}

	for _, s := range []struct {
		strand string
		seq    string
	}{{"+", seq}, {"-", rc}} {
		for frame := 0; frame < 3; frame++ {
			if frame >= len(s.seq) {
				continue
			}
			trans := gc.TranslateFrame(s.seq[frame:])
			for aaStart := 0; aaStart < len(trans); {
				aaEnd := strings.IndexByte(trans[aaStart:], '*')
				terminated := aaEnd >= 0
				if terminated {
					aaEnd += aaStart
				} else {
					aaEnd = len(trans)
				}
				// empty runs between adjacent stops are never ORFs,
				// whatever the threshold
				if aaEnd > aaStart && aaEnd-aaStart >= minAA {
					orfs = append(orfs, record(s.strand, frame, aaStart, aaEnd, terminated, n, trans))
				}
				aaStart = aaEnd + 1
			}
		}
	}
	return orfs, nil
}

// record converts run boundaries in translated coordinates into a
// forward-strand ORF record. A stop-terminated run's End covers the
// stop codon; a run cut off by the sequence end does not extend past
// its last complete codon, keeping coordinates within bounds.
func record(strand string, frame, aaStart, aaEnd int, terminated bool, n int, trans string) ORF {
	stop := 0
	if terminated {
		stop = 3
	}
	var start, end int
	if strand == "+" {
		start = frame + aaStart*3 + 1
		end = frame + aaEnd*3 + stop
	} else {
		start = n - frame - aaEnd*3 - stop + 1
		end = n - frame - aaStart*3
	}
	return ORF{
		Start:   start,
		End:     end,
		Strand:  strand,
		Frame:   frame + 1,
		Length:  (aaEnd - aaStart) * 3,
		Protein: trans[aaStart:aaEnd],
	}
}
