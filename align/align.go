// Package align implements pairwise sequence alignment with identity
// scoring: a match scores one, mismatches and gaps score zero. This
// mirrors the classic textbook forms of Needleman-Wunsch (global) and
// Smith-Waterman (local).
package align

import (
	"fmt"

	"github.com/gonum/matrix/mat64"

	"github.com/bioseqkit/bioseq/bio"
)

// Result is one optimal pairwise alignment. Start and End delimit the
// aligned columns: the whole alignment for a global run, the locally
// aligned region for a local run.
type Result struct {
	Score       float64 `json:"score"`
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
}

// Global aligns two sequences end to end (Needleman-Wunsch).
func Global(seq1, seq2 string) (*Result, error) {
	a, b, err := normalizePair(seq1, seq2)
	if err != nil {
		return nil, err
	}
	f := score(a, b, false)
	a1, a2 := traceback(f, a, b, len(a), len(b), false)
	return &Result{
		Score:       f.At(len(a), len(b)),
		AlignedSeq1: a1,
		AlignedSeq2: a2,
		Start:       0,
		End:         len(a1),
	}, nil
}

// Local aligns the best-matching subsequences (Smith-Waterman).
func Local(seq1, seq2 string) (*Result, error) {
	a, b, err := normalizePair(seq1, seq2)
	if err != nil {
		return nil, err
	}
	f := score(a, b, true)
	bi, bj, best := 0, 0, 0.0
	for i := 0; i <= len(a); i++ {
		for j := 0; j <= len(b); j++ {
			if v := f.At(i, j); v > best {
				bi, bj, best = i, j, v
			}
		}
	}
	a1, a2 := traceback(f, a, b, bi, bj, true)
	return &Result{
		Score:       best,
		AlignedSeq1: a1,
		AlignedSeq2: a2,
		Start:       0,
		End:         len(a1),
	}, nil
}

func normalizePair(seq1, seq2 string) (string, string, error) {
	a := bio.Normalize(seq1)
	b := bio.Normalize(seq2)
	if len(a) == 0 || len(b) == 0 {
		return "", "", fmt.Errorf("%w: empty sequence", bio.ErrInvalidSequence)
	}
	return a, b, nil
}

func match(x, y byte) float64 {
	if x == y {
		return 1
	}
	return 0
}

// score fills the DP matrix. With local scoring cell values are
// clamped at zero so an alignment may start anywhere.
func score(a, b string, local bool) *mat64.Dense {
	f := mat64.NewDense(len(a)+1, len(b)+1, nil)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			v := f.At(i-1, j-1) + match(a[i-1], b[j-1])
			if up := f.At(i-1, j); up > v {
				v = up
			}
			if left := f.At(i, j-1); left > v {
				v = left
			}
			if local && v < 0 {
				v = 0
			}
			f.Set(i, j, v)
		}
	}
	return f
}

// traceback recovers one optimal alignment ending at (i, j),
// preferring diagonal moves over gaps on ties. A local traceback
// stops at the first zero cell; a global one continues to the origin.
func traceback(f *mat64.Dense, a, b string, i, j int, local bool) (string, string) {
	var ra, rb []byte
	for i > 0 || j > 0 {
		if local && f.At(i, j) == 0 {
			break
		}
		switch {
		case i > 0 && j > 0 && f.At(i, j) == f.At(i-1, j-1)+match(a[i-1], b[j-1]):
			ra = append(ra, a[i-1])
			rb = append(rb, b[j-1])
			i--
			j--
		case i > 0 && f.At(i, j) == f.At(i-1, j):
			ra = append(ra, a[i-1])
			rb = append(rb, '-')
			i--
		default:
			ra = append(ra, '-')
			rb = append(rb, b[j-1])
			j--
		}
	}
	reverse(ra)
	reverse(rb)
	return string(ra), string(rb)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
