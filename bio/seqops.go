package bio

import (
	"fmt"
	"math"
	"strings"
)

// ReverseComplement returns the reverse complement of a DNA (or RNA)
// sequence under IUPAC pairing rules. RNA input is complemented the
// DNA way, i.e. both T and U pair with A.
func ReverseComplement(seq string) (string, error) {
	seq = Normalize(seq)
	if err := ValidateDNA(seq); err != nil {
		return "", err
	}
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return string(out), nil
}

// Transcribe converts a DNA sequence to RNA (T becomes U).
func Transcribe(seq string) (string, error) {
	seq = Normalize(seq)
	if err := ValidateDNA(seq); err != nil {
		return "", err
	}
	return strings.Replace(seq, "T", "U", -1), nil
}

// BackTranscribe converts an RNA sequence back to DNA (U becomes T).
func BackTranscribe(seq string) (string, error) {
	seq = Normalize(seq)
	if err := ValidateDNA(seq); err != nil {
		return "", err
	}
	return strings.Replace(seq, "U", "T", -1), nil
}

// GC returns the GC content of a sequence as a percentage (0-100).
// The ambiguity code S (C or G) counts towards the GC total.
func GC(seq string) (float64, error) {
	seq = Normalize(seq)
	if err := ValidateDNA(seq); err != nil {
		return 0, err
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'S':
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100, nil
}

// Average residue masses in Daltons. A chain weight is the residue sum
// minus one water per phosphodiester or peptide bond.
const waterWeight = 18.010565

var dnaWeights = map[byte]float64{
	'A': 331.2218, 'C': 307.1971, 'G': 347.2212, 'T': 322.2085,
}

var rnaWeights = map[byte]float64{
	'A': 347.2212, 'C': 323.1965, 'G': 363.2206, 'U': 324.1813,
}

// ProteinWeights maps amino acids to average residue masses in
// Daltons. Exported for the protein analysis package.
var ProteinWeights = map[byte]float64{
	'A': 89.0932, 'C': 121.1582, 'D': 133.1027, 'E': 147.1293,
	'F': 165.1891, 'G': 75.0666, 'H': 155.1546, 'I': 131.1729,
	'K': 146.1876, 'L': 131.1729, 'M': 149.2113, 'N': 132.1179,
	'P': 115.1305, 'Q': 146.1445, 'R': 174.2010, 'S': 105.0926,
	'T': 119.1192, 'V': 117.1463, 'W': 204.2252, 'Y': 181.1885,
}

// MolecularWeight computes the molecular weight of an unambiguous
// sequence in Daltons. seqType is "DNA", "RNA" or "protein"
// (case-insensitive).
func MolecularWeight(seq, seqType string) (float64, error) {
	seq = Normalize(seq)
	if len(seq) == 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	var weights map[byte]float64
	switch strings.ToUpper(seqType) {
	case "DNA":
		weights = dnaWeights
	case "RNA":
		weights = rnaWeights
	case "PROTEIN":
		weights = ProteinWeights
	default:
		return 0, fmt.Errorf("%w: unknown sequence type %q", ErrInvalidArgument, seqType)
	}
	sum := 0.0
	for i := 0; i < len(seq); i++ {
		w, ok := weights[seq[i]]
		if !ok {
			return 0, fmt.Errorf("%w: unexpected symbol %q for type %s", ErrInvalidSequence, seq[i], seqType)
		}
		sum += w
	}
	return sum - float64(len(seq)-1)*waterWeight, nil
}

// FindMotif returns all 1-indexed positions where motif occurs in seq,
// including overlapping occurrences. Matching is case-insensitive and
// literal.
func FindMotif(seq, motif string) ([]int, error) {
	seq = Normalize(seq)
	motif = Normalize(motif)
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	if len(motif) == 0 {
		return nil, fmt.Errorf("%w: empty motif", ErrInvalidArgument)
	}
	positions := []int{}
	for i := 0; i+len(motif) <= len(seq); i++ {
		if seq[i:i+len(motif)] == motif {
			positions = append(positions, i+1)
		}
	}
	return positions, nil
}

// Distance returns the Hamming distance between two equal-length
// sequences as the proportion of differing positions, rounded to four
// decimal places.
func Distance(seq1, seq2 string) (float64, error) {
	seq1 = Normalize(seq1)
	seq2 = Normalize(seq2)
	if len(seq1) == 0 || len(seq2) == 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	if len(seq1) != len(seq2) {
		return 0, fmt.Errorf("%w: sequences must be of equal length (%d != %d)", ErrInvalidArgument, len(seq1), len(seq2))
	}
	diff := 0
	for i := 0; i < len(seq1); i++ {
		if seq1[i] != seq2[i] {
			diff++
		}
	}
	return math.Round(float64(diff)/float64(len(seq1))*1e4) / 1e4, nil
}
