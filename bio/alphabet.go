package bio

import "fmt"

// iupacMask encodes each nucleotide symbol as a 4-bit set:
// bit0=A bit1=C bit2=G bit3=T.
var iupacMask [256]byte

// complement maps each IUPAC nucleotide to its Watson-Crick complement.
var complement [256]byte

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('U', 8) // RNA input is accepted everywhere DNA is
	set('R', 1|4)
	set('Y', 2|8)
	set('S', 2|4)
	set('W', 1|8)
	set('K', 4|8)
	set('M', 1|2)
	set('B', 2|4|8)
	set('D', 1|4|8)
	set('H', 1|2|8)
	set('V', 1|2|4)
	set('N', 1|2|4|8)

	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
		{'S', 'S'}, {'W', 'W'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
	}
	complement['U'] = 'A'
}

// Normalize uppercases a sequence; all package operations work on the
// normalized form.
func Normalize(seq string) string {
	b := []byte(seq)
	changed := false
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
			changed = true
		}
	}
	if !changed {
		return seq
	}
	return string(b)
}

// ValidateDNA checks that seq is non-empty and contains only IUPAC
// nucleotide symbols. Seq must already be normalized.
func ValidateDNA(seq string) error {
	if len(seq) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i := 0; i < len(seq); i++ {
		if iupacMask[seq[i]] == 0 {
			return fmt.Errorf("%w: unexpected symbol %q at position %d", ErrInvalidSequence, seq[i], i+1)
		}
	}
	return nil
}

// proteinAlphabet lists the twenty standard amino acids.
const proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY"

var isAminoAcid [256]bool

func init() {
	for i := 0; i < len(proteinAlphabet); i++ {
		isAminoAcid[proteinAlphabet[i]] = true
	}
}

// ValidateProtein checks that seq is non-empty and contains only the
// twenty standard amino acid symbols. Seq must already be normalized.
func ValidateProtein(seq string) error {
	if len(seq) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i := 0; i < len(seq); i++ {
		if !isAminoAcid[seq[i]] {
			return fmt.Errorf("%w: unexpected symbol %q at position %d", ErrInvalidSequence, seq[i], i+1)
		}
	}
	return nil
}
