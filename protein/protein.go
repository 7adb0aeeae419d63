// Package protein computes physicochemical properties of protein
// sequences: molecular weight, aromaticity, instability index,
// isoelectric point, hydropathy and secondary structure propensities.
package protein

import (
	"math"
	"strings"

	"github.com/bioseqkit/bioseq/bio"
)

// SecondaryStructure holds the fraction of residues with helix, turn
// and sheet propensity.
type SecondaryStructure struct {
	Helix float64 `json:"helix"`
	Turn  float64 `json:"turn"`
	Sheet float64 `json:"sheet"`
}

// Analysis is the full property report for one protein sequence.
// Values are rounded the way the report is meant to be read: weights
// and indices to two decimals, fractions to four.
type Analysis struct {
	MolecularWeight            float64            `json:"molecular_weight"`
	Aromaticity                float64            `json:"aromaticity"`
	InstabilityIndex           float64            `json:"instability_index"`
	IsoelectricPoint           float64            `json:"isoelectric_point"`
	Gravy                      float64            `json:"gravy"`
	SecondaryStructureFraction SecondaryStructure `json:"secondary_structure_fraction"`
	AminoAcidPercent           map[string]float64 `json:"amino_acid_percent"`
}

// Analyze computes all properties of a protein sequence over the
// twenty standard amino acids.
func Analyze(sequence string) (*Analysis, error) {
	seq := bio.Normalize(sequence)
	if err := bio.ValidateProtein(seq); err != nil {
		return nil, err
	}
	mw, err := bio.MolecularWeight(seq, "protein")
	if err != nil {
		return nil, err
	}
	return &Analysis{
		MolecularWeight:            round(mw, 2),
		Aromaticity:                round(Aromaticity(seq), 4),
		InstabilityIndex:           round(InstabilityIndex(seq), 2),
		IsoelectricPoint:           round(IsoelectricPoint(seq), 2),
		Gravy:                      round(Gravy(seq), 4),
		SecondaryStructureFraction: secondaryStructureFraction(seq),
		AminoAcidPercent:           aminoAcidPercent(seq),
	}, nil
}

// Aromaticity returns the relative frequency of F, W and Y.
func Aromaticity(seq string) float64 {
	aromatic := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'F', 'W', 'Y':
			aromatic++
		}
	}
	return float64(aromatic) / float64(len(seq))
}

// InstabilityIndex implements the dipeptide weight sum of Guruprasad
// et al.; values above 40 suggest an unstable protein.
func InstabilityIndex(seq string) float64 {
	sum := 0.0
	for i := 0; i+1 < len(seq); i++ {
		sum += diwv[seq[i]][seq[i+1]]
	}
	return 10.0 / float64(len(seq)) * sum
}

// Gravy returns the grand average of hydropathy (Kyte-Doolittle).
func Gravy(seq string) float64 {
	sum := 0.0
	for i := 0; i < len(seq); i++ {
		sum += kdHydropathy[seq[i]]
	}
	return sum / float64(len(seq))
}

// charge returns the net charge of the protein at the given pH from
// the Henderson-Hasselbalch equation over all ionizable groups.
func charge(counts map[byte]int, pH float64) float64 {
	positive := 1.0 / (1.0 + math.Pow(10, pH-pKNterm))
	for aa, pk := range positivePKs {
		positive += float64(counts[aa]) / (1.0 + math.Pow(10, pH-pk))
	}
	negative := 1.0 / (1.0 + math.Pow(10, pKCterm-pH))
	for aa, pk := range negativePKs {
		negative += float64(counts[aa]) / (1.0 + math.Pow(10, pk-pH))
	}
	return positive - negative
}

// IsoelectricPoint estimates the pH at which the net charge is zero
// by bisection on [0, 14].
func IsoelectricPoint(seq string) float64 {
	counts := make(map[byte]int, 8)
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	lo, hi := 0.0, 14.0
	for hi-lo > 1e-4 {
		mid := (lo + hi) / 2
		if charge(counts, mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func fractionOf(seq, residues string) float64 {
	n := 0
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte(residues, seq[i]) >= 0 {
			n++
		}
	}
	return float64(n) / float64(len(seq))
}

func secondaryStructureFraction(seq string) SecondaryStructure {
	return SecondaryStructure{
		Helix: round(fractionOf(seq, helixResidues), 4),
		Turn:  round(fractionOf(seq, turnResidues), 4),
		Sheet: round(fractionOf(seq, sheetResidues), 4),
	}
}

func aminoAcidPercent(seq string) map[string]float64 {
	out := make(map[string]float64, 20)
	for i := 0; i < len(proteinAlphabet); i++ {
		aa := proteinAlphabet[i]
		n := strings.Count(seq, string(aa))
		out[string(aa)] = round(float64(n)/float64(len(seq))*100, 2)
	}
	return out
}

const proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY"

func round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}
