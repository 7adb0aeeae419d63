package bio

import (
	"fmt"
	"strings"
)

// GeneticCode is a single NCBI translation table.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// Map maps DNA codons (capital letters) to amino acids; stop
	// codons map to '*'.
	Map map[string]byte
	// StartCodons is the set of alternative initiation codons.
	StartCodons map[string]bool
}

// codonAlphabet is the NCBI base order used by the ncbieaa strings.
var codonAlphabet = [4]byte{'T', 'C', 'A', 'G'}

// newGeneticCode builds a table from the 64-character ncbieaa and
// sncbieaa strings of NCBI's gc.prt.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	gc := &GeneticCode{
		ID:          id,
		Name:        name,
		ShortName:   shortName,
		Map:         make(map[string]byte, 64),
		StartCodons: make(map[string]bool, 8),
	}
	i := 0
	for _, b1 := range codonAlphabet {
		for _, b2 := range codonAlphabet {
			for _, b3 := range codonAlphabet {
				codon := string([]byte{b1, b2, b3})
				gc.Map[codon] = ncbieaa[i]
				if sncbieaa[i] == 'M' {
					gc.StartCodons[codon] = true
				}
				i++
			}
		}
	}
	return gc
}

// GeneticCodes maps NCBI genetic code ids to translation tables.
var GeneticCodes = map[int]*GeneticCode{}

// geneticCodesByName maps lower-case table names (long and short) to
// translation tables.
var geneticCodesByName = map[string]*GeneticCode{}

func registerGeneticCode(gc *GeneticCode) {
	GeneticCodes[gc.ID] = gc
	geneticCodesByName[strings.ToLower(gc.Name)] = gc
	if gc.ShortName != "" {
		geneticCodesByName[strings.ToLower(gc.ShortName)] = gc
	}
}

func init() {
	registerGeneticCode(newGeneticCode(1,
		"Standard", "SGC0",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M---------------M---------------M----------------------------"))
	registerGeneticCode(newGeneticCode(2,
		"Vertebrate Mitochondrial", "SGC1",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		"--------------------------------MMMM---------------M------------"))
	registerGeneticCode(newGeneticCode(3,
		"Yeast Mitochondrial", "SGC2",
		"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------------------------------MM----------------------------"))
	registerGeneticCode(newGeneticCode(4,
		"Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma", "SGC3",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--MM---------------M------------MMMM---------------M------------"))
	registerGeneticCode(newGeneticCode(5,
		"Invertebrate Mitochondrial", "SGC4",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
		"---M----------------------------MMMM---------------M------------"))
	registerGeneticCode(newGeneticCode(11,
		"Bacterial, Archaeal and Plant Plastid", "",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M---------------M------------MMMM---------------M------------"))
}

// GeneticCodeByName looks up a translation table by NCBI name, short
// name or numeric id string. The lookup is case-insensitive.
func GeneticCodeByName(name string) (*GeneticCode, error) {
	if gc, ok := geneticCodesByName[strings.ToLower(name)]; ok {
		return gc, nil
	}
	var id int
	if _, err := fmt.Sscanf(name, "%d", &id); err == nil {
		if gc, ok := GeneticCodes[id]; ok {
			return gc, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown genetic code table %q", ErrInvalidArgument, name)
}

// translateCodon translates one codon which may contain IUPAC
// ambiguity codes. If every expansion yields the same amino acid that
// amino acid is returned ('*' when all expansions are stops),
// otherwise 'X'.
func (gc *GeneticCode) translateCodon(codon string) byte {
	if aa, ok := gc.Map[codon]; ok {
		return aa
	}
	var aa byte
	buf := [3]byte{}
	for a := 0; a < 4; a++ {
		if iupacMask[codon[0]]&(1<<a) == 0 {
			continue
		}
		buf[0] = "ACGT"[a]
		for b := 0; b < 4; b++ {
			if iupacMask[codon[1]]&(1<<b) == 0 {
				continue
			}
			buf[1] = "ACGT"[b]
			for c := 0; c < 4; c++ {
				if iupacMask[codon[2]]&(1<<c) == 0 {
					continue
				}
				buf[2] = "ACGT"[c]
				cur := gc.Map[string(buf[:])]
				if aa == 0 {
					aa = cur
				} else if aa != cur {
					return 'X'
				}
			}
		}
	}
	return aa
}

// TranslateFrame translates a normalized, validated nucleotide
// sequence codon-by-codon into an amino acid string. Stop codons are
// rendered as '*', unresolvable ambiguous codons as 'X' and any
// trailing partial codon is dropped.
func (gc *GeneticCode) TranslateFrame(seq string) string {
	var b strings.Builder
	b.Grow(len(seq) / 3)
	for i := 0; i+3 <= len(seq); i += 3 {
		b.WriteByte(gc.translateCodon(seq[i : i+3]))
	}
	return b.String()
}

// Translate translates a DNA or RNA sequence to protein using the
// named translation table. RNA is back-transcribed first; stop codons
// appear as '*'.
func Translate(seq, table string) (string, error) {
	gc, err := GeneticCodeByName(table)
	if err != nil {
		return "", err
	}
	seq = strings.Replace(Normalize(seq), "U", "T", -1)
	if err := ValidateDNA(seq); err != nil {
		return "", err
	}
	return gc.TranslateFrame(seq), nil
}

// StandardCode returns the standard genetic code table.
func StandardCode() *GeneticCode {
	return GeneticCodes[1]
}
