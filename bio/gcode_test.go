package bio

import (
	"errors"
	"testing"
)

func TestTranslateStandard(tst *testing.T) {
	prot, err := Translate("ATGAAATAG", "Standard")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "MK*" {
		tst.Error("wrong translation:", prot)
	}
}

func TestTranslateRNA(tst *testing.T) {
	prot, err := Translate("AUGGCC", "Standard")
	if err != nil {
		tst.Error("Error translating RNA", err)
	}
	if prot != "MA" {
		tst.Error("wrong translation:", prot)
	}
}

func TestTranslateDropsPartialCodon(tst *testing.T) {
	prot, err := Translate("ATGAA", "Standard")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "M" {
		tst.Error("partial codon should be dropped:", prot)
	}
}

func TestTranslateByID(tst *testing.T) {
	// TGA is a stop in the standard code but tryptophan in the
	// vertebrate mitochondrial code
	prot, err := Translate("TGA", "1")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "*" {
		tst.Error("TGA should be a stop in table 1:", prot)
	}
	prot, err = Translate("TGA", "Vertebrate Mitochondrial")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "W" {
		tst.Error("TGA should be tryptophan in table 2:", prot)
	}
}

func TestTranslateUnknownTable(tst *testing.T) {
	if _, err := Translate("ATG", "Martian"); !errors.Is(err, ErrInvalidArgument) {
		tst.Error("expected invalid argument error, got", err)
	}
}

func TestTranslateAmbiguity(tst *testing.T) {
	// GCN is alanine for every expansion
	prot, err := Translate("GCN", "Standard")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "A" {
		tst.Error("GCN should resolve to alanine:", prot)
	}
	// ANN does not resolve
	prot, err = Translate("ANN", "Standard")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "X" {
		tst.Error("ANN should not resolve:", prot)
	}
	// TRA expands to TAA and TGA, both stops
	prot, err = Translate("TRA", "Standard")
	if err != nil {
		tst.Error("Error translating", err)
	}
	if prot != "*" {
		tst.Error("TRA should resolve to a stop:", prot)
	}
}

func TestGeneticCodeTables(tst *testing.T) {
	for id, gc := range GeneticCodes {
		if len(gc.Map) != 64 {
			tst.Errorf("table %d has %d codons", id, len(gc.Map))
		}
		if !gc.StartCodons["ATG"] {
			tst.Errorf("table %d misses ATG as a start codon", id)
		}
	}
	gc := StandardCode()
	if gc.Map["ATG"] != 'M' || gc.Map["TAA"] != '*' || gc.Map["TGG"] != 'W' {
		tst.Error("standard table is wrong")
	}
}
