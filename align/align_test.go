package align

import (
	"errors"
	"strings"
	"testing"

	"github.com/bioseqkit/bioseq/bio"
)

func TestGlobalIdentical(tst *testing.T) {
	r, err := Global("GATTACA", "GATTACA")
	if err != nil {
		tst.Error("Error aligning", err)
	}
	if r.Score != 7 {
		tst.Error("wrong score:", r.Score)
	}
	if r.AlignedSeq1 != "GATTACA" || r.AlignedSeq2 != "GATTACA" {
		tst.Error("wrong alignment:", r.AlignedSeq1, r.AlignedSeq2)
	}
	if r.Start != 0 || r.End != 7 {
		tst.Error("wrong span:", r.Start, r.End)
	}
}

func TestGlobalGaps(tst *testing.T) {
	r, err := Global("ACGT", "AGT")
	if err != nil {
		tst.Error("Error aligning", err)
	}
	if r.Score != 3 {
		tst.Error("wrong score:", r.Score)
	}
	if len(r.AlignedSeq1) != len(r.AlignedSeq2) {
		tst.Error("aligned strings differ in length")
	}
	if strings.Replace(r.AlignedSeq1, "-", "", -1) != "ACGT" ||
		strings.Replace(r.AlignedSeq2, "-", "", -1) != "AGT" {
		tst.Error("alignment does not preserve the sequences:",
			r.AlignedSeq1, r.AlignedSeq2)
	}
}

func TestGlobalCaseInsensitive(tst *testing.T) {
	r, err := Global("acgt", "ACGT")
	if err != nil {
		tst.Error("Error aligning", err)
	}
	if r.Score != 4 {
		tst.Error("wrong score:", r.Score)
	}
}

func TestLocal(tst *testing.T) {
	r, err := Local("TTTTGATTACATTTT", "GATTACA")
	if err != nil {
		tst.Error("Error aligning", err)
	}
	if r.Score != 7 {
		tst.Error("wrong score:", r.Score)
	}
	if !strings.Contains(r.AlignedSeq1, "GATTACA") {
		tst.Error("local alignment missed the common region:", r.AlignedSeq1)
	}
}

func TestLocalNoMatch(tst *testing.T) {
	r, err := Local("AAAA", "TTTT")
	if err != nil {
		tst.Error("Error aligning", err)
	}
	if r.Score != 0 {
		tst.Error("wrong score for disjoint sequences:", r.Score)
	}
}

func TestAlignEmpty(tst *testing.T) {
	if _, err := Global("", "ACGT"); !errors.Is(err, bio.ErrInvalidSequence) {
		tst.Error("expected invalid sequence error, got", err)
	}
	if _, err := Local("ACGT", ""); !errors.Is(err, bio.ErrInvalidSequence) {
		tst.Error("expected invalid sequence error, got", err)
	}
}
