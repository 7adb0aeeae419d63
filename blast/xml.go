package blast

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Wire types for the NCBI BlastOutput XML report. Only the fields
// needed for the hit summary are mapped.
type blastOutput struct {
	XMLName    xml.Name        `xml:"BlastOutput"`
	Iterations []blastIteration `xml:"BlastOutput_iterations>Iteration"`
}

type blastIteration struct {
	Hits []blastHit `xml:"Iteration_hits>Hit"`
}

type blastHit struct {
	Def  string     `xml:"Hit_def"`
	Len  int        `xml:"Hit_len"`
	Hsps []blastHsp `xml:"Hit_hsps>Hsp"`
}

type blastHsp struct {
	Score    float64 `xml:"Hsp_score"`
	EValue   float64 `xml:"Hsp_evalue"`
	Identity int     `xml:"Hsp_identity"`
	AlignLen int     `xml:"Hsp_align-len"`
}

// summarize decodes a BlastOutput report and keeps the best HSP of
// each of the first maxHits hits.
func summarize(r io.Reader, maxHits int) ([]Hit, error) {
	var out blastOutput
	if err := xml.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("blast: decoding report: %v", err)
	}
	hits := []Hit{}
	for _, it := range out.Iterations {
		for _, h := range it.Hits {
			if len(hits) == maxHits {
				return hits, nil
			}
			if len(h.Hsps) == 0 {
				continue
			}
			best := h.Hsps[0]
			hits = append(hits, Hit{
				Title:      h.Def,
				Length:     h.Len,
				EValue:     best.EValue,
				Score:      best.Score,
				Identities: fmt.Sprintf("%d/%d", best.Identity, best.AlignLen),
			})
		}
	}
	return hits, nil
}
