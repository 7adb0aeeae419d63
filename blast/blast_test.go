package blast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"
)

const reportXML = `<?xml version="1.0"?>
<BlastOutput>
  <BlastOutput_iterations>
    <Iteration>
      <Iteration_hits>
        <Hit>
          <Hit_def>Homo sapiens dopamine receptor D4 (DRD4), mRNA</Hit_def>
          <Hit_len>3400</Hit_len>
          <Hit_hsps>
            <Hsp>
              <Hsp_score>56</Hsp_score>
              <Hsp_evalue>1.5e-07</Hsp_evalue>
              <Hsp_identity>28</Hsp_identity>
              <Hsp_align-len>28</Hsp_align-len>
            </Hsp>
            <Hsp>
              <Hsp_score>20</Hsp_score>
              <Hsp_evalue>0.1</Hsp_evalue>
              <Hsp_identity>12</Hsp_identity>
              <Hsp_align-len>16</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
        <Hit>
          <Hit_def>synthetic construct</Hit_def>
          <Hit_len>100</Hit_len>
          <Hit_hsps>
            <Hsp>
              <Hsp_score>30</Hsp_score>
              <Hsp_evalue>0.002</Hsp_evalue>
              <Hsp_identity>20</Hsp_identity>
              <Hsp_align-len>25</Hsp_align-len>
            </Hsp>
          </Hit_hsps>
        </Hit>
      </Iteration_hits>
    </Iteration>
  </BlastOutput_iterations>
</BlastOutput>`

// fakeBlast emulates the three phases of the URL API: submission,
// status polling and report retrieval.
func fakeBlast(tst *testing.T, polls *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			tst.Error("Error parsing form", err)
		}
		switch r.FormValue("CMD") {
		case "Put":
			if r.FormValue("PROGRAM") == "" || r.FormValue("DATABASE") == "" ||
				r.FormValue("QUERY") == "" {
				tst.Error("missing submission parameter")
			}
			w.Write([]byte("    RID = TESTRID123\n    RTOE = 10\n"))
		case "Get":
			if r.FormValue("RID") != "TESTRID123" {
				tst.Error("wrong RID:", r.FormValue("RID"))
			}
			if r.FormValue("FORMAT_OBJECT") == "SearchInfo" {
				*polls++
				if *polls < 2 {
					w.Write([]byte("Status=WAITING\n"))
				} else {
					w.Write([]byte("Status=READY\n"))
				}
				return
			}
			w.Write([]byte(reportXML))
		default:
			tst.Error("unexpected CMD:", r.FormValue("CMD"))
		}
	}))
}

func TestSearch(tst *testing.T) {
	polls := 0
	srv := fakeBlast(tst, &polls)
	defer srv.Close()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithPollInterval(time.Millisecond),
		WithDeadline(time.Second),
	)
	hits, err := c.Search(context.Background(), "atgaaacccggg", "nt", "blastn")
	if err != nil {
		tst.Fatal("Error searching", err)
	}
	if polls < 2 {
		tst.Error("expected the client to poll until ready, polls:", polls)
	}
	if len(hits) != 2 {
		tst.Fatal("wrong hit count:", len(hits))
	}
	if !strings.Contains(hits[0].Title, "DRD4") {
		tst.Error("wrong first hit:", hits[0].Title)
	}
	if hits[0].Length != 3400 || hits[0].Score != 56 || hits[0].Identities != "28/28" {
		tst.Error("wrong first hit summary:", hits[0])
	}
	if hits[0].EValue != 1.5e-07 {
		tst.Error("wrong e-value:", hits[0].EValue)
	}
	if hits[1].Identities != "20/25" {
		tst.Error("wrong second hit summary:", hits[1])
	}
}

func TestSearchEmptySequence(tst *testing.T) {
	c := NewClient()
	if _, err := c.Search(context.Background(), "", "nt", "blastn"); err == nil {
		tst.Error("expected an error for an empty sequence")
	}
}

func TestSearchCache(tst *testing.T) {
	polls := 0
	srv := fakeBlast(tst, &polls)
	defer srv.Close()

	db, err := bolt.Open(filepath.Join(tst.TempDir(), "cache.db"), 0666, nil)
	if err != nil {
		tst.Fatal("Error opening cache database", err)
	}
	defer db.Close()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithPollInterval(time.Millisecond),
		WithDeadline(time.Second),
		WithCache(NewCache(db, time.Hour)),
	)

	first, err := c.Search(context.Background(), "ATGAAA", "nt", "blastn")
	if err != nil {
		tst.Fatal("Error searching", err)
	}
	pollsAfterFirst := polls
	second, err := c.Search(context.Background(), "ATGAAA", "nt", "blastn")
	if err != nil {
		tst.Fatal("Error searching from cache", err)
	}
	if polls != pollsAfterFirst {
		tst.Error("second search should not reach the network")
	}
	if len(first) != len(second) || first[0] != second[0] {
		tst.Error("cached result differs:", first, second)
	}
}

func TestCacheExpiry(tst *testing.T) {
	db, err := bolt.Open(filepath.Join(tst.TempDir(), "cache.db"), 0666, nil)
	if err != nil {
		tst.Fatal("Error opening cache database", err)
	}
	defer db.Close()

	cache := NewCache(db, time.Nanosecond)
	if err = cache.Put("blastn", "nt", "ATG", []Hit{{Title: "x"}}); err != nil {
		tst.Error("Error storing entry", err)
	}
	time.Sleep(time.Millisecond)
	if _, ok := cache.Get("blastn", "nt", "ATG"); ok {
		tst.Error("expired entry served from cache")
	}
}
