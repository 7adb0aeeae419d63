// Package blast submits queries to the NCBI BLAST URL API and
// summarizes the best hits. Results are optionally cached in a bolt
// database keyed by program, database and query sequence.
package blast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/bioseqkit/bioseq/bio"
)

// log is the global logging variable.
var log = logging.MustGetLogger("blast")

// DefaultBaseURL is the public NCBI BLAST endpoint.
const DefaultBaseURL = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

// Hit is the summary of one database alignment: the best HSP of the
// hit rendered with the fields a caller typically reports.
type Hit struct {
	Title      string  `json:"title"`
	Length     int     `json:"length"`
	EValue     float64 `json:"e_value"`
	Score      float64 `json:"score"`
	Identities string  `json:"identities"`
}

// Client runs BLAST searches. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	deadline     time.Duration
	maxHits      int
	cache        *Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternative endpoint (used by
// tests and mirrors).
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// WithPollInterval sets the delay between result status polls.
func WithPollInterval(d time.Duration) Option { return func(c *Client) { c.pollInterval = d } }

// WithDeadline bounds the total time spent waiting for one search.
func WithDeadline(d time.Duration) Option { return func(c *Client) { c.deadline = d } }

// WithCache attaches a result cache.
func WithCache(cache *Cache) Option { return func(c *Client) { c.cache = cache } }

// NewClient creates a BLAST client with sane defaults: the public
// NCBI endpoint, 10 s polls, a 10 min deadline and the top 5 hits.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		pollInterval: 10 * time.Second,
		deadline:     10 * time.Minute,
		maxHits:      5,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

var ridRe = regexp.MustCompile(`RID = (\S+)`)
var statusRe = regexp.MustCompile(`Status=(\S+)`)

// Search submits a query and waits for its results. program is a
// BLAST program name (blastn, blastp, ...), database an NCBI database
// name (nt, nr, ...).
func (c *Client) Search(ctx context.Context, sequence, database, program string) ([]Hit, error) {
	seq := bio.Normalize(sequence)
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", bio.ErrInvalidSequence)
	}
	if database == "" || program == "" {
		return nil, fmt.Errorf("%w: database and program are required", bio.ErrInvalidArgument)
	}

	if c.cache != nil {
		if hits, ok := c.cache.Get(program, database, seq); ok {
			log.Debugf("cache hit for %s/%s query of %d residues", program, database, len(seq))
			return hits, nil
		}
	}

	rid, err := c.submit(ctx, seq, database, program)
	if err != nil {
		return nil, err
	}
	log.Infof("BLAST request submitted, RID=%s", rid)

	if err = c.wait(ctx, rid); err != nil {
		return nil, err
	}

	hits, err := c.fetch(ctx, rid)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.Put(program, database, seq, hits); err != nil {
			log.Error("Error storing BLAST result in cache:", err)
		}
	}
	return hits, nil
}

// submit issues CMD=Put and extracts the request id.
func (c *Client) submit(ctx context.Context, seq, database, program string) (string, error) {
	form := url.Values{
		"CMD":      {"Put"},
		"PROGRAM":  {program},
		"DATABASE": {database},
		"QUERY":    {seq},
	}
	if key := os.Getenv("NCBI_API_KEY"); key != "" {
		form.Set("API_KEY", key)
	}
	body, err := c.post(ctx, form)
	if err != nil {
		return "", err
	}
	m := ridRe.FindStringSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("blast: no RID in submission response")
	}
	return m[1], nil
}

// wait polls CMD=Get with FORMAT_OBJECT=SearchInfo until the search
// is ready or the deadline expires.
func (c *Client) wait(ctx context.Context, rid string) error {
	deadline := time.Now().Add(c.deadline)
	for {
		body, err := c.post(ctx, url.Values{
			"CMD":           {"Get"},
			"RID":           {rid},
			"FORMAT_OBJECT": {"SearchInfo"},
		})
		if err != nil {
			return err
		}
		m := statusRe.FindStringSubmatch(body)
		status := "UNKNOWN"
		if m != nil {
			status = m[1]
		}
		switch status {
		case "READY":
			return nil
		case "WAITING":
			log.Debugf("RID=%s still waiting", rid)
		default:
			return fmt.Errorf("blast: search %s failed with status %s", rid, status)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("blast: search %s did not finish within %v", rid, c.deadline)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

// fetch retrieves the XML report and summarizes the best HSP of each
// of the top hits.
func (c *Client) fetch(ctx context.Context, rid string) ([]Hit, error) {
	body, err := c.post(ctx, url.Values{
		"CMD":         {"Get"},
		"RID":         {rid},
		"FORMAT_TYPE": {"XML"},
	})
	if err != nil {
		return nil, err
	}
	return summarize(strings.NewReader(body), c.maxHits)
}

// post sends one form request with retry on transient failures.
func (c *Client) post(ctx context.Context, form url.Values) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
			strings.NewReader(form.Encode()))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			data, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return "", err
			}
			if resp.StatusCode == http.StatusOK {
				return string(data), nil
			}
			lastErr = fmt.Errorf("blast: endpoint returned status %d", resp.StatusCode)
			if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
				return "", lastErr
			}
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
	}
	return "", lastErr
}
