// Copyright Teresa Parreira, 2026. All rights reserved.

package scholar

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/mteresaparreira/pubsync/internal/httputil"
	"github.com/mteresaparreira/pubsync/pkg/types"
)

// scholarBase is the Scholar citations endpoint. Declared as a var so tests
// can substitute an httptest server.
var scholarBase = "https://scholar.google.com/citations"

const (
	defaultPageSize          = 100
	maxPageSize              = 100
	defaultRequestsPerSecond = 0.5
)

// Client scrapes a Google Scholar profile's publication table.
type Client struct {
	http *httputil.Client
}

// NewClient builds a Client from the scholar configuration.
func NewClient(cfg types.ScholarConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	return &Client{
		http: &httputil.Client{
			HTTP:      &http.Client{Timeout: cfg.Timeout},
			Limiter:   rate.NewLimiter(rate.Limit(rps), 1),
			UserAgent: cfg.UserAgent,
		},
	}
}

// Name returns the source identifier.
func (c *Client) Name() string { return "google_scholar" }

// Publications fetches every page of the profile's publication table,
// orders the entries newest first, and truncates to cfg.MaxPublications.
func (c *Client) Publications(ctx context.Context, profileID string, cfg types.ScholarConfig) ([]types.Publication, error) {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	var pubs []types.Publication
	for start := 0; ; start += pageSize {
		page, err := c.fetchPage(ctx, profileID, start, pageSize)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, page...)

		// A short page means the table is exhausted.
		if len(page) < pageSize {
			break
		}
	}

	Sort(pubs)
	if cfg.MaxPublications > 0 && len(pubs) > cfg.MaxPublications {
		pubs = pubs[:cfg.MaxPublications]
	}
	return pubs, nil
}

// fetchPage retrieves one page of the publication table.
func (c *Client) fetchPage(ctx context.Context, profileID string, start, pageSize int) ([]types.Publication, error) {
	params := url.Values{
		"user":     {profileID},
		"hl":       {"en"},
		"cstart":   {strconv.Itoa(start)},
		"pagesize": {strconv.Itoa(pageSize)},
	}
	reqURL := scholarBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Op: "status", StatusCode: resp.StatusCode}
	}

	return parseProfilePage(resp.Body, originOf(scholarBase))
}

// originOf returns the scheme://host prefix of base, used to resolve the
// relative publication links in the table.
func originOf(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
