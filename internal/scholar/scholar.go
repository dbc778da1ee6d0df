// Copyright Teresa Parreira, 2026. All rights reserved.

// Package scholar fetches a profile's publication list from Google Scholar.
//
// Scholar has no public API, so the client scrapes the profile's citation
// table, following the pagination links until the list is exhausted. Page
// requests are spaced by a rate limiter; a throttled or otherwise failed
// request terminates the run with a FetchError rather than retrying, since
// the next scheduled invocation is the retry mechanism.
package scholar

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

// Source produces a profile's publication list. The Google Scholar client
// is the only production implementation; tests substitute their own.
type Source interface {
	Name() string
	Publications(ctx context.Context, profileID string, cfg types.ScholarConfig) ([]types.Publication, error)
}

// FetchError reports a failure to retrieve or parse the external publication
// source. It is terminal for the run: there is no in-run retry, recovery is
// the next scheduled trigger.
type FetchError struct {
	// Op is the stage that failed: "request", "status", or "parse".
	Op string

	// StatusCode is the HTTP status, when a response was received.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("fetching publications: HTTP %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetching publications: HTTP %d", e.StatusCode)
	default:
		return fmt.Sprintf("fetching publications (%s): %v", e.Op, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// RateLimited reports whether the source throttled the request.
func (e *FetchError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

var yearRe = regexp.MustCompile(`(19|20)\d{2}`)

// sortYear extracts a four-digit year for ordering. Scholar sometimes pads
// the year cell with extra text; undated entries sort last.
func sortYear(s string) int {
	if m := yearRe.FindString(s); m != "" {
		y, _ := strconv.Atoi(m)
		return y
	}
	return 0
}

// Sort orders publications newest first, breaking ties by citation count
// (descending) and then title, so identical profile data always renders
// identically.
func Sort(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		yi, yj := sortYear(pubs[i].Year), sortYear(pubs[j].Year)
		if yi != yj {
			return yi > yj
		}
		if pubs[i].Citations != pubs[j].Citations {
			return pubs[i].Citations > pubs[j].Citations
		}
		return pubs[i].Title < pubs[j].Title
	})
}
