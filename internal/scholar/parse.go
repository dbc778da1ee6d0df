// Copyright Teresa Parreira, 2026. All rights reserved.

package scholar

import (
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

// trailingYearRe matches the ", 2019" suffix Scholar appends to venue lines.
var trailingYearRe = regexp.MustCompile(`,\s*(19|20)\d{2}$`)

// parseProfilePage extracts publications from one page of a profile's
// citation table. origin resolves the table's relative links.
func parseProfilePage(r io.Reader, origin string) ([]types.Publication, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &FetchError{Op: "parse", Err: err}
	}

	// Scholar serves a captcha interstitial instead of an error status when
	// it decides the client is a bot. Treat it as throttling.
	if doc.Find("#gs_captcha_ccl, form#gs_captcha_f").Length() > 0 {
		return nil, &FetchError{
			Op:         "status",
			StatusCode: http.StatusTooManyRequests,
			Err:        errors.New("robot-check interstitial served"),
		}
	}

	table := doc.Find("#gsc_a_b")
	if table.Length() == 0 {
		return nil, &FetchError{Op: "parse", Err: errors.New("no publication table in response")}
	}

	// A profile with no publications renders a single placeholder row.
	if table.Find(".gsc_a_e").Length() > 0 {
		return nil, nil
	}

	var pubs []types.Publication
	table.Find("tr.gsc_a_tr").Each(func(_ int, row *goquery.Selection) {
		p := parseRow(row, origin)
		if p.Title != "" {
			pubs = append(pubs, p)
		}
	})
	return pubs, nil
}

// parseRow extracts one publication from a table row. The row layout is:
// title link (a.gsc_a_at), two gray lines (authors, then venue with a
// trailing year), the citation count column, and the year column.
func parseRow(row *goquery.Selection, origin string) types.Publication {
	var p types.Publication

	title := row.Find("a.gsc_a_at").First()
	p.Title = strings.TrimSpace(title.Text())
	if href, ok := title.Attr("href"); ok && href != "" {
		p.URL = resolveLink(origin, href)
	}

	gray := row.Find(".gs_gray")
	if gray.Length() > 0 {
		p.Authors = splitAuthors(gray.Eq(0).Text())
	}
	if gray.Length() > 1 {
		p.Venue = cleanVenue(gray.Eq(1).Text())
	}

	p.Year = strings.TrimSpace(row.Find(".gsc_a_y span").First().Text())

	cites := strings.TrimSpace(row.Find("a.gsc_a_ac").First().Text())
	if n, err := strconv.Atoi(cites); err == nil && n > 0 {
		p.Citations = n
	}
	return p
}

// splitAuthors splits the comma-separated author line. Scholar truncates
// long lists with a trailing ellipsis entry, which is kept as displayed.
func splitAuthors(s string) []string {
	var authors []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// cleanVenue strips the trailing ", YYYY" the venue line carries; the year
// is taken from its own column instead.
func cleanVenue(s string) string {
	return strings.TrimSpace(trailingYearRe.ReplaceAllString(strings.TrimSpace(s), ""))
}

// resolveLink resolves the table's relative publication links against the
// scholar origin. Absolute links pass through unchanged.
func resolveLink(origin, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if origin == "" {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return origin + href
}
