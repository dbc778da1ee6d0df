// Copyright Teresa Parreira, 2026. All rights reserved.

// Package render turns a publication list into the HTML block spliced into
// the target page. Rendering is deterministic for identical input: fields
// appear in a fixed order and every piece of scraped text is HTML-escaped
// before it reaches a text node or attribute.
package render

import (
	"crypto/sha256"
	"encoding/hex"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

// TimestampFormat is the layout of the Last-updated comment.
const TimestampFormat = "2006-01-02 15:04:05"

// Indentation matches the surrounding static page markup.
const (
	blockIndent = "    "
	itemIndent  = "        "
	fieldIndent = "            "
)

// Block renders the full replacement region: a Last-updated comment followed
// by the publications container. Zero publications render as the timestamp
// plus an empty container.
func Block(pubs []types.Publication, now time.Time) string {
	var b strings.Builder
	b.WriteString(blockIndent + "<!-- Last updated: " + now.Format(TimestampFormat) + " -->\n")
	b.WriteString(Container(pubs))
	return b.String()
}

// Container renders the publications list element without the timestamp
// comment. Its output is what no-change detection and the run ledger's
// fingerprint are computed from.
func Container(pubs []types.Publication) string {
	var b strings.Builder
	b.WriteString(blockIndent + `<div class="publications-list">` + "\n")
	for _, p := range pubs {
		writeItem(&b, p)
	}
	b.WriteString(blockIndent + "</div>")
	return b.String()
}

// Fingerprint returns a hex SHA-256 of the rendered container, identifying
// the publication content independent of the render time.
func Fingerprint(pubs []types.Publication) string {
	sum := sha256.Sum256([]byte(Container(pubs)))
	return hex.EncodeToString(sum[:])
}

// writeItem renders one publication: linked title, authors line, then the
// venue/year/citations line.
func writeItem(b *strings.Builder, p types.Publication) {
	b.WriteString(itemIndent + `<div class="publication-item">` + "\n")

	title := html.EscapeString(p.Title)
	if p.URL != "" {
		b.WriteString(fieldIndent + `<h3><a href="` + html.EscapeString(p.URL) + `" target="_blank">` + title + "</a></h3>\n")
	} else {
		b.WriteString(fieldIndent + "<h3>" + title + "</h3>\n")
	}

	b.WriteString(fieldIndent + `<p class="authors">` + html.EscapeString(strings.Join(p.Authors, ", ")) + "</p>\n")

	b.WriteString(fieldIndent + `<p class="venue-info">`)
	if venue := strings.TrimSpace(p.Venue); venue != "" && venue != "Unpublished" {
		b.WriteString(html.EscapeString(venue) + ", ")
	}
	year := p.Year
	if year == "" {
		year = "n.d."
	}
	b.WriteString(html.EscapeString(year))
	if p.Citations > 0 {
		b.WriteString(" • " + `<span class="citations">` + strconv.Itoa(p.Citations) + " citations</span>")
	}
	b.WriteString("</p>\n")

	b.WriteString(itemIndent + "</div>\n")
}
