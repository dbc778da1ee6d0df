// Copyright Teresa Parreira, 2026. All rights reserved.

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

var renderTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestBlock_Empty(t *testing.T) {
	got := Block(nil, renderTime)

	want := "    <!-- Last updated: 2026-03-14 15:09:26 -->\n" +
		"    <div class=\"publications-list\">\n" +
		"    </div>"
	if got != want {
		t.Errorf("Block(nil) =\n%q\nwant\n%q", got, want)
	}
}

func TestBlock_LinkedPublication(t *testing.T) {
	pubs := []types.Publication{{
		Title:     "Attention for Robots",
		URL:       "https://example.org/p?id=1&ref=2",
		Authors:   []string{"M Parreira", "A Smith"},
		Venue:     "HRI",
		Year:      "2024",
		Citations: 12,
	}}

	got := Block(pubs, renderTime)

	for _, want := range []string{
		`<h3><a href="https://example.org/p?id=1&amp;ref=2" target="_blank">Attention for Robots</a></h3>`,
		`<p class="authors">M Parreira, A Smith</p>`,
		`<p class="venue-info">HRI, 2024 • <span class="citations">12 citations</span></p>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Block() missing %q in:\n%s", want, got)
		}
	}
}

func TestBlock_NoLinkRendersPlainTitle(t *testing.T) {
	pubs := []types.Publication{{Title: "Plain Entry", Year: "2020"}}

	got := Block(pubs, renderTime)

	if !strings.Contains(got, "<h3>Plain Entry</h3>") {
		t.Errorf("title not rendered as plain text:\n%s", got)
	}
	if strings.Contains(got, "<a ") {
		t.Errorf("unexpected anchor for linkless publication:\n%s", got)
	}
}

func TestBlock_Escaping(t *testing.T) {
	pubs := []types.Publication{{
		Title:   `<script>alert("x")</script> & more`,
		URL:     `https://example.org/"onmouseover="x`,
		Authors: []string{"A <B>"},
		Venue:   "Tools & Methods",
		Year:    "2021",
	}}

	got := Block(pubs, renderTime)

	if strings.Contains(got, "<script>") {
		t.Errorf("raw markup passed through:\n%s", got)
	}
	for _, want := range []string{
		"&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; more",
		"A &lt;B&gt;",
		"Tools &amp; Methods",
		`href="https://example.org/&#34;onmouseover=&#34;x"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Block() missing escaped %q in:\n%s", want, got)
		}
	}
}

func TestBlock_VenueAndCitationOmissions(t *testing.T) {
	tests := []struct {
		name string
		pub  types.Publication
		want string
	}{
		{
			name: "no venue renders year only",
			pub:  types.Publication{Title: "T", Year: "2019"},
			want: `<p class="venue-info">2019</p>`,
		},
		{
			name: "unpublished venue is dropped",
			pub:  types.Publication{Title: "T", Venue: "Unpublished", Year: "2019"},
			want: `<p class="venue-info">2019</p>`,
		},
		{
			name: "missing year renders n.d.",
			pub:  types.Publication{Title: "T", Venue: "CHI"},
			want: `<p class="venue-info">CHI, n.d.</p>`,
		},
		{
			name: "zero citations omits the span",
			pub:  types.Publication{Title: "T", Venue: "CHI", Year: "2018", Citations: 0},
			want: `<p class="venue-info">CHI, 2018</p>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Block([]types.Publication{tt.pub}, renderTime)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Block() missing %q in:\n%s", tt.want, got)
			}
		})
	}
}

func TestBlock_Deterministic(t *testing.T) {
	pubs := []types.Publication{
		{Title: "A", Venue: "V", Year: "2020", Citations: 3},
		{Title: "B", Year: "2019"},
	}
	if Block(pubs, renderTime) != Block(pubs, renderTime) {
		t.Error("identical input rendered differently")
	}
}

func TestFingerprint_IgnoresRenderTime(t *testing.T) {
	pubs := []types.Publication{{Title: "A", Year: "2020"}}

	a := Fingerprint(pubs)
	b := Fingerprint(pubs)
	if a != b {
		t.Errorf("Fingerprint not stable: %s vs %s", a, b)
	}

	if Fingerprint(pubs) == Fingerprint(nil) {
		t.Error("different publication lists share a fingerprint")
	}
}
