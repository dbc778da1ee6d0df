// Copyright Teresa Parreira, 2026. All rights reserved.

package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `<html>
<body>
<section id="publications">
<!-- PUBLICATIONS_START -->
    <!-- Last updated: 2025-01-01 00:00:00 -->
    <div class="publications-list">
    </div>
<!-- PUBLICATIONS_END -->
</section>
</body>
</html>
`

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "academia.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readTarget(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLoad_MarkerValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing start marker",
			content: "<html>\n<!-- PUBLICATIONS_END -->\n</html>\n",
		},
		{
			name:    "missing end marker",
			content: "<html>\n<!-- PUBLICATIONS_START -->\n</html>\n",
		},
		{
			name:    "duplicate start marker",
			content: "<!-- PUBLICATIONS_START -->\n<!-- PUBLICATIONS_START -->\n<!-- PUBLICATIONS_END -->\n",
		},
		{
			name:    "end before start",
			content: "<!-- PUBLICATIONS_END -->\nmiddle\n<!-- PUBLICATIONS_START -->\n",
		},
		{
			name:    "marker not on its own line",
			content: "<div><!-- PUBLICATIONS_START --></div>\n<!-- PUBLICATIONS_END -->\n",
		},
		{
			name:    "both markers on one line",
			content: "<!-- PUBLICATIONS_START --> <!-- PUBLICATIONS_END -->\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTarget(t, tt.content)

			_, err := Load(path)

			var me *MarkerError
			require.ErrorAs(t, err, &me)
			// Failed preconditions must leave the file byte-for-byte intact.
			assert.Equal(t, tt.content, readTarget(t, path))
		})
	}
}

func TestLoad_AcceptsIndentedMarkers(t *testing.T) {
	path := writeTarget(t, "  <!-- PUBLICATIONS_START -->\nold\n  <!-- PUBLICATIONS_END -->\n")
	_, err := Load(path)
	require.NoError(t, err)
}

func TestSplice_ReplacesRegion(t *testing.T) {
	path := writeTarget(t, wellFormed)
	doc, err := Load(path)
	require.NoError(t, err)

	block := "    <!-- Last updated: 2026-03-14 15:09:26 -->\n" +
		"    <div class=\"publications-list\">\n" +
		"        <div class=\"publication-item\">\n" +
		"            <h3>New Paper</h3>\n" +
		"        </div>\n" +
		"    </div>"

	changed, err := doc.Splice(block)
	require.NoError(t, err)
	assert.True(t, changed)

	got := readTarget(t, path)
	assert.Contains(t, got, "New Paper")
	assert.Contains(t, got, StartMarker)
	assert.Contains(t, got, EndMarker)
	assert.NotContains(t, got, "2025-01-01")
	// The rest of the document survives untouched.
	assert.Contains(t, got, `<section id="publications">`)
}

func TestSplice_NoChangesWhenOnlyTimestampDiffers(t *testing.T) {
	path := writeTarget(t, wellFormed)
	doc, err := Load(path)
	require.NoError(t, err)

	// Same empty container as the current region, newer timestamp.
	block := "    <!-- Last updated: 2026-12-31 23:59:59 -->\n" +
		"    <div class=\"publications-list\">\n" +
		"    </div>"

	changed, err := doc.Splice(block)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, wellFormed, readTarget(t, path))
}

func TestSplice_SecondRunIsIdempotent(t *testing.T) {
	path := writeTarget(t, wellFormed)

	block := func(ts string) string {
		return "    <!-- Last updated: " + ts + " -->\n" +
			"    <div class=\"publications-list\">\n" +
			"        <div class=\"publication-item\">\n" +
			"            <h3>Paper</h3>\n" +
			"        </div>\n" +
			"    </div>"
	}

	doc, err := Load(path)
	require.NoError(t, err)
	changed, err := doc.Splice(block("2026-01-01 10:00:00"))
	require.NoError(t, err)
	require.True(t, changed)
	afterFirst := readTarget(t, path)

	// Second run, identical publication data, later timestamp.
	doc, err = Load(path)
	require.NoError(t, err)
	changed, err = doc.Splice(block("2026-01-02 10:00:00"))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, afterFirst, readTarget(t, path))
}

func TestRegion(t *testing.T) {
	path := writeTarget(t, "<!-- PUBLICATIONS_START -->\nline1\nline2\n<!-- PUBLICATIONS_END -->\n")
	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", doc.Region())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.html"))
	require.Error(t, err)

	// A missing file is an I/O failure, not a marker precondition failure.
	assert.ErrorIs(t, err, os.ErrNotExist)
	var me *MarkerError
	assert.NotErrorAs(t, err, &me)
}
