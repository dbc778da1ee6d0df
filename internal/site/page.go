// Copyright Teresa Parreira, 2026. All rights reserved.

// Package site replaces the marker-delimited publications region of a
// static HTML page.
//
// The target document must contain the two sentinel comment lines exactly
// once each, start before end, each on its own line. Anything else is a
// MarkerError and the file is left byte-for-byte unchanged. On a valid
// document the content strictly between the markers is replaced wholesale;
// the marker lines themselves are preserved.
package site

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Sentinel marker lines recognized in the target document.
const (
	StartMarker = "<!-- PUBLICATIONS_START -->"
	EndMarker   = "<!-- PUBLICATIONS_END -->"
)

// timestampRe matches the Last-updated comment line, which is excluded from
// no-change detection so an unchanged publication list never rewrites the
// file just to bump the timestamp.
var timestampRe = regexp.MustCompile(`^\s*<!-- Last updated: .* -->\s*$`)

// MarkerError reports a target document whose sentinel markers are missing,
// duplicated, or malformed. It is a precondition failure, not recoverable
// within a run.
type MarkerError struct {
	Path   string
	Reason string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Document is a loaded target file with its marker positions resolved.
type Document struct {
	path  string
	lines []string
	start int // line index of StartMarker
	end   int // line index of EndMarker
}

// Load reads the target document and validates its markers.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading target document: %w", err)
	}

	d := &Document{path: path, lines: strings.Split(string(data), "\n")}
	if err := d.locate(string(data)); err != nil {
		return nil, err
	}
	return d, nil
}

// locate finds the two marker lines and enforces the preconditions: each
// marker exactly once, each on its own line, start before end.
func (d *Document) locate(raw string) error {
	start, err := d.markerLine(raw, StartMarker)
	if err != nil {
		return err
	}
	end, err := d.markerLine(raw, EndMarker)
	if err != nil {
		return err
	}
	if end < start {
		return &MarkerError{Path: d.path, Reason: fmt.Sprintf("%s appears before %s", EndMarker, StartMarker)}
	}
	d.start, d.end = start, end
	return nil
}

// markerLine returns the index of the line holding marker.
func (d *Document) markerLine(raw, marker string) (int, error) {
	switch n := strings.Count(raw, marker); {
	case n == 0:
		return 0, &MarkerError{Path: d.path, Reason: fmt.Sprintf("missing marker %s", marker)}
	case n > 1:
		return 0, &MarkerError{Path: d.path, Reason: fmt.Sprintf("marker %s appears %d times, want exactly one", marker, n)}
	}
	for i, line := range d.lines {
		if strings.Contains(line, marker) {
			if strings.TrimSpace(line) != marker {
				return 0, &MarkerError{Path: d.path, Reason: fmt.Sprintf("marker %s must be on its own line", marker)}
			}
			return i, nil
		}
	}
	// Unreachable: the count above guarantees a match.
	return 0, &MarkerError{Path: d.path, Reason: fmt.Sprintf("missing marker %s", marker)}
}

// Region returns the current content strictly between the markers.
func (d *Document) Region() string {
	return strings.Join(d.lines[d.start+1:d.end], "\n")
}

// Splice replaces the marked region with block and writes the file back.
// It reports whether the file changed: a region identical up to the
// Last-updated comment leaves the file untouched.
func (d *Document) Splice(block string) (bool, error) {
	if !regionChanged(d.Region(), block) {
		return false, nil
	}

	var out []string
	out = append(out, d.lines[:d.start+1]...)
	out = append(out, strings.Split(block, "\n")...)
	out = append(out, d.lines[d.end:]...)

	if err := d.write(strings.Join(out, "\n")); err != nil {
		return false, err
	}
	return true, nil
}

// regionChanged compares the current and new regions with their timestamp
// comment lines stripped.
func regionChanged(current, next string) bool {
	return stripTimestamps(current) != stripTimestamps(next)
}

func stripTimestamps(region string) string {
	var kept []string
	for _, line := range strings.Split(region, "\n") {
		if timestampRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// write replaces the file contents via a temp file and rename, so a failed
// run never leaves a partially written document.
func (d *Document) write(content string) error {
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing target document: %w", err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing target document: %w", err)
	}
	return nil
}
