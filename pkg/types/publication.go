// Copyright Teresa Parreira, 2026. All rights reserved.

// Package types defines the shared data structures for the pubsync pipeline.
package types

// Publication is one entry from a scholar profile's publication list.
// Publications are produced fresh on every run; nothing about them is
// persisted between runs.
type Publication struct {
	// Title is the publication title as listed on the profile.
	Title string `json:"title" yaml:"title"`

	// URL links to the publication's detail page, when the profile has one.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Authors lists the author names in profile order.
	Authors []string `json:"authors" yaml:"authors"`

	// Venue is the journal or conference string, without the trailing year.
	Venue string `json:"venue" yaml:"venue"`

	// Year is the publication year as scraped. Empty for undated entries.
	Year string `json:"year" yaml:"year"`

	// Citations is the citation count shown on the profile.
	Citations int `json:"citations" yaml:"citations"`
}
