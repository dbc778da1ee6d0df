package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubsync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScholarConfig holds settings for the Google Scholar publication source.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// ProfileID is the scholar profile to fetch. Usually supplied via the
	// SCHOLAR_ID environment variable or a secret file rather than here.
	ProfileID string `json:"profile_id,omitempty" yaml:"profile_id,omitempty"`

	// MaxPublications caps how many publications are rendered (default 10).
	// Zero or negative means no cap.
	MaxPublications int `json:"max_publications" yaml:"max_publications"`

	// PageSize is the number of rows requested per profile page (default 100).
	PageSize int `json:"page_size" yaml:"page_size"`

	// RequestsPerSecond spaces successive page requests (default 0.5).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// UpdateConfig holds settings for the target document update.
type UpdateConfig struct {
	// TargetFile is the HTML document carrying the sentinel marker lines.
	TargetFile string `json:"target_file" yaml:"target_file"`
}

// HistoryConfig holds settings for the run ledger.
type HistoryConfig struct {
	// DBPath is the SQLite file recording run outcomes.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxEntries bounds the ledger; rows beyond it are pruned oldest-first
	// (default 500).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Config groups all component configurations.
type Config struct {
	Scholar ScholarConfig `json:"scholar" yaml:"scholar"`
	Update  UpdateConfig  `json:"update" yaml:"update"`
	History HistoryConfig `json:"history" yaml:"history"`
}
