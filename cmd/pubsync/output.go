// Copyright Teresa Parreira, 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

// formatTable writes publications as a human-readable table.
func formatTable(w io.Writer, pubs []types.Publication) {
	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %-5s  %s\n",
		"Rank", "Title", "Authors", "Year", "Cites", "Venue")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, p := range pubs {
		year := p.Year
		if year == "" {
			year = "n.d."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %-5d  %s\n",
			i+1, truncate(p.Title, 60), formatAuthors(p.Authors), year, p.Citations, truncate(p.Venue, 40))
	}

	fmt.Fprintf(w, "\n%d publications\n", len(pubs))
}

func writeJSON(w io.Writer, pubs []types.Publication) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pubs)
}

// writeYAML snapshots the publications to path.
func writeYAML(path string, pubs []types.Publication) error {
	data, err := yaml.Marshal(pubs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 17) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
