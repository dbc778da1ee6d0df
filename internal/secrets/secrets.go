// Copyright Teresa Parreira, 2026. All rights reserved.

// Package secrets loads external identifiers and credentials from a
// directory of plain-text files. Each file is one secret: the filename is
// the key and the trimmed file contents are the value.
//
// Recognized key file: scholar-id (the Google Scholar profile identifier).
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScholarIDKey is the secret file holding the scholar profile identifier.
const ScholarIDKey = "scholar-id"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map
// so the caller can fall back to other sources. Unreadable files produce a
// warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}

	return secrets, nil
}
