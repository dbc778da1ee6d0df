// Copyright Teresa Parreira, 2026. All rights reserved.

// Package update orchestrates the publication updater: a linear
// fetch → parse → render → compare → write run with a single success or
// failure outcome. All failures are terminal for the run; the next
// scheduled invocation is the only retry mechanism.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mteresaparreira/pubsync/internal/render"
	"github.com/mteresaparreira/pubsync/internal/scholar"
	"github.com/mteresaparreira/pubsync/internal/site"
	"github.com/mteresaparreira/pubsync/pkg/types"
)

// ErrNoProfileID reports a missing or empty profile identifier. The check
// runs before any network access.
var ErrNoProfileID = errors.New("scholar profile ID is required: set SCHOLAR_ID, add .secrets/scholar-id, or pass --profile")

// Options control a single updater run.
type Options struct {
	// ProfileID is the scholar profile to fetch. Required.
	ProfileID string

	// TargetFile is the HTML document to update.
	TargetFile string

	// DryRun renders the block to w instead of touching the target file.
	DryRun bool

	// Now supplies the render timestamp; nil means time.Now.
	Now func() time.Time
}

// Outcome summarizes a completed run.
type Outcome struct {
	Profile     string
	Count       int
	Updated     bool
	Fingerprint string
}

// Run executes one updater invocation. The target file is rewritten only
// when the rendered publication list differs from the current region;
// otherwise it is left untouched and the run reports no changes.
func Run(ctx context.Context, src scholar.Source, opts Options, cfg types.ScholarConfig, w io.Writer) (Outcome, error) {
	if strings.TrimSpace(opts.ProfileID) == "" {
		return Outcome{}, ErrNoProfileID
	}

	fmt.Fprintf(w, "fetching publications for profile %s from %s\n", opts.ProfileID, src.Name())
	pubs, err := src.Publications(ctx, opts.ProfileID, cfg)
	if err != nil {
		return Outcome{Profile: opts.ProfileID}, err
	}
	fmt.Fprintf(w, "found %d publications\n", len(pubs))

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	block := render.Block(pubs, now())

	out := Outcome{
		Profile:     opts.ProfileID,
		Count:       len(pubs),
		Fingerprint: render.Fingerprint(pubs),
	}

	if opts.DryRun {
		fmt.Fprintln(w, block)
		return out, nil
	}

	doc, err := site.Load(opts.TargetFile)
	if err != nil {
		return out, err
	}
	changed, err := doc.Splice(block)
	if err != nil {
		return out, err
	}

	out.Updated = changed
	if changed {
		fmt.Fprintf(w, "updated %s\n", opts.TargetFile)
	} else {
		fmt.Fprintf(w, "no changes: %s is up to date\n", opts.TargetFile)
	}
	return out, nil
}
