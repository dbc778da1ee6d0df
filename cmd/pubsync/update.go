// Copyright Teresa Parreira, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mteresaparreira/pubsync/internal/history"
	"github.com/mteresaparreira/pubsync/internal/scholar"
	"github.com/mteresaparreira/pubsync/internal/update"
	"github.com/mteresaparreira/pubsync/pkg/types"
)

const (
	defaultTimeout         = 60 * time.Second
	defaultUserAgent       = "pubsync/0.1"
	defaultTargetFile      = "academia.html"
	defaultMaxPublications = 10
	defaultHistoryDB       = ".pubsync/history.db"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch publications and splice them into the target page",
	Long: `Update fetches the profile's publication list from Google Scholar, renders
it as an HTML fragment, and replaces the marked region of the target
document. The file is rewritten only when the rendered list differs from
the current content; otherwise the run reports no changes.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("profile", "", "Google Scholar profile ID (overrides SCHOLAR_ID)")
	updateCmd.Flags().String("file", defaultTargetFile, "target HTML document")
	updateCmd.Flags().Int("max", defaultMaxPublications, "maximum publications to render (0 = all)")
	updateCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	updateCmd.Flags().Bool("dry-run", false, "print the rendered block without writing the target file")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	profile, _ := cmd.Flags().GetString("profile")
	file, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg := scholarConfigFromFlags(cmd)
	opts := update.Options{
		ProfileID:  resolveProfileID(profile),
		TargetFile: file,
		DryRun:     dryRun,
	}

	out, err := update.Run(context.Background(), scholar.NewClient(cfg), opts, cfg, os.Stdout)
	if !dryRun {
		recordRun(out, err)
	}
	return err
}

// scholarConfigFromFlags builds the scholar configuration from flags with
// config-file fallbacks.
func scholarConfigFromFlags(cmd *cobra.Command) types.ScholarConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	max, _ := cmd.Flags().GetInt("max")
	if !cmd.Flags().Changed("max") {
		if v := viper.GetInt("scholar.max_publications"); v != 0 {
			max = v
		}
	}

	return types.ScholarConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxPublications:   max,
		PageSize:          viper.GetInt("scholar.page_size"),
		RequestsPerSecond: viper.GetFloat64("scholar.requests_per_second"),
	}
}

// recordRun appends the run to the ledger. Ledger problems are warnings; the
// run's own outcome is never affected.
func recordRun(out update.Outcome, runErr error) {
	cfg := types.HistoryConfig{
		DBPath:     viper.GetString("history.db_path"),
		MaxEntries: viper.GetInt("history.max_entries"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultHistoryDB
	}

	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run ledger unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := history.Run{
		RunAt:        time.Now(),
		Profile:      out.Profile,
		Publications: out.Count,
		Fingerprint:  out.Fingerprint,
	}
	switch {
	case runErr != nil:
		run.Outcome = history.OutcomeError
		run.Detail = runErr.Error()
	case out.Updated:
		run.Outcome = history.OutcomeUpdated
	default:
		run.Outcome = history.OutcomeUnchanged
	}

	if err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
