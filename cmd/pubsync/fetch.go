// Copyright Teresa Parreira, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mteresaparreira/pubsync/internal/scholar"
	"github.com/mteresaparreira/pubsync/internal/update"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the publication list and print it without updating anything",
	Long: `Fetch retrieves the profile's publication list and prints it as a table,
as JSON, or as a YAML snapshot file. Useful for previewing what an update
would render and for debugging profile scraping.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("profile", "", "Google Scholar profile ID (overrides SCHOLAR_ID)")
	fetchCmd.Flags().Int("max", defaultMaxPublications, "maximum publications to fetch (0 = all)")
	fetchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	fetchCmd.Flags().Bool("json", false, "output publications as JSON")
	fetchCmd.Flags().String("yaml-out", "", "write publications to this YAML file")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	profile, _ := cmd.Flags().GetString("profile")

	profileID := resolveProfileID(profile)
	if profileID == "" {
		return update.ErrNoProfileID
	}

	cfg := scholarConfigFromFlags(cmd)
	client := scholar.NewClient(cfg)

	pubs, err := client.Publications(context.Background(), profileID, cfg)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("yaml-out"); path != "" {
		if err := writeYAML(path, pubs); err != nil {
			return err
		}
		fmt.Printf("wrote %d publications to %s\n", len(pubs), path)
		return nil
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return writeJSON(os.Stdout, pubs)
	}

	formatTable(os.Stdout, pubs)
	return nil
}
