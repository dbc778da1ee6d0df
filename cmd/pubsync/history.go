// Copyright Teresa Parreira, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mteresaparreira/pubsync/internal/history"
	"github.com/mteresaparreira/pubsync/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent updater runs from the run ledger",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of runs to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := types.HistoryConfig{
		DBPath:     viper.GetString("history.db_path"),
		MaxEntries: viper.GetInt("history.max_entries"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultHistoryDB
	}

	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-20s  %-14s  %-4s  %-9s  %s\n", "When", "Profile", "Pubs", "Outcome", "Detail")
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Printf("%-20s  %-14s  %-4d  %-9s  %s\n",
			r.RunAt.Local().Format("2006-01-02 15:04:05"), r.Profile, r.Publications, r.Outcome, truncate(r.Detail, 40))
	}
	return nil
}
