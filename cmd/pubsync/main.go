// Copyright Teresa Parreira, 2026. All rights reserved.

// Package main is the entry point for the pubsync CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mteresaparreira/pubsync/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the pubsync CLI.
var rootCmd = &cobra.Command{
	Use:   "pubsync",
	Short: "Keep a static page's publication list in sync with Google Scholar",
	Long: `pubsync fetches a Google Scholar profile's publication list and splices it,
rendered as HTML, into a static page between two sentinel comment lines:

  <!-- PUBLICATIONS_START -->
  <!-- PUBLICATIONS_END -->

It is meant to run from a scheduled trigger (cron, CI) or by hand. Each
invocation is a single fetch, render, and in-place update; the target file
is rewritten only when the publication list actually changed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; its absence is the common case.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubsync.yaml or ~/.config/pubsync/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubsync"))
		}
	}

	viper.SetEnvPrefix("PUBSYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveProfileID returns the scholar profile ID from the flag value, the
// SCHOLAR_ID environment variable, the .secrets/scholar-id file, or the
// config file, in that order. Empty means unconfigured.
func resolveProfileID(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := os.Getenv("SCHOLAR_ID"); v != "" {
		return v
	}
	if v := loadedSecrets[secrets.ScholarIDKey]; v != "" {
		return v
	}
	return viper.GetString("scholar.profile_id")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
