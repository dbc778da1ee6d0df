// Copyright Teresa Parreira, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mteresaparreira/pubsync/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the target document's sentinel markers",
	Long: `Check validates that the target document contains the PUBLICATIONS_START
and PUBLICATIONS_END markers exactly once each, in order, each on its own
line. No network access is made and the file is never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if _, err := site.Load(file); err != nil {
			return err
		}
		fmt.Printf("ok: %s has well-formed publication markers\n", file)
		return nil
	},
}

func init() {
	checkCmd.Flags().String("file", defaultTargetFile, "target HTML document")

	rootCmd.AddCommand(checkCmd)
}
