package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/skim/internal/cache"
)

// cacheCmd is a first-class "skim cache clear" subcommand, alongside the
// root --clear-cache flag, matching the teacher's sibling-subcommand
// convention (versionCmd, listCmd, unmountCmd, cleanCmd registered next to
// the root command in cmd/mount.go).
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or manage skim's on-disk result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached transformation result",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cache.Default()
		if err != nil {
			return fmt.Errorf("resolving cache root: %w", err)
		}
		if err := c.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Fprintf(os.Stderr, "skim: cache cleared (%s)\n", c.Root())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
