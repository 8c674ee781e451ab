// Package cmd wires skim's Driver Glue (spec.md §4.C11): File Enumerator
// (C8) → Result Cache (C7) → Transformation Engine (C4) → Parallel Driver
// (C9) → Streaming Emitter (C10), exposed as a CLI. Flag registration and
// the rootCmd/Execute() shape are grounded on cmd/mount.go's flat
// package-level flag vars bound via Flags().StringVarP/BoolVarP and a
// sibling-subcommand layout (versionCmd, listCmd, unmountCmd, cleanCmd) —
// adapted here to mode/language/jobs/cache flags and a cacheCmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	modeFlag       string
	languageFlag   string
	jobsFlag       int
	noHeaderFlag   bool
	noCacheFlag    bool
	clearCacheFlag bool
	showStatsFlag  bool
	verboseFlag    bool
)

func init() {
	rootCmd.Flags().StringVarP(&modeFlag, "mode", "m", "structure", "Transformation mode: structure, signatures, types, full")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Explicit language tag (used when the extension is not recognized; required for stdin)")
	rootCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 0, "Worker pool size, 1-128 (0 = number of CPUs)")
	rootCmd.Flags().BoolVar(&noHeaderFlag, "no-header", false, "Suppress the \"// === path ===\" delimiter in multi-file output")
	rootCmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the result cache entirely")
	rootCmd.Flags().BoolVar(&clearCacheFlag, "clear-cache", false, "Clear the result cache and exit")
	rootCmd.Flags().BoolVar(&showStatsFlag, "show-stats", false, "Print an aggregate token-reduction line to stderr")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log each file's own before/after token counts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skim version %s (commit %s, built %s)\n", Version, Commit, Date)
	},
}

var rootCmd = &cobra.Command{
	Use:     "skim [path|pattern|-]",
	Short:   "Reduce source files to their structural skeleton for LLM context windows",
	Args:    cobra.MaximumNArgs(1),
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
