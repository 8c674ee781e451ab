package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/skim/internal/cache"
	"github.com/agentic-research/skim/internal/driver"
	"github.com/agentic-research/skim/internal/enumerate"
	"github.com/agentic-research/skim/internal/errutil"
	"github.com/agentic-research/skim/internal/registry"
	"github.com/agentic-research/skim/internal/transform"
)

func runRoot(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}

	c, err := resolveCache()
	if err != nil {
		return err
	}
	if clearCacheFlag {
		if c != nil {
			if err := c.Clear(); err != nil {
				fmt.Fprintf(os.Stderr, "skim: clearing cache: %v\n", err)
			}
		}
		return nil
	}

	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	if input == "-" {
		return runStdin(mode)
	}
	return runPaths(input, mode, c)
}

func parseMode(tag string) (transform.Mode, error) {
	switch strings.ToLower(tag) {
	case "structure":
		return transform.Structure, nil
	case "signatures":
		return transform.Signatures, nil
	case "types":
		return transform.Types, nil
	case "full":
		return transform.Full, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want structure, signatures, types, or full)", tag)
	}
}

func resolveCache() (*cache.Cache, error) {
	if noCacheFlag {
		return nil, nil
	}
	c, err := cache.Default()
	if err != nil {
		return nil, fmt.Errorf("resolving cache root: %w", err)
	}
	return c, nil
}

// runStdin handles "-" input (spec.md §6): the cache is bypassed entirely
// and a language tag is required since there is no path extension to
// resolve from.
func runStdin(mode transform.Mode) error {
	if languageFlag == "" {
		return fmt.Errorf("--language is required when reading from stdin")
	}
	tag := languageFlag
	isTSX := strings.EqualFold(tag, "tsx")
	if isTSX {
		tag = "typescript"
	}
	lang, ok := registry.ParseTag(tag)
	if !ok {
		return errutil.New(errutil.UnsupportedLanguage, "unrecognized language tag %q", languageFlag)
	}
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	res, err := transform.Transform("<stdin>", source, lang, mode, transform.Options{
		ComputeStats: showStatsFlag || verboseFlag,
		IsTSX:        isTSX,
	})
	if err != nil {
		return reportExit(err)
	}
	os.Stdout.Write(res.Output)
	if showStatsFlag {
		fmt.Fprintln(os.Stderr, driver.Aggregate([]driver.FileResult{{Result: res}}))
	}
	return nil
}

// runPaths handles file/directory/glob input against the driver pipeline.
func runPaths(input string, mode transform.Mode, c *cache.Cache) error {
	paths, err := enumerate.Enumerate(enumerateMode(input), input)
	if err != nil {
		return reportExit(err)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "skim: no matching files for %q\n", input)
		return nil
	}

	results := driver.Run(paths, driver.Options{
		Mode:         mode,
		Language:     languageFlag,
		Workers:      jobsFlag,
		Cache:        c,
		NoCache:      noCacheFlag,
		ComputeStats: showStatsFlag || verboseFlag,
	})

	em := driver.NewEmitter(os.Stdout, baseDirOf(input), len(paths) > 1, noHeaderFlag)
	hadError := false
	for _, r := range results {
		if r.Err != nil {
			hadError = true
			fmt.Fprintf(os.Stderr, "skim: %s: %v\n", r.Path, r.Err)
			continue
		}
		if verboseFlag {
			log.Printf("%s: %d -> %d tokens", r.Path, r.Result.OriginalTokens, r.Result.TransformedTokens)
		}
		if err := em.Emit(r.Path, r.Result.Output); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := em.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	if showStatsFlag {
		fmt.Fprintln(os.Stderr, driver.Aggregate(results))
	}

	if hadError {
		os.Exit(1)
	}
	return nil
}

func enumerateMode(input string) enumerate.Mode {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return enumerate.Dir
	}
	if strings.ContainsAny(input, "*?[") {
		return enumerate.Glob
	}
	return enumerate.File
}

func baseDirOf(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return input
	}
	return "."
}

// reportExit maps a driver-level error to the process exit code table
// (spec.md §6/§7): it prints a single-line "skim: <error>" message (an
// *errutil.Error already carries its kind and path) and exits with the
// Kind's code directly, since cobra's default error printing only ever
// exits 1. An error that carries no Kind exits 1, the general-error code.
func reportExit(err error) error {
	fmt.Fprintf(os.Stderr, "skim: %v\n", err)
	code := 1
	if kind, ok := errutil.KindOf(err); ok {
		code = errutil.ExitCode(kind)
	}
	os.Exit(code)
	return nil
}
