package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgstyle/internal/diagfmt"
	"sgstyle/internal/driver"
	"sgstyle/internal/version"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <path> [path...]",
	Short: "Lint surge source files",
	Long:  `Run the style rule pipeline and the whitespace linter over surge source files or directories`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "text", "output format (text|json|sarif)")
	lintCmd.Flags().StringSlice("enable", nil, "force-enable the named rules")
	lintCmd.Flags().StringSlice("disable", nil, "force-disable the named rules")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	lintCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	lintCmd.Flags().Bool("strict", false, "exit non-zero on any finding, not only errors")
	lintCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	lintCmd.Flags().Bool("with-notes", false, "include finding notes in output")
	lintCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	enable, err := cmd.Flags().GetStringSlice("enable")
	if err != nil {
		return err
	}
	disable, err := cmd.Flags().GetStringSlice("disable")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	maxFindings, err := cmd.Root().PersistentFlags().GetInt("max-findings")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, _, err := resolveConfig(cmd, args)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	applyRuleFilters(&cfg, enable, disable)

	opts := driver.Options{
		Config:      cfg,
		MaxFindings: maxFindings,
		Jobs:        jobs,
		ToolVersion: version.Version,
		Timings:     showTimings,
	}
	if !noCache {
		// Недоступный кеш не мешает прогону.
		if cache, cacheErr := driver.OpenDiskCache("sgstyle"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	// TUI занимает stdout, машинные форматы с ним несовместимы.
	useTUI := enableTUI(mode, format, quiet)

	var result *driver.CheckResult
	if useTUI {
		result, err = runCheckWithUI(cmd.Context(), "lint", args, opts)
	} else {
		result, err = driver.CheckPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	switch format {
	case "text":
		diagfmt.Pretty(os.Stdout, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:       useColor,
			Context:     2,
			PathMode:    pathMode,
			ShowNotes:   withNotes,
			ShowFixes:   suggest,
			ShowPreview: suggest,
		})
		if !quiet && result.Bag.Len() > 0 {
			fmt.Fprintf(os.Stdout, "%d findings (%d errors) in %d files\n",
				result.Bag.Len(), result.ErrCount(), len(result.Files))
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest,
			IncludePreviews:  suggest,
		}
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, jsonOpts); err != nil {
			return fmt.Errorf("lint: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:    "sgstyle",
			ToolVersion: version.Version,
		}
		if err := diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, meta); err != nil {
			return fmt.Errorf("lint: %w", err)
		}
	default:
		return fmt.Errorf("lint: unknown format %q", format)
	}

	var infraFailed bool
	for _, rep := range result.Files {
		if rep.Err != nil {
			infraFailed = true
			fmt.Fprintf(os.Stderr, "lint: %s: %v\n", rep.Path, rep.Err)
		}
		for _, fail := range rep.Failures {
			fmt.Fprintf(os.Stderr, "lint: rule %s failed on %s: %v\n", fail.Rule, rep.Path, fail.Err)
		}
	}

	if showTimings {
		fmt.Fprint(os.Stderr, result.Timing.Summary())
	}

	failed := infraFailed || result.Bag.HasErrors()
	if strict && result.Bag.Len() > 0 {
		failed = true
	}
	if failed {
		// Находки уже напечатаны, cobra не должна дублировать.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}
