package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgstyle/internal/driver"
	"sgstyle/internal/fix"
	"sgstyle/internal/version"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <path> [path...]",
	Short: "Apply available fixes to surge source files",
	Long:  `Run the lint pipeline, collect the mechanical fixes attached to its findings, and apply them`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFixCmd,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "list the changes without writing them")
	fixCmd.Flags().StringSlice("rules", nil, "only apply fixes of the named rules")
}

func runFixCmd(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	ruleFilter, err := cmd.Flags().GetStringSlice("rules")
	if err != nil {
		return err
	}
	maxFindings, err := cmd.Root().PersistentFlags().GetInt("max-findings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
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
		return fmt.Errorf("fix: %w", err)
	}

	// Кеш здесь не используется: fix меняет файлы, отчёт обязан
	// считаться от текущего содержимого.
	outcome, err := driver.ApplyFixes(cmd.Context(), args, driver.FixOptions{
		Options: driver.Options{
			Config:      cfg,
			MaxFindings: maxFindings,
			ToolVersion: version.Version,
		},
		Rules:  ruleFilter,
		DryRun: dryRun,
	})
	if err != nil && !errors.Is(err, fix.ErrNoFixes) {
		return fmt.Errorf("fix: %w", err)
	}
	return renderFixResult(outcome.Result, dryRun, quiet, err)
}

func renderFixResult(res *fix.Result, dryRun, quiet bool, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 && !quiet {
		verb := "Applied"
		if dryRun {
			verb = "Would apply"
		}
		fmt.Fprintf(os.Stdout, "%s %d fix(es):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			fmt.Fprintf(os.Stdout, "  %s — %s (%s, %d edits)\n",
				item.Title, item.Path, item.Rule, item.EditCount)
		}
	}

	if len(res.FileChanges) > 0 && !quiet {
		header := "Updated files:"
		if dryRun {
			header = "Files that would change:"
		}
		fmt.Fprintln(os.Stdout, header)
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 && !quiet {
		fmt.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s (%s): %s\n", skip.Title, skip.Rule, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  (%s): %s\n", skip.Rule, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			if !quiet {
				fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			}
			return nil
		}
		return applyErr
	}
	return nil
}
