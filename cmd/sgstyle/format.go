package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgstyle/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format surge source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	maxFindings, err := cmd.Root().PersistentFlags().GetInt("max-findings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
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
		return fmt.Errorf("fmt: %w", err)
	}

	run, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Config:      cfg,
		MaxFindings: maxFindings,
		Jobs:        jobs,
		Check:       check,
		Stdout:      writeToStdout,
		Timings:     showTimings,
	})
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(run.Results, &hasErrors)
		} else {
			renderFmtText(run.Results, check, quiet, &hasErrors, &hasChanges)
		}
	case "json":
		if err := renderFmtJSON(run.Results, check); err != nil {
			return err
		}
		for _, res := range run.Results {
			if res.Err != nil {
				hasErrors = true
			}
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if showTimings {
		fmt.Fprint(os.Stderr, run.Timing.Summary())
	}

	if hasErrors {
		// Пофайловые ошибки уже ушли в stderr, хватит кода возврата.
		cmd.SilenceErrors = true
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		cmd.SilenceErrors = true
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %v\n", res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %v\n", res.Err)
			continue
		}
		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}
		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
