package driver

import (
	"context"

	"sgstyle/internal/fix"
)

// FixOptions configures an apply-fixes run.
type FixOptions struct {
	Options

	// Rules limits fixing to findings of the listed rules; empty
	// means every rule with a fix.
	Rules []string

	// DryRun stages every change but writes nothing to disk.
	DryRun bool
}

// FixOutcome pairs a diagnostic pass with the fixes applied on top
// of it.
type FixOutcome struct {
	Check  *CheckResult
	Result *fix.Result
}

// ApplyFixes runs the check pipeline over paths, then applies the
// mechanical fixes attached to the findings. fix.ErrNoFixes is
// returned together with the outcome so callers can still render the
// findings of a fixless run.
func ApplyFixes(ctx context.Context, paths []string, opts FixOptions) (*FixOutcome, error) {
	check, err := CheckPaths(ctx, paths, opts.Options)
	if err != nil {
		return nil, err
	}
	result, err := fix.Apply(check.FileSet, check.Bag.Items(), fix.Options{
		Rules:  opts.Rules,
		DryRun: opts.DryRun,
	})
	return &FixOutcome{Check: check, Result: result}, err
}
