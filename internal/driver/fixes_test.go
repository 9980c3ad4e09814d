package driver

import (
	"context"
	"errors"
	"testing"

	"sgstyle/internal/fix"
	"sgstyle/internal/style"
)

func TestApplyFixesRemovesTrailingWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.sg", "let a = 1; \n")

	outcome, err := ApplyFixes(context.Background(), []string{dir},
		FixOptions{Options: Options{Config: style.Default()}})
	if err != nil {
		t.Fatalf("ApplyFixes: %v", err)
	}
	if len(outcome.Result.Applied) != 1 {
		t.Fatalf("applied %d fixes, want 1: %+v", len(outcome.Result.Applied), outcome.Result)
	}
	if got := readBack(t, path); got != "let a = 1;\n" {
		t.Errorf("on disk = %q, want %q", got, "let a = 1;\n")
	}
}

func TestApplyFixesDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.sg", "let a = 1; \n")

	outcome, err := ApplyFixes(context.Background(), []string{dir},
		FixOptions{Options: Options{Config: style.Default()}, DryRun: true})
	if err != nil {
		t.Fatalf("ApplyFixes: %v", err)
	}
	if len(outcome.Result.FileChanges) != 1 {
		t.Fatalf("staged %d files, want 1", len(outcome.Result.FileChanges))
	}
	if got := string(outcome.Result.FileChanges[0].Content); got != "let a = 1;\n" {
		t.Errorf("staged content = %q, want %q", got, "let a = 1;\n")
	}
	if got := readBack(t, path); got != "let a = 1; \n" {
		t.Errorf("dry run touched the file: %q", got)
	}
}

func TestApplyFixesRuleFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.sg", "let a = 1; \n")

	// Фильтр по чужому правилу: фикс есть, но применять нечего.
	outcome, err := ApplyFixes(context.Background(), []string{dir},
		FixOptions{Options: Options{Config: style.Default()}, Rules: []string{"import-order"}})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if outcome == nil || outcome.Check == nil {
		t.Fatal("outcome missing the check result")
	}
	if got := readBack(t, path); got != "let a = 1; \n" {
		t.Errorf("filtered run touched the file: %q", got)
	}
}

func TestApplyFixesNoFixes(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.sg", "let a = 1;\n")

	outcome, err := ApplyFixes(context.Background(), []string{dir},
		FixOptions{Options: Options{Config: style.Default()}})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if outcome == nil || outcome.Check == nil {
		t.Fatal("outcome missing the check result")
	}
	if outcome.Check.Bag.Len() != 0 {
		t.Errorf("clean file produced findings: %d", outcome.Check.Bag.Len())
	}
}
