package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
)

func writeTemp(t *testing.T, name, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	fs.SetBaseDir(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func fixFinding(rule string, id source.FileID, start, end uint32, newText, oldText string) diag.Finding {
	sp := source.Span{File: id, Start: start, End: end}
	f := diag.Finding{Rule: rule, Severity: diag.SevWarning, Message: rule + " message", Span: sp}
	return f.WithFix("fix "+rule, diag.TextEdit{Span: sp, NewText: newText, OldText: oldText})
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestApplyWritesFile(t *testing.T) {
	fs, id, path := writeTemp(t, "a.sg", "let a=1;\n")
	findings := []diag.Finding{
		fixFinding("missing-eq-space", id, 5, 5, " ", ""),
		fixFinding("missing-val-space", id, 6, 6, " ", ""),
	}

	result, err := Apply(fs, findings, Options{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := readBack(t, path); got != "let a = 1;\n" {
		t.Errorf("file content = %q, want %q", got, "let a = 1;\n")
	}
	if len(result.Applied) != 2 {
		t.Errorf("applied = %d, want 2", len(result.Applied))
	}
	if len(result.FileChanges) != 1 || result.FileChanges[0].EditCount != 2 {
		t.Errorf("file changes = %+v", result.FileChanges)
	}
}

func TestApplyOldTextGuard(t *testing.T) {
	fs, id, path := writeTemp(t, "a.sg", "let a = 1;\n")
	findings := []diag.Finding{
		fixFinding("stale", id, 4, 5, "b", "x"),
	}

	result, err := Apply(fs, findings, Options{})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if got := readBack(t, path); got != "let a = 1;\n" {
		t.Errorf("file was modified: %q", got)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "existing text does not match expected content" {
		t.Errorf("skipped = %+v", result.Skipped)
	}
}

func TestApplyConflictSkipsLaterFix(t *testing.T) {
	fs, id, path := writeTemp(t, "a.sg", "abcdef\n")
	findings := []diag.Finding{
		fixFinding("first", id, 0, 4, "ABCD", "abcd"),
		fixFinding("second", id, 2, 6, "XXXX", "cdef"),
	}

	result, err := Apply(fs, findings, Options{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := readBack(t, path); got != "ABCDef\n" {
		t.Errorf("file content = %q, want %q", got, "ABCDef\n")
	}
	if len(result.Applied) != 1 || result.Applied[0].Rule != "first" {
		t.Errorf("applied = %+v", result.Applied)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Rule != "second" {
		t.Errorf("skipped = %+v", result.Skipped)
	}
}

func TestApplyDryRun(t *testing.T) {
	fs, id, path := writeTemp(t, "a.sg", "let a=1;\n")
	findings := []diag.Finding{fixFinding("space", id, 5, 5, " ", "")}

	result, err := Apply(fs, findings, Options{DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := readBack(t, path); got != "let a=1;\n" {
		t.Errorf("dry run modified the file: %q", got)
	}
	if len(result.FileChanges) != 1 {
		t.Fatalf("file changes = %+v", result.FileChanges)
	}
	if got := string(result.FileChanges[0].Content); got != "let a =1;\n" {
		t.Errorf("staged content = %q, want %q", got, "let a =1;\n")
	}
}

func TestApplyRuleFilter(t *testing.T) {
	fs, id, path := writeTemp(t, "a.sg", "ab\n")
	findings := []diag.Finding{
		fixFinding("keep", id, 0, 1, "A", "a"),
		fixFinding("drop", id, 1, 2, "B", "b"),
	}

	result, err := Apply(fs, findings, Options{Rules: []string{"keep"}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := readBack(t, path); got != "Ab\n" {
		t.Errorf("file content = %q, want %q", got, "Ab\n")
	}
	if len(result.Applied) != 1 || result.Applied[0].Rule != "keep" {
		t.Errorf("applied = %+v", result.Applied)
	}
}

func TestApplyVirtualFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("stdin.sg", []byte("let a=1;\n"))
	findings := []diag.Finding{fixFinding("space", id, 5, 5, " ", "")}

	// запись в виртуальный файл невозможна
	result, err := Apply(fs, findings, Options{})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "target file is virtual" {
		t.Errorf("skipped = %+v", result.Skipped)
	}

	// сухой прогон показывает результат, ничего не записывая
	result, err = Apply(fs, findings, Options{DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if len(result.FileChanges) != 1 {
		t.Fatalf("file changes = %+v", result.FileChanges)
	}
	if got := string(result.FileChanges[0].Content); got != "let a =1;\n" {
		t.Errorf("staged content = %q", got)
	}
}

func TestApplyDeterministicOrder(t *testing.T) {
	fs, id, _ := writeTemp(t, "a.sg", "abcdef\n")
	// находки поданы в обратном порядке спанов
	findings := []diag.Finding{
		fixFinding("late", id, 4, 5, "E", "e"),
		fixFinding("early", id, 0, 1, "A", "a"),
	}

	result, err := Apply(fs, findings, Options{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(result.Applied) != 2 {
		t.Fatalf("applied = %+v", result.Applied)
	}
	if result.Applied[0].Rule != "early" || result.Applied[1].Rule != "late" {
		t.Errorf("apply order = %s, %s; want early, late", result.Applied[0].Rule, result.Applied[1].Rule)
	}
}

func TestApplyNothingApplicable(t *testing.T) {
	fs, id, _ := writeTemp(t, "a.sg", "ab\n")
	findings := []diag.Finding{
		{Rule: "plain", Severity: diag.SevWarning, Message: "no fix", Span: source.Span{File: id, Start: 0, End: 1}},
	}
	if _, err := Apply(fs, findings, Options{}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
}
