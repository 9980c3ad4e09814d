package style

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if writeErr := os.WriteFile(path, []byte(content), 0o600); writeErr != nil {
		t.Fatalf("write config: %v", writeErr)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[style]
max_width = 80
indent_width = 2
indent_tabs = true

[rules.max-blank-lines]
enabled = true
severity = "error"
max = 2

[rules.line-length]
enabled = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxWidth != 80 {
		t.Errorf("MaxWidth = %d, want 80", cfg.MaxWidth)
	}
	if cfg.Indent.Width != 2 || !cfg.Indent.Tabs {
		t.Errorf("Indent = %+v, want {2 true}", cfg.Indent)
	}

	mbl, ok := cfg.Rule("max-blank-lines")
	if !ok {
		t.Fatal("max-blank-lines should be configured")
	}
	if mbl.Enabled == nil || !*mbl.Enabled {
		t.Error("max-blank-lines should be enabled")
	}
	if mbl.Severity == nil || *mbl.Severity != "error" {
		t.Errorf("severity = %v, want error", mbl.Severity)
	}
	max, ok, err := mbl.IntOption("max")
	if err != nil || !ok || max != 2 {
		t.Errorf("max option = (%d, %t, %v), want (2, true, nil)", max, ok, err)
	}

	ll, ok := cfg.Rule("line-length")
	if !ok || ll.Enabled == nil || *ll.Enabled {
		t.Error("line-length should be configured and disabled")
	}
	if ll.Severity != nil {
		t.Error("line-length severity should be unset")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[style]\nmax_width = 72\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxWidth != 72 {
		t.Errorf("MaxWidth = %d, want 72", cfg.MaxWidth)
	}
	if cfg.Indent.Width != DefaultIndentWidth || cfg.Indent.Tabs {
		t.Errorf("unset indent keys must keep defaults, got %+v", cfg.Indent)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxWidth != DefaultMaxWidth || cfg.Indent.Width != DefaultIndentWidth {
		t.Errorf("empty file must yield defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero max_width", "[style]\nmax_width = 0\n"},
		{"negative indent", "[style]\nindent_width = -1\n"},
		{"enabled not bool", "[rules.x]\nenabled = \"yes\"\n"},
		{"severity not string", "[rules.x]\nseverity = 2\n"},
		{"unknown severity", "[rules.x]\nseverity = \"fatal\"\n"},
		{"broken toml", "[style\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeConfig(t, dir, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[style]\nmax_width = 90\n")

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, ok, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if !ok {
		t.Fatal("expected config to be discovered from nested dir")
	}
	if found != path {
		t.Errorf("found %q, want %q", found, path)
	}
}

func TestFindConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindConfig(dir)
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if ok {
		t.Error("expected no config in a fresh temp dir")
	}
}

func TestLoadForTarget(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[style]\nmax_width = 90\n")
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, path, err := LoadForTarget(nested)
	if err != nil {
		t.Fatalf("LoadForTarget: %v", err)
	}
	if path == "" {
		t.Error("expected a config path")
	}
	if cfg.MaxWidth != 90 {
		t.Errorf("MaxWidth = %d, want 90", cfg.MaxWidth)
	}

	empty := t.TempDir()
	cfg, path, err = LoadForTarget(empty)
	if err != nil {
		t.Fatalf("LoadForTarget without config: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty path, got %q", path)
	}
	if cfg.MaxWidth != DefaultMaxWidth {
		t.Errorf("expected defaults, got MaxWidth=%d", cfg.MaxWidth)
	}
}
