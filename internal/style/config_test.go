package style

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxWidth != 100 {
		t.Errorf("MaxWidth = %d, want 100", cfg.MaxWidth)
	}
	if cfg.Indent.Width != 4 {
		t.Errorf("Indent.Width = %d, want 4", cfg.Indent.Width)
	}
	if cfg.Indent.Tabs {
		t.Error("Indent.Tabs = true, want false")
	}
	if cfg.Rules == nil {
		t.Error("Rules map should be allocated")
	}
}

func TestIndentText(t *testing.T) {
	tests := []struct {
		name   string
		indent Indent
		want   string
	}{
		{"four spaces", Indent{Width: 4}, "    "},
		{"two spaces", Indent{Width: 2}, "  "},
		{"tab", Indent{Width: 4, Tabs: true}, "\t"},
		{"zero width falls back", Indent{}, "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.indent.IndentText(); got != tt.want {
				t.Errorf("IndentText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntOption(t *testing.T) {
	rc := RuleConfig{Options: map[string]any{
		"max":   int64(3),
		"label": "x",
	}}

	v, ok, err := rc.IntOption("max")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || v != 3 {
		t.Errorf("IntOption(max) = (%d, %t), want (3, true)", v, ok)
	}

	_, ok, err = rc.IntOption("absent")
	if err != nil || ok {
		t.Errorf("absent option: ok=%t err=%v, want (false, nil)", ok, err)
	}

	_, _, err = rc.IntOption("label")
	if err == nil {
		t.Fatal("expected type error for string option read as int")
	}
	var optErr *OptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("expected *OptionError, got %T", err)
	}
	if optErr.Key != "label" || optErr.Want != "integer" {
		t.Errorf("OptionError = %+v", optErr)
	}
}

func TestBoolOption(t *testing.T) {
	rc := RuleConfig{Options: map[string]any{
		"strict": true,
		"max":    int64(1),
	}}

	v, ok, err := rc.BoolOption("strict")
	if err != nil || !ok || !v {
		t.Errorf("BoolOption(strict) = (%t, %t, %v), want (true, true, nil)", v, ok, err)
	}
	if _, _, err := rc.BoolOption("max"); err == nil {
		t.Error("expected type error for int option read as bool")
	}
}

func TestRuleLookup(t *testing.T) {
	enabled := false
	cfg := Default()
	cfg.Rules["line-length"] = RuleConfig{Enabled: &enabled}

	rc, ok := cfg.Rule("line-length")
	if !ok {
		t.Fatal("expected configured rule to be found")
	}
	if rc.Enabled == nil || *rc.Enabled {
		t.Error("expected Enabled = false")
	}
	if _, ok := cfg.Rule("missing"); ok {
		t.Error("unconfigured rule should not be found")
	}
}

func TestHashDeterministic(t *testing.T) {
	build := func(order []string) Config {
		cfg := Default()
		for _, name := range order {
			on := true
			cfg.Rules[name] = RuleConfig{
				Enabled: &on,
				Options: map[string]any{"max": int64(2), "mode": "strict"},
			}
		}
		return cfg
	}

	a := Hash(build([]string{"alpha", "beta", "gamma"}))
	b := Hash(build([]string{"gamma", "alpha", "beta"}))
	if a != b {
		t.Error("insertion order must not affect the digest")
	}
}

func TestHashSensitivity(t *testing.T) {
	base := Default()
	same := Default()
	if Hash(base) != Hash(same) {
		t.Fatal("identical configs must hash equally")
	}

	widened := Default()
	widened.MaxWidth = 120
	if Hash(base) == Hash(widened) {
		t.Error("max width change must change the digest")
	}

	withRule := Default()
	withRule.Rules["line-length"] = RuleConfig{Options: map[string]any{"max": int64(80)}}
	if Hash(base) == Hash(withRule) {
		t.Error("adding a rule must change the digest")
	}

	otherOption := Default()
	otherOption.Rules["line-length"] = RuleConfig{Options: map[string]any{"max": int64(90)}}
	if Hash(withRule) == Hash(otherOption) {
		t.Error("option value change must change the digest")
	}
}

func TestCombine(t *testing.T) {
	var a, b Digest
	a[0] = 1
	b[0] = 2

	if Combine(a, b) == Combine(b, a) {
		t.Error("combine must be order-sensitive")
	}
	if Combine(a) == Combine(a, b) {
		t.Error("combine must fold every part")
	}
}
