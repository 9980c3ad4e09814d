package main

import (
	"testing"

	"sgstyle/internal/style"
)

func TestApplyRuleFilters(t *testing.T) {
	cfg := style.Default()
	sev := "error"
	cfg.Rules["line-length"] = style.RuleConfig{Severity: &sev}

	applyRuleFilters(&cfg, []string{"unicode-norm"}, []string{"line-length", "import-order"})

	if rc := cfg.Rules["unicode-norm"]; rc.Enabled == nil || !*rc.Enabled {
		t.Error("enable filter did not set Enabled=true")
	}
	if rc := cfg.Rules["line-length"]; rc.Enabled == nil || *rc.Enabled {
		t.Error("disable filter did not set Enabled=false")
	}
	// Остальные поля настройки не затираются.
	if rc := cfg.Rules["line-length"]; rc.Severity == nil || *rc.Severity != "error" {
		t.Error("disable filter dropped the configured severity")
	}
	if rc := cfg.Rules["import-order"]; rc.Enabled == nil || *rc.Enabled {
		t.Error("disable filter missed a rule without prior config")
	}
}

func TestApplyRuleFiltersDisableWins(t *testing.T) {
	cfg := style.Config{}
	applyRuleFilters(&cfg, []string{"line-length"}, []string{"line-length"})
	if rc := cfg.Rules["line-length"]; rc.Enabled == nil || *rc.Enabled {
		t.Error("rule named in both lists must end up disabled")
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"auto", uiModeAuto, false},
		{"", uiModeAuto, false},
		{"on", uiModeOn, false},
		{"OFF", uiModeOff, false},
		{" on ", uiModeOn, false},
		{"fancy", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("readUIMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("readUIMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
