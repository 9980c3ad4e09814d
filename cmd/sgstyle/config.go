package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sgstyle/internal/style"
)

// resolveConfig loads the effective style configuration: an explicit
// --config path wins, otherwise sgstyle.toml is discovered upward from
// the first target. Возвращаемый путь пуст, когда действуют дефолты.
func resolveConfig(cmd *cobra.Command, args []string) (style.Config, string, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return style.Config{}, "", err
	}
	if explicit != "" {
		cfg, err := style.Load(explicit)
		if err != nil {
			return style.Config{}, "", err
		}
		return cfg, explicit, nil
	}

	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}
	return style.LoadForTarget(start)
}

// applyRuleFilters overrides the enabled state of the named rules on
// top of the loaded configuration. Disable wins over enable for a rule
// named in both lists.
func applyRuleFilters(cfg *style.Config, enable, disable []string) {
	if cfg.Rules == nil {
		cfg.Rules = map[string]style.RuleConfig{}
	}
	for _, name := range enable {
		rc := cfg.Rules[name]
		on := true
		rc.Enabled = &on
		cfg.Rules[name] = rc
	}
	for _, name := range disable {
		rc := cfg.Rules[name]
		off := false
		rc.Enabled = &off
		cfg.Rules[name] = rc
	}
}
