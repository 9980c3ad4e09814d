package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sgstyle/internal/diag"
)

// ConfigFileName governs a directory tree from the closest ancestor
// that contains it.
const ConfigFileName = "sgstyle.toml"

// FindConfig walks up from startDir to locate sgstyle.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// сырые секции TOML-файла; свободные опции правил остаются map[string]any
type fileConfig struct {
	Style struct {
		MaxWidth    int  `toml:"max_width"`
		IndentWidth int  `toml:"indent_width"`
		IndentTabs  bool `toml:"indent_tabs"`
	} `toml:"style"`
	Rules map[string]map[string]any `toml:"rules"`
}

// Load reads and validates a configuration file. Unset keys keep their
// defaults; rule options beyond enabled/severity are passed through
// untouched for the owning rule to interpret.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg := Default()
	if meta.IsDefined("style", "max_width") {
		if raw.Style.MaxWidth <= 0 {
			return Config{}, fmt.Errorf("%s: [style].max_width must be positive, got %d", path, raw.Style.MaxWidth)
		}
		cfg.MaxWidth = raw.Style.MaxWidth
	}
	if meta.IsDefined("style", "indent_width") {
		if raw.Style.IndentWidth <= 0 {
			return Config{}, fmt.Errorf("%s: [style].indent_width must be positive, got %d", path, raw.Style.IndentWidth)
		}
		cfg.Indent.Width = raw.Style.IndentWidth
	}
	if meta.IsDefined("style", "indent_tabs") {
		cfg.Indent.Tabs = raw.Style.IndentTabs
	}
	for name, table := range raw.Rules {
		rc, err := decodeRuleTable(path, name, table)
		if err != nil {
			return Config{}, err
		}
		cfg.Rules[name] = rc
	}
	return cfg, nil
}

func decodeRuleTable(path, name string, table map[string]any) (RuleConfig, error) {
	var rc RuleConfig
	for key, val := range table {
		switch key {
		case "enabled":
			b, ok := val.(bool)
			if !ok {
				return RuleConfig{}, fmt.Errorf("%s: [rules.%s].enabled must be a boolean", path, name)
			}
			rc.Enabled = &b
		case "severity":
			s, ok := val.(string)
			if !ok {
				return RuleConfig{}, fmt.Errorf("%s: [rules.%s].severity must be a string", path, name)
			}
			if _, known := diag.ParseSeverity(s); !known {
				return RuleConfig{}, fmt.Errorf("%s: [rules.%s].severity: unknown severity %q", path, name, s)
			}
			rc.Severity = &s
		default:
			if rc.Options == nil {
				rc.Options = make(map[string]any)
			}
			rc.Options[key] = val
		}
	}
	return rc, nil
}

// LoadForTarget finds and loads the configuration governing startDir.
// When no config file exists the defaults apply and the returned path
// is empty.
func LoadForTarget(startDir string) (Config, string, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
