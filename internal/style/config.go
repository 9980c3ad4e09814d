package style

import (
	"fortio.org/safecast"
)

// Config enumerates the style knobs consulted by the formatter and the
// rule pipeline: maximum line width, indentation unit, and per-rule
// settings. Pure data; produced by Load or by literals in tests.
type Config struct {
	MaxWidth int
	Indent   Indent
	Rules    map[string]RuleConfig
}

// Indent describes one indentation level.
type Indent struct {
	Width int
	Tabs  bool
}

// RuleConfig carries the settings of a single rule. Nil pointers mean
// "not set here"; Options is free-form and validated lazily by the rule
// that owns it.
type RuleConfig struct {
	Enabled  *bool
	Severity *string
	Options  map[string]any
}

const (
	DefaultMaxWidth    = 100
	DefaultIndentWidth = 4
)

// Default returns the configuration used when no sgstyle.toml governs
// the target.
func Default() Config {
	return Config{
		MaxWidth: DefaultMaxWidth,
		Indent:   Indent{Width: DefaultIndentWidth},
		Rules:    map[string]RuleConfig{},
	}
}

// Rule returns the configured entry for a rule; ok reports whether the
// configuration mentions the rule at all.
func (c Config) Rule(name string) (RuleConfig, bool) {
	rc, ok := c.Rules[name]
	return rc, ok
}

// IndentText returns one indentation level as text.
func (i Indent) IndentText() string {
	if i.Tabs {
		return "\t"
	}
	w := i.Width
	if w <= 0 {
		w = DefaultIndentWidth
	}
	out := make([]byte, w)
	for j := range out {
		out[j] = ' '
	}
	return string(out)
}

// IntOption reads an integer option by key. ok is false when the option
// is absent; err is set when it is present but not an integer.
func (rc RuleConfig) IntOption(key string) (v int, ok bool, err error) {
	raw, present := rc.Options[key]
	if !present {
		return 0, false, nil
	}
	// TOML целые приходят как int64
	i64, isInt := raw.(int64)
	if !isInt {
		return 0, false, &OptionError{Key: key, Want: "integer", Got: raw}
	}
	v, err = safecast.Conv[int](i64)
	if err != nil {
		return 0, false, &OptionError{Key: key, Want: "integer", Got: raw}
	}
	return v, true, nil
}

// BoolOption reads a boolean option by key, with the same contract as
// IntOption.
func (rc RuleConfig) BoolOption(key string) (v bool, ok bool, err error) {
	raw, present := rc.Options[key]
	if !present {
		return false, false, nil
	}
	b, isBool := raw.(bool)
	if !isBool {
		return false, false, &OptionError{Key: key, Want: "boolean", Got: raw}
	}
	return b, true, nil
}

// OptionError describes a rule option with an unusable value.
type OptionError struct {
	Key  string
	Want string
	Got  any
}

func (e *OptionError) Error() string {
	return "option " + e.Key + ": expected " + e.Want + ", got " + typeName(e.Got)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return "unsupported value"
	}
}
