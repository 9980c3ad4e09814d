package lint

import (
	"fmt"
	"sort"
)

// Registry holds rules by name. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Add registers a rule. Пустое имя и повторная регистрация - ошибки
// программиста, не входных данных.
func (r *Registry) Add(rule Rule) error {
	name := rule.Meta().Name
	if name == "" {
		return fmt.Errorf("lint: rule with empty name")
	}
	if _, dup := r.rules[name]; dup {
		return fmt.Errorf("lint: rule %q registered twice", name)
	}
	r.rules[name] = rule
	return nil
}

// Get returns a rule by name.
func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Rules returns all rules sorted by name. Порядок фиксирован, чтобы
// выдача конвейера не зависела от порядка регистрации.
func (r *Registry) Rules() []Rule {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Rule, 0, len(names))
	for _, name := range names {
		out = append(out, r.rules[name])
	}
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int { return len(r.rules) }

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry populated by rule packages
// at init time.
func Default() *Registry { return defaultRegistry }

// Register adds a rule to the default registry and panics on
// programmer error (duplicate or unnamed rule). Предназначен для
// вызова из init().
func Register(rule Rule) {
	if err := defaultRegistry.Add(rule); err != nil {
		panic(err)
	}
}
