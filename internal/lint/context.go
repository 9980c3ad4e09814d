package lint

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
)

// Pass describes the inputs of one lint pass. Tree and Sink are
// required; File is optional (rules needing verbatim source skip their
// checks without it); a nil Registry means the package default.
type Pass struct {
	Tree     *syntax.Tree
	Config   style.Config
	File     *source.File
	Sink     diag.Reporter
	Registry *Registry
}

// resolvedRule — закэшированное на проход состояние одного правила.
type resolvedRule struct {
	enabled  bool
	severity diag.Severity
}

// RuleFailure records one isolated rule invocation failure.
type RuleFailure struct {
	Rule string
	Span source.Span
	Err  error
}

// Context carries the shared state of one pass: resolved configuration,
// the tree, optional original source, and the finding sink. Read-only
// after construction; only the sink and the failure list accumulate.
// A Context is file-relative and is never reused across files.
type Context struct {
	tree     *syntax.Tree
	cfg      style.Config
	file     *source.File
	sink     diag.Reporter
	registry *Registry

	resolved map[string]resolvedRule
	failures []RuleFailure
	dropped  int
}

// NewContext resolves the enabled state and severity of every
// registered rule once and returns the pass context.
func NewContext(p Pass) *Context {
	reg := p.Registry
	if reg == nil {
		reg = Default()
	}
	c := &Context{
		tree:     p.Tree,
		cfg:      p.Config,
		file:     p.File,
		sink:     p.Sink,
		registry: reg,
		resolved: make(map[string]resolvedRule),
	}
	for _, r := range reg.Rules() {
		m := r.Meta()
		c.resolved[m.Name] = c.resolve(m.Name, m.Enabled, m.Severity)
	}
	// зарезервированные категории настраиваются как правила, хотя
	// работают вне конвейера
	c.resolved[diag.RuleWhitespace] = c.resolve(diag.RuleWhitespace, true, diag.SevWarning)
	return c
}

func (c *Context) resolve(name string, enabled bool, sev diag.Severity) resolvedRule {
	rc, ok := c.cfg.Rule(name)
	if !ok {
		return resolvedRule{enabled: enabled, severity: sev}
	}
	if rc.Enabled != nil {
		enabled = *rc.Enabled
	}
	if rc.Severity != nil {
		if s, ok := diag.ParseSeverity(*rc.Severity); ok {
			sev = s
		}
	}
	return resolvedRule{enabled: enabled, severity: sev}
}

// Tree returns the tree under analysis.
func (c *Context) Tree() *syntax.Tree { return c.tree }

// Config returns the style configuration of the pass.
func (c *Context) Config() style.Config { return c.cfg }

// SourceFile returns the original file when the pass was built with
// one. Checks needing verbatim text skip their work on ok == false.
func (c *Context) SourceFile() (*source.File, bool) {
	return c.file, c.file != nil
}

// Enabled reports the cached enabled state of a rule or reserved
// category. Unknown names count as disabled.
func (c *Context) Enabled(name string) bool {
	return c.resolved[name].enabled
}

// SeverityFor returns the cached severity of a rule or reserved
// category.
func (c *Context) SeverityFor(name string) diag.Severity {
	return c.resolved[name].severity
}

// RuleOptions returns the free-form options configured for a rule.
// Валидацию делает само правило при чтении.
func (c *Context) RuleOptions(name string) style.RuleConfig {
	rc, _ := c.cfg.Rule(name)
	return rc
}

// Report stamps the resolved severity of the finding's rule and
// forwards it to the sink. Спан вне границ источника не пропускается:
// такая находка отбрасывается и учитывается в Dropped.
func (c *Context) Report(f diag.Finding) {
	if r, ok := c.resolved[f.Rule]; ok {
		f.Severity = r.severity
	}
	if !c.spanInBounds(f.Span) {
		c.dropped++
		return
	}
	if c.sink != nil {
		c.sink.Report(f)
	}
}

func (c *Context) spanInBounds(sp source.Span) bool {
	if sp.Start > sp.End {
		return false
	}
	if c.file == nil {
		return true
	}
	if sp.File != c.file.ID {
		return false
	}
	return sp.End <= c.file.FullSpan().End
}

func (c *Context) fail(rule string, sp source.Span, err error) {
	c.failures = append(c.failures, RuleFailure{Rule: rule, Span: sp, Err: err})
}

// Failures returns the rule invocation failures recorded during Run.
func (c *Context) Failures() []RuleFailure { return c.failures }

// Dropped returns how many findings were rejected for out-of-bounds
// spans.
func (c *Context) Dropped() int { return c.dropped }
