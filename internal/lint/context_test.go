package lint

// Тесты контекста прохода: кэш разрешения правил, штамп строгости,
// контроль границ спанов.

import (
	"testing"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
)

// fakeRule — настраиваемое правило для тестов конвейера.
type fakeRule struct {
	meta  Meta
	enter func(ctx *Context, id syntax.NodeID) error
}

func (r *fakeRule) Meta() Meta { return r.meta }

func (r *fakeRule) Enter(ctx *Context, id syntax.NodeID) error {
	if r.enter == nil {
		return nil
	}
	return r.enter(ctx, id)
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func testRegistry(t *testing.T, rules ...Rule) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, r := range rules {
		if err := reg.Add(r); err != nil {
			t.Fatalf("register %q: %v", r.Meta().Name, err)
		}
	}
	return reg
}

func TestContextResolution(t *testing.T) {
	rule := &fakeRule{meta: Meta{
		Name:     "demo",
		Severity: diag.SevWarning,
		Enabled:  true,
		Kinds:    []syntax.NodeKind{syntax.KindLetDecl},
	}}

	tests := []struct {
		name        string
		cfg         style.Config
		wantEnabled bool
		wantSev     diag.Severity
	}{
		{
			name:        "defaults",
			cfg:         style.Default(),
			wantEnabled: true,
			wantSev:     diag.SevWarning,
		},
		{
			name: "disabled by config",
			cfg: style.Config{Rules: map[string]style.RuleConfig{
				"demo": {Enabled: boolPtr(false)},
			}},
			wantEnabled: false,
			wantSev:     diag.SevWarning,
		},
		{
			name: "severity override",
			cfg: style.Config{Rules: map[string]style.RuleConfig{
				"demo": {Severity: strPtr("error")},
			}},
			wantEnabled: true,
			wantSev:     diag.SevError,
		},
		{
			name: "unknown severity label keeps default",
			cfg: style.Config{Rules: map[string]style.RuleConfig{
				"demo": {Severity: strPtr("loud")},
			}},
			wantEnabled: true,
			wantSev:     diag.SevWarning,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(Pass{
				Config:   tt.cfg,
				Sink:     diag.NewBag(10),
				Registry: testRegistry(t, rule),
			})
			if got := ctx.Enabled("demo"); got != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", got, tt.wantEnabled)
			}
			if got := ctx.SeverityFor("demo"); got != tt.wantSev {
				t.Errorf("SeverityFor = %v, want %v", got, tt.wantSev)
			}
		})
	}
}

func TestContextReservedWhitespaceCategory(t *testing.T) {
	ctx := NewContext(Pass{
		Config:   style.Default(),
		Sink:     diag.NewBag(10),
		Registry: NewRegistry(),
	})
	if !ctx.Enabled(diag.RuleWhitespace) {
		t.Error("whitespace category must default to enabled")
	}
	if got := ctx.SeverityFor(diag.RuleWhitespace); got != diag.SevWarning {
		t.Errorf("whitespace severity = %v, want WARNING", got)
	}

	off := NewContext(Pass{
		Config: style.Config{Rules: map[string]style.RuleConfig{
			diag.RuleWhitespace: {Enabled: boolPtr(false)},
		}},
		Sink:     diag.NewBag(10),
		Registry: NewRegistry(),
	})
	if off.Enabled(diag.RuleWhitespace) {
		t.Error("whitespace category must honor enabled = false")
	}
}

func TestContextUnknownRuleDisabled(t *testing.T) {
	ctx := NewContext(Pass{
		Config:   style.Default(),
		Sink:     diag.NewBag(10),
		Registry: NewRegistry(),
	})
	if ctx.Enabled("no-such-rule") {
		t.Error("unknown rule must count as disabled")
	}
}

func TestContextReportStampsSeverity(t *testing.T) {
	rule := &fakeRule{meta: Meta{Name: "demo", Severity: diag.SevInfo, Enabled: true}}
	bag := diag.NewBag(10)
	ctx := NewContext(Pass{
		Config: style.Config{Rules: map[string]style.RuleConfig{
			"demo": {Severity: strPtr("error")},
		}},
		Sink:     bag,
		Registry: testRegistry(t, rule),
	})

	ctx.Report(diag.Finding{Rule: "demo", Message: "m"})
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("got %d findings, want 1", len(items))
	}
	if items[0].Severity != diag.SevError {
		t.Errorf("severity = %v, want ERROR", items[0].Severity)
	}
}

func TestContextSpanBounds(t *testing.T) {
	content := "let x = 1;\n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sg", []byte(content)))

	tests := []struct {
		name     string
		span     source.Span
		wantKept bool
	}{
		{"inside", source.Span{File: file.ID, Start: 4, End: 5}, true},
		{"full file", file.FullSpan(), true},
		{"end past content", source.Span{File: file.ID, Start: 0, End: 99}, false},
		{"inverted", source.Span{File: file.ID, Start: 5, End: 4}, false},
		{"wrong file", source.Span{File: file.ID + 1, Start: 0, End: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := diag.NewBag(10)
			ctx := NewContext(Pass{
				File:     file,
				Config:   style.Default(),
				Sink:     bag,
				Registry: NewRegistry(),
			})
			ctx.Report(diag.Finding{Rule: "demo", Message: "m", Span: tt.span})
			kept := bag.Len() == 1
			if kept != tt.wantKept {
				t.Errorf("kept = %v, want %v (dropped %d)", kept, tt.wantKept, ctx.Dropped())
			}
			if !tt.wantKept && ctx.Dropped() != 1 {
				t.Errorf("Dropped = %d, want 1", ctx.Dropped())
			}
		})
	}
}

// Без источника проверяется только согласованность спана.
func TestContextSpanBoundsNoSource(t *testing.T) {
	bag := diag.NewBag(10)
	ctx := NewContext(Pass{
		Config:   style.Default(),
		Sink:     bag,
		Registry: NewRegistry(),
	})
	ctx.Report(diag.Finding{Rule: "demo", Span: source.Span{Start: 0, End: 1_000_000}})
	if bag.Len() != 1 {
		t.Errorf("finding without source must pass, got %d kept", bag.Len())
	}
	ctx.Report(diag.Finding{Rule: "demo", Span: source.Span{Start: 2, End: 1}})
	if ctx.Dropped() != 1 {
		t.Errorf("inverted span must be dropped, Dropped = %d", ctx.Dropped())
	}
}
