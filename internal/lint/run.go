package lint

import (
	"errors"
	"fmt"

	"sgstyle/internal/syntax"
)

// Run executes the rule pipeline: validates the tree, builds dispatch
// tables from the enabled rules, then walks the tree once pre+post.
// Findings flow through the context's sink; rule failures are isolated
// and recorded on the context. The returned error is non-nil only for
// precondition failures, which abort the pass before any rule runs.
func Run(ctx *Context) error {
	if ctx == nil || ctx.tree == nil {
		return errors.New("lint: nil context or tree")
	}
	if err := syntax.Validate(ctx.tree); err != nil {
		return err
	}

	eng := &engine{ctx: ctx}
	for _, rule := range ctx.registry.Rules() {
		m := rule.Meta()
		if !ctx.Enabled(m.Name) {
			continue
		}
		ex, hasExit := rule.(ExitRule)
		for _, k := range m.Kinds {
			eng.enter[k] = append(eng.enter[k], dispatch{name: m.Name, rule: rule})
			if hasExit {
				eng.exit[k] = append(eng.exit[k], dispatch{name: m.Name, exit: ex})
			}
		}
	}
	syntax.Walk(ctx.tree, eng)
	return nil
}

type dispatch struct {
	name string
	rule Rule
	exit ExitRule
}

// engine — Visitor одного прохода; таблицы индексированы видом узла,
// так что узел оплачивает только правила своего вида.
type engine struct {
	ctx   *Context
	enter [syntax.NumKinds][]dispatch
	exit  [syntax.NumKinds][]dispatch
}

func (e *engine) Enter(id syntax.NodeID) bool {
	for _, d := range e.enter[e.ctx.tree.Kind(id)] {
		e.invoke(d.name, id, func() error { return d.rule.Enter(e.ctx, id) })
	}
	return true
}

func (e *engine) Leave(id syntax.NodeID) {
	for _, d := range e.exit[e.ctx.tree.Kind(id)] {
		e.invoke(d.name, id, func() error { return d.exit.Exit(e.ctx, id) })
	}
}

// invoke изолирует отказ правила: и возвращённую ошибку, и панику.
func (e *engine) invoke(name string, id syntax.NodeID, call func() error) {
	defer func() {
		if p := recover(); p != nil {
			e.ctx.fail(name, e.ctx.tree.Span(id), fmt.Errorf("panic: %v", p))
		}
	}()
	if err := call(); err != nil {
		e.ctx.fail(name, e.ctx.tree.Span(id), err)
	}
}
