package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type docKind uint8

const (
	docText docKind = iota
	docRaw
	docBreak
	docGroup
	docIndent
	docConcat
)

// BreakKind selects how a break renders in flat and in broken mode.
type BreakKind uint8

const (
	// BreakSpace renders as one space when flat.
	BreakSpace BreakKind = iota
	// BreakNothing renders as nothing when flat.
	BreakNothing
	// BreakHard always renders as a newline and forces every enclosing
	// group broken.
	BreakHard
	// BreakBlank renders as a newline plus one empty line; hard.
	BreakBlank
)

// Doc is one node of a layout document. Docs are immutable once built;
// flat width and hard-break presence are accumulated bottom-up by the
// constructors, so rendering needs no second measuring pass. An
// unterminated group is unrepresentable: a group exists only as a
// constructed node together with its children.
type Doc struct {
	kind     docKind
	text     string
	brk      BreakKind
	delta    int
	forced   bool
	children []*Doc

	flatWidth int
	hard      bool
}

// Text emits s verbatim. s must not contain newlines; line structure is
// expressed with breaks.
func Text(s string) *Doc {
	return &Doc{kind: docText, text: s, flatWidth: runewidth.StringWidth(s)}
}

// Raw emits s verbatim, newlines included; used for multi-line token
// text such as block comments. A Raw containing a newline behaves like
// an unconditional break for enclosing fit decisions. s must not end
// with a newline.
func Raw(s string) *Doc {
	d := &Doc{kind: docRaw, text: s}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		d.hard = true
		d.flatWidth = runewidth.StringWidth(s[i+1:])
	} else {
		d.flatWidth = runewidth.StringWidth(s)
	}
	return d
}

// Break emits a layout break of the given kind.
func Break(k BreakKind) *Doc {
	d := &Doc{kind: docBreak, brk: k}
	switch k {
	case BreakSpace:
		d.flatWidth = 1
	case BreakNothing:
		// ничего в плоском виде
	case BreakHard, BreakBlank:
		d.hard = true
	}
	return d
}

// Space is a break rendering as one space when flat.
func Space() *Doc { return Break(BreakSpace) }

// Soft is a break rendering as nothing when flat.
func Soft() *Doc { return Break(BreakNothing) }

// Hard is an unconditional newline.
func Hard() *Doc { return Break(BreakHard) }

// Blank is an unconditional newline plus one empty line.
func Blank() *Doc { return Break(BreakBlank) }

// Group wraps children into one atomic fit decision: either every break
// inside renders flat, or every break renders as a newline. Nil
// children are skipped.
func Group(children ...*Doc) *Doc {
	return newGroup(false, children)
}

// ForcedGroup is a group that always renders broken, regardless of
// width.
func ForcedGroup(children ...*Doc) *Doc {
	return newGroup(true, children)
}

func newGroup(forced bool, children []*Doc) *Doc {
	d := &Doc{kind: docGroup, forced: forced}
	d.adopt(children)
	if forced {
		d.hard = true
	}
	return d
}

// Indent shifts the prevailing indentation inside by delta levels. The
// shift applies to breaks rendered as newlines; flat rendering is
// unaffected.
func Indent(delta int, children ...*Doc) *Doc {
	d := &Doc{kind: docIndent, delta: delta}
	d.adopt(children)
	return d
}

// Concat sequences children without grouping them. Nil children are
// skipped.
func Concat(children ...*Doc) *Doc {
	d := &Doc{kind: docConcat}
	d.adopt(children)
	return d
}

// adopt фильтрует nil-детей и набирает плоскую ширину снизу вверх.
func (d *Doc) adopt(children []*Doc) {
	kept := make([]*Doc, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		kept = append(kept, c)
		d.flatWidth += c.flatWidth
		d.hard = d.hard || c.hard
	}
	d.children = kept
}

// FlatWidth reports the display columns the doc occupies when fully
// flattened, or -1 when it always breaks.
func (d *Doc) FlatWidth() int {
	if d.hard {
		return -1
	}
	return d.flatWidth
}

// HasHardBreak reports whether the doc always renders a newline.
func (d *Doc) HasHardBreak() bool { return d.hard }
