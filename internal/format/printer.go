package format

import (
	"errors"

	"sgstyle/internal/pretty"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
)

// Mode selects what Text items carry.
type Mode uint8

const (
	// ModeCanonical prints the canonical form of every construct.
	ModeCanonical Mode = iota
	// ModeWhitespaceOnly keeps every source token verbatim and in order,
	// recomputing only the whitespace between them.
	ModeWhitespaceOnly
)

// printer обходит дерево и строит документ раскладки. Каждый токен
// печатается ровно один раз; took отмечает токены, чья ведущая trivia
// уже обработана границей последовательности.
type printer struct {
	tree *syntax.Tree
	mode Mode
	took []bool
}

// File renders the canonical formatting of the tree.
func File(tree *syntax.Tree, cfg style.Config) (string, error) {
	text, _, err := FileWithReport(tree, cfg)
	return text, err
}

// FileWithReport additionally returns the layout decision trace.
func FileWithReport(tree *syntax.Tree, cfg style.Config) (string, *pretty.Report, error) {
	doc, err := BuildDoc(tree, ModeCanonical)
	if err != nil {
		return "", nil, err
	}
	text, report := pretty.RenderWithReport(doc, renderOpts(cfg))
	return text, report, nil
}

// WhitespaceOnly renders the tree with original token text and
// canonical whitespace. The result drives the whitespace linter.
func WhitespaceOnly(tree *syntax.Tree, cfg style.Config) (string, error) {
	doc, err := BuildDoc(tree, ModeWhitespaceOnly)
	if err != nil {
		return "", err
	}
	return pretty.Render(doc, renderOpts(cfg)), nil
}

// BuildDoc validates the tree and builds its layout document. A tree
// containing error nodes is rejected before any walking starts.
func BuildDoc(tree *syntax.Tree, mode Mode) (*pretty.Doc, error) {
	if tree == nil {
		return nil, errors.New("format: nil tree")
	}
	if err := syntax.Validate(tree); err != nil {
		return nil, err
	}
	p := &printer{
		tree: tree,
		mode: mode,
		took: make([]bool, len(tree.Tokens)),
	}
	return p.fileDoc(), nil
}

func renderOpts(cfg style.Config) pretty.Options {
	return pretty.Options{MaxWidth: cfg.MaxWidth, Indent: cfg.Indent}
}

// fileDoc печатает элементы файла с разделителями-границами и хвостовой
// trivia перед EOF.
func (p *printer) fileDoc() *pretty.Doc {
	items := p.tree.Children(p.tree.Root)
	var docs []*pretty.Doc
	for idx, id := range items {
		docs = append(docs, p.boundary(p.firstTokOf(id), idx > 0, false)...)
		docs = append(docs, p.item(id))
	}
	if n := len(p.tree.Tokens); n > 0 {
		eof := uint32(n - 1)
		docs = append(docs, p.boundary(eof, len(items) > 0, true)...)
	}
	return pretty.Concat(docs...)
}

func (p *printer) item(id syntax.NodeID) *pretty.Doc {
	switch p.tree.Kind(id) {
	case syntax.KindImport:
		return p.importItem(id)
	case syntax.KindFnDecl:
		return p.fnItem(id)
	case syntax.KindLetDecl:
		return p.letItem(id)
	case syntax.KindTypeDecl:
		return p.typeItem(id)
	default:
		return p.stmt(id)
	}
}

func (p *printer) node(id syntax.NodeID) *syntax.Node {
	return p.tree.Node(id)
}

func (p *printer) firstTokOf(id syntax.NodeID) uint32 {
	return p.tree.Node(id).FirstTok
}
