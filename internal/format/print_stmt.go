package format

import (
	"sgstyle/internal/pretty"
	"sgstyle/internal/syntax"
)

func (p *printer) stmt(id syntax.NodeID) *pretty.Doc {
	switch p.tree.Kind(id) {
	case syntax.KindBlock:
		return p.block(id)
	case syntax.KindLetDecl:
		return p.letItem(id)
	case syntax.KindIfStmt:
		return p.ifStmt(id)
	case syntax.KindWhileStmt:
		return p.whileStmt(id)
	case syntax.KindReturnStmt:
		return p.returnStmt(id)
	case syntax.KindBreakStmt, syntax.KindContinueStmt:
		return p.simpleStmt(id)
	case syntax.KindExprStmt:
		return p.exprStmt(id)
	default:
		return p.errorTokens(id)
	}
}

// block печатает операторы по одному на строку; пустой блок - "{}".
func (p *printer) block(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	open, close := n.FirstTok, n.LastTok-1
	kids := n.Children

	closeB := p.boundary(close, true, false)
	// финальный разделитель заменяется жёстким переносом на уровне блока
	innerTail := closeB[:len(closeB)-1]

	if len(kids) == 0 && len(innerTail) == 0 {
		return pretty.Concat(p.tok(open), p.tok(close))
	}

	var inner []*pretty.Doc
	for _, s := range kids {
		inner = append(inner, p.boundary(p.firstTokOf(s), true, false)...)
		inner = append(inner, p.stmt(s))
	}
	inner = append(inner, innerTail...)

	return pretty.Concat(
		p.tok(open),
		pretty.Indent(1, inner...),
		pretty.Hard(),
		p.tok(close),
	)
}

func (p *printer) ifStmt(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children
	docs := []*pretty.Doc{
		p.tok(n.FirstTok), pretty.Text(" "),
		p.expr(kids[0]), pretty.Text(" "),
		p.block(kids[1]),
	}
	if len(kids) == 3 {
		elseTok := p.node(kids[1]).LastTok
		docs = append(docs, pretty.Text(" "), p.tok(elseTok), pretty.Text(" "), p.stmt(kids[2]))
	}
	return pretty.Concat(docs...)
}

func (p *printer) whileStmt(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children
	return pretty.Concat(
		p.tok(n.FirstTok), pretty.Text(" "),
		p.expr(kids[0]), pretty.Text(" "),
		p.block(kids[1]),
	)
}

func (p *printer) returnStmt(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	docs := []*pretty.Doc{p.tok(n.FirstTok)}
	if len(n.Children) == 1 {
		docs = append(docs, pretty.Text(" "), p.expr(n.Children[0]))
	}
	docs = append(docs, p.tokPre(n.LastTok-1))
	return pretty.Concat(docs...)
}

func (p *printer) simpleStmt(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	return pretty.Concat(p.tok(n.FirstTok), p.tokPre(n.LastTok-1))
}

func (p *printer) exprStmt(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	return pretty.Concat(p.expr(n.Children[0]), p.tokPre(n.LastTok-1))
}

// errorTokens не встречается после валидации; печатает диапазон токенов
// через пробел, чтобы функция оставалась тотальной.
func (p *printer) errorTokens(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	var docs []*pretty.Doc
	for i := n.FirstTok; i < n.LastTok; i++ {
		if i > n.FirstTok {
			docs = append(docs, pretty.Text(" "))
		}
		docs = append(docs, p.tok(i))
	}
	return pretty.Concat(docs...)
}
