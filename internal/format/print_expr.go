package format

import (
	"sgstyle/internal/pretty"
	"sgstyle/internal/syntax"
)

func (p *printer) expr(id syntax.NodeID) *pretty.Doc {
	switch p.tree.Kind(id) {
	case syntax.KindName, syntax.KindLiteral:
		return p.tok(p.node(id).FirstTok)
	case syntax.KindPath:
		return p.path(id)
	case syntax.KindBinaryExpr:
		return p.binaryExpr(id)
	case syntax.KindUnaryExpr:
		return p.unaryExpr(id)
	case syntax.KindCallExpr:
		return p.callExpr(id)
	case syntax.KindArgList:
		return p.bracketed(id, p.expr)
	case syntax.KindIndexExpr:
		return p.indexExpr(id)
	case syntax.KindFieldExpr:
		return p.fieldExpr(id)
	case syntax.KindArrayExpr:
		return p.bracketed(id, p.expr)
	case syntax.KindGroupExpr:
		return p.groupExpr(id)
	case syntax.KindTypeRef:
		return p.typeRef(id)
	default:
		return p.errorTokens(id)
	}
}

func (p *printer) path(id syntax.NodeID) *pretty.Doc {
	kids := p.node(id).Children
	var docs []*pretty.Doc
	for i, k := range kids {
		if i > 0 {
			sep := p.node(kids[i-1]).LastTok
			docs = append(docs, p.tokPre(sep))
		}
		docs = append(docs, p.expr(k))
	}
	return pretty.Concat(docs...)
}

// binaryExpr: оператор остаётся на строке левого операнда, перенос
// уводит правый операнд на уровень глубже.
func (p *printer) binaryExpr(id syntax.NodeID) *pretty.Doc {
	kids := p.node(id).Children
	op := p.node(kids[0]).LastTok
	return pretty.Group(
		p.expr(kids[0]),
		pretty.Text(" "),
		p.tok(op),
		pretty.Indent(1, pretty.Space(), p.expr(kids[1])),
	)
}

func (p *printer) unaryExpr(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	return pretty.Concat(p.tok(n.FirstTok), p.expr(n.Children[0]))
}

func (p *printer) callExpr(id syntax.NodeID) *pretty.Doc {
	kids := p.node(id).Children
	return pretty.Concat(p.expr(kids[0]), p.bracketed(kids[1], p.expr))
}

func (p *printer) indexExpr(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children
	open := p.node(kids[0]).LastTok
	return pretty.Concat(
		p.expr(kids[0]),
		p.tokPre(open),
		p.expr(kids[1]),
		p.tokPre(n.LastTok-1),
	)
}

func (p *printer) fieldExpr(id syntax.NodeID) *pretty.Doc {
	kids := p.node(id).Children
	dot := p.node(kids[0]).LastTok
	return pretty.Concat(p.expr(kids[0]), p.tokPre(dot), p.expr(kids[1]))
}

func (p *printer) groupExpr(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	return pretty.Group(
		p.tok(n.FirstTok),
		pretty.Indent(1, pretty.Soft(), p.expr(n.Children[0])),
		pretty.Soft(),
		p.tokPre(n.LastTok-1),
	)
}
