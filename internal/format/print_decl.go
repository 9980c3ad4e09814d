package format

import (
	"sgstyle/internal/pretty"
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

func (p *printer) importItem(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children
	docs := []*pretty.Doc{p.tok(n.FirstTok), pretty.Text(" "), p.expr(kids[0])}
	if len(kids) == 2 {
		alias := p.node(kids[1])
		// 'as' стоит прямо перед алиасом
		docs = append(docs, pretty.Text(" "), p.tok(alias.FirstTok-1), pretty.Text(" "), p.expr(kids[1]))
	}
	docs = append(docs, p.tokPre(n.LastTok-1))
	return pretty.Concat(docs...)
}

func (p *printer) fnItem(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children

	var docs []*pretty.Doc
	i := n.FirstTok
	if p.kindAt(i) == token.KwPub {
		docs = append(docs, p.tok(i), pretty.Text(" "))
		i++
	}
	docs = append(docs, p.tok(i), pretty.Text(" "), p.expr(kids[0]))
	docs = append(docs, p.paramList(kids[1]))

	rest := kids[2:]
	if len(rest) > 0 && p.tree.Kind(rest[0]) == syntax.KindTypeRef {
		ret := rest[0]
		arrow := p.node(ret).FirstTok - 1
		docs = append(docs, pretty.Text(" "), p.tok(arrow), pretty.Text(" "), p.typeRef(ret))
		rest = rest[1:]
	}
	docs = append(docs, pretty.Text(" "), p.block(rest[0]))
	return pretty.Concat(docs...)
}

func (p *printer) paramList(id syntax.NodeID) *pretty.Doc {
	return p.bracketed(id, p.param)
}

func (p *printer) param(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children
	colon := p.node(kids[0]).LastTok
	return pretty.Concat(p.expr(kids[0]), p.tokPre(colon), pretty.Text(" "), p.typeRef(kids[1]))
}

func (p *printer) letItem(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children

	var docs []*pretty.Doc
	i := n.FirstTok
	if p.kindAt(i) == token.KwPub {
		docs = append(docs, p.tok(i), pretty.Text(" "))
		i++
	}
	docs = append(docs, p.tok(i), pretty.Text(" "))
	if p.kindAt(i+1) == token.KwMut {
		docs = append(docs, p.tok(i+1), pretty.Text(" "))
	}

	name := kids[0]
	docs = append(docs, p.expr(name))

	rest := kids[1:]
	if len(rest) > 0 && p.tree.Kind(rest[0]) == syntax.KindTypeRef {
		colon := p.node(name).LastTok
		docs = append(docs, p.tokPre(colon), pretty.Text(" "), p.typeRef(rest[0]))
		rest = rest[1:]
	}
	if len(rest) > 0 {
		init := rest[0]
		assign := p.node(init).FirstTok - 1
		docs = append(docs, pretty.Text(" "), p.tok(assign), pretty.Indent(1, pretty.Space(), p.expr(init)))
	}
	docs = append(docs, p.tokPre(n.LastTok-1))
	return pretty.Group(docs...)
}

func (p *printer) typeItem(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	kids := n.Children

	var docs []*pretty.Doc
	i := n.FirstTok
	if p.kindAt(i) == token.KwPub {
		docs = append(docs, p.tok(i), pretty.Text(" "))
		i++
	}
	name := kids[0]
	assign := p.node(name).LastTok
	docs = append(docs,
		p.tok(i), pretty.Text(" "), p.expr(name),
		pretty.Text(" "), p.tok(assign),
		pretty.Indent(1, pretty.Space(), p.typeRef(kids[1])),
		p.tokPre(n.LastTok-1),
	)
	return pretty.Group(docs...)
}

// typeRef печатает непрозрачный тип: токены подряд без пробелов.
func (p *printer) typeRef(id syntax.NodeID) *pretty.Doc {
	n := p.node(id)
	docs := make([]*pretty.Doc, 0, n.LastTok-n.FirstTok)
	for i := n.FirstTok; i < n.LastTok; i++ {
		docs = append(docs, p.tok(i))
	}
	return pretty.Concat(docs...)
}

// bracketed печатает список в скобках: элементы через запятую, при
// переносе по одному на строку, закрывающая скобка на уровне вызова.
func (p *printer) bracketed(id syntax.NodeID, elem func(syntax.NodeID) *pretty.Doc) *pretty.Doc {
	n := p.node(id)
	open, close := n.FirstTok, n.LastTok-1
	kids := n.Children
	if len(kids) == 0 {
		return pretty.Concat(p.tok(open), p.tokPre(close))
	}

	inner := []*pretty.Doc{pretty.Soft()}
	for i, k := range kids {
		if i > 0 {
			comma := p.node(kids[i-1]).LastTok
			inner = append(inner, p.tokPre(comma), pretty.Space())
		}
		inner = append(inner, elem(k))
	}
	if tc := p.trailingComma(p.node(kids[len(kids)-1]).LastTok); tc != nil {
		inner = append(inner, tc)
	}
	return pretty.Group(
		p.tok(open),
		pretty.Indent(1, inner...),
		pretty.Soft(),
		p.tokPre(close),
	)
}

// trailingComma решает судьбу висячей запятой: в режиме пробелов она
// сохраняется, в каноническом отбрасывается. Запятая с комментарием
// сохраняется всегда, иначе комментарий потеряет место.
func (p *printer) trailingComma(i uint32) *pretty.Doc {
	if p.kindAt(i) != token.Comma {
		return nil
	}
	if p.mode == ModeWhitespaceOnly || p.tree.TokenAt(i).HasLeadingComment() {
		return p.tokPre(i)
	}
	p.took[i] = true
	return nil
}
