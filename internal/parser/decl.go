package parser

import (
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

// parseImport: "import" path ("as" name)? ";"
func (p *Parser) parseImport() (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // import

	path, ok := p.parsePath()
	if !ok {
		return syntax.NoNode, false
	}
	children := []syntax.NodeID{path}

	if p.eat(token.KwAs) {
		alias, ok := p.parseName()
		if !ok {
			return syntax.NoNode, false
		}
		children = append(children, alias)
	}

	if !p.expect(token.Semicolon, "expected ';' after import") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindImport, start, p.pos, children...), true
}

// parseDecl: "pub"? (fn | let | type)
func (p *Parser) parseDecl() (syntax.NodeID, bool) {
	start := p.pos
	p.eat(token.KwPub)

	switch p.peek().Kind {
	case token.KwFn:
		return p.parseFn(start)
	case token.KwLet:
		return p.parseLet(start)
	case token.KwType:
		return p.parseTypeDecl(start)
	default:
		p.errHere("expected declaration")
		return syntax.NoNode, false
	}
}

// parseFn: "fn" name "(" params? ")" ("->" typeRef)? block
func (p *Parser) parseFn(start uint32) (syntax.NodeID, bool) {
	p.advance() // fn

	name, ok := p.parseName()
	if !ok {
		return syntax.NoNode, false
	}

	params, ok := p.parseParamList()
	if !ok {
		return syntax.NoNode, false
	}
	children := []syntax.NodeID{name, params}

	if p.eat(token.Arrow) {
		ret, ok := p.parseTypeRef()
		if !ok {
			return syntax.NoNode, false
		}
		children = append(children, ret)
	}

	body, ok := p.parseBlock()
	if !ok {
		return syntax.NoNode, false
	}
	children = append(children, body)

	return p.b.Node(syntax.KindFnDecl, start, p.pos, children...), true
}

// parseParamList: "(" (param ("," param)* ","?)? ")"
func (p *Parser) parseParamList() (syntax.NodeID, bool) {
	start := p.pos
	if !p.expect(token.LParen, "expected '(' after function name") {
		return syntax.NoNode, false
	}

	var params []syntax.NodeID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param, ok := p.parseParam()
		if !ok {
			return syntax.NoNode, false
		}
		params = append(params, param)
		if !p.eat(token.Comma) {
			break
		}
		// висячая запятая перед ')'
	}

	if !p.expect(token.RParen, "expected ')' after parameters") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindParamList, start, p.pos, params...), true
}

// parseParam: name ":" typeRef
func (p *Parser) parseParam() (syntax.NodeID, bool) {
	start := p.pos
	name, ok := p.parseName()
	if !ok {
		return syntax.NoNode, false
	}
	if !p.expect(token.Colon, "expected ':' after parameter name") {
		return syntax.NoNode, false
	}
	typ, ok := p.parseTypeRef()
	if !ok {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindParam, start, p.pos, name, typ), true
}

// parseLet: "let" "mut"? name (":" typeRef)? ("=" expr)? ";"
// Вызывается и на верхнем уровне, и внутри блоков.
func (p *Parser) parseLet(start uint32) (syntax.NodeID, bool) {
	p.advance() // let
	p.eat(token.KwMut)

	name, ok := p.parseName()
	if !ok {
		return syntax.NoNode, false
	}
	children := []syntax.NodeID{name}

	if p.eat(token.Colon) {
		typ, ok := p.parseTypeRef()
		if !ok {
			return syntax.NoNode, false
		}
		children = append(children, typ)
	}

	if p.eat(token.Assign) {
		init, ok := p.parseExpr()
		if !ok {
			return syntax.NoNode, false
		}
		children = append(children, init)
	}

	if !p.expect(token.Semicolon, "expected ';' after let declaration") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindLetDecl, start, p.pos, children...), true
}

// parseTypeDecl: "type" name "=" typeRef ";"
func (p *Parser) parseTypeDecl(start uint32) (syntax.NodeID, bool) {
	p.advance() // type

	name, ok := p.parseName()
	if !ok {
		return syntax.NoNode, false
	}
	if !p.expect(token.Assign, "expected '=' in type declaration") {
		return syntax.NoNode, false
	}
	target, ok := p.parseTypeRef()
	if !ok {
		return syntax.NoNode, false
	}
	if !p.expect(token.Semicolon, "expected ';' after type declaration") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindTypeDecl, start, p.pos, name, target), true
}

// parseTypeRef: "[" typeRef "]" | name ("::" name)*
// Тип — непрозрачный узел: потребители работают с его токенами.
func (p *Parser) parseTypeRef() (syntax.NodeID, bool) {
	start := p.pos

	if p.eat(token.LBracket) {
		if _, ok := p.parseTypeRef(); !ok {
			return syntax.NoNode, false
		}
		if !p.expect(token.RBracket, "expected ']' in array type") {
			return syntax.NoNode, false
		}
		return p.b.Node(syntax.KindTypeRef, start, p.pos), true
	}

	if !p.at(token.Ident) {
		p.errHere("expected type")
		return syntax.NoNode, false
	}
	p.advance()
	for p.at(token.ColonColon) {
		p.advance()
		if !p.expect(token.Ident, "expected identifier after '::'") {
			return syntax.NoNode, false
		}
	}
	return p.b.Node(syntax.KindTypeRef, start, p.pos), true
}

// parseName: один Ident как лист
func (p *Parser) parseName() (syntax.NodeID, bool) {
	if !p.at(token.Ident) {
		p.errHere("expected identifier, got \"" + p.peek().Text + "\"")
		return syntax.NoNode, false
	}
	idx := p.pos
	p.advance()
	return p.b.Leaf(syntax.KindName, idx), true
}

// parsePath: name ("::" name)*; всегда строит узел пути.
func (p *Parser) parsePath() (syntax.NodeID, bool) {
	start := p.pos
	first, ok := p.parseName()
	if !ok {
		return syntax.NoNode, false
	}
	segs := []syntax.NodeID{first}
	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.parseName()
		if !ok {
			return syntax.NoNode, false
		}
		segs = append(segs, seg)
	}
	return p.b.Node(syntax.KindPath, start, p.pos, segs...), true
}
