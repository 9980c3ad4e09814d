package parser

import (
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

// parseBlock: "{" stmt* "}"
func (p *Parser) parseBlock() (syntax.NodeID, bool) {
	start := p.pos
	if !p.expect(token.LBrace, "expected '{'") {
		return syntax.NoNode, false
	}

	var stmts []syntax.NodeID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmtStart := p.pos
		stmt, ok := p.parseStmt()
		if ok {
			stmts = append(stmts, stmt)
			continue
		}
		p.resyncStmt()
		if p.pos == stmtStart {
			p.advance() // гарантия прогресса
		}
		stmts = append(stmts, p.b.Node(syntax.KindError, stmtStart, p.pos))
	}

	if !p.expect(token.RBrace, "expected '}' to close block") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindBlock, start, p.pos, stmts...), true
}

func (p *Parser) parseStmt() (syntax.NodeID, bool) {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLet(p.pos)
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak:
		return p.parseSimpleStmt(syntax.KindBreakStmt, "expected ';' after break")
	case token.KwContinue:
		return p.parseSimpleStmt(syntax.KindContinueStmt, "expected ';' after continue")
	case token.LBrace:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// resyncStmt — прокрутка до границы оператора внутри блока.
func (p *Parser) resyncStmt() {
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if isStmtStarter(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func isStmtStarter(k token.Kind) bool {
	switch k {
	case token.KwLet, token.KwIf, token.KwWhile, token.KwReturn,
		token.KwBreak, token.KwContinue, token.LBrace:
		return true
	default:
		return false
	}
}

// parseIf: "if" expr block ("else" (if | block))?
func (p *Parser) parseIf() (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // if

	cond, ok := p.parseExpr()
	if !ok {
		return syntax.NoNode, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return syntax.NoNode, false
	}
	children := []syntax.NodeID{cond, then}

	if p.eat(token.KwElse) {
		var alt syntax.NodeID
		if p.at(token.KwIf) {
			alt, ok = p.parseIf()
		} else {
			alt, ok = p.parseBlock()
		}
		if !ok {
			return syntax.NoNode, false
		}
		children = append(children, alt)
	}

	return p.b.Node(syntax.KindIfStmt, start, p.pos, children...), true
}

// parseWhile: "while" expr block
func (p *Parser) parseWhile() (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // while

	cond, ok := p.parseExpr()
	if !ok {
		return syntax.NoNode, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindWhileStmt, start, p.pos, cond, body), true
}

// parseReturn: "return" expr? ";"
func (p *Parser) parseReturn() (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // return

	var children []syntax.NodeID
	if !p.at(token.Semicolon) {
		val, ok := p.parseExpr()
		if !ok {
			return syntax.NoNode, false
		}
		children = append(children, val)
	}

	if !p.expect(token.Semicolon, "expected ';' after return") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindReturnStmt, start, p.pos, children...), true
}

// parseSimpleStmt: break/continue с обязательной ';'
func (p *Parser) parseSimpleStmt(kind syntax.NodeKind, semiMsg string) (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // break | continue
	if !p.expect(token.Semicolon, semiMsg) {
		return syntax.NoNode, false
	}
	return p.b.Node(kind, start, p.pos), true
}

// parseExprStmt: expr ";"
func (p *Parser) parseExprStmt() (syntax.NodeID, bool) {
	start := p.pos
	expr, ok := p.parseExpr()
	if !ok {
		return syntax.NoNode, false
	}
	if !p.expect(token.Semicolon, "expected ';' after expression") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindExprStmt, start, p.pos, expr), true
}
