package parser

import (
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

// parseExpr — главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (syntax.NodeID, bool) {
	return p.parseBinaryExpr(0) // минимальный приоритет = 0
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов.
// minPrec — минимальный приоритет для текущего уровня.
func (p *Parser) parseBinaryExpr(minPrec int) (syntax.NodeID, bool) {
	start := p.pos
	left, ok := p.parseUnaryExpr()
	if !ok {
		return syntax.NoNode, false
	}

	for {
		prec, rightAssoc := binaryPrec(p.peek().Kind)
		if prec < minPrec || prec < 0 {
			break
		}

		p.advance() // оператор

		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}

		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			p.errHere("expected expression after binary operator")
			return syntax.NoNode, false
		}

		// Диапазон токенов оператора восстанавливается из детей:
		// op = Tokens[left.LastTok].
		left = p.b.Node(syntax.KindBinaryExpr, start, p.pos, left, right)
	}

	return left, true
}

// parseUnaryExpr обрабатывает префиксные операторы
func (p *Parser) parseUnaryExpr() (syntax.NodeID, bool) {
	var prefixes []uint32

	for {
		if isUnaryOp(p.peek().Kind) {
			prefixes = append(prefixes, p.pos)
			p.advance()
		} else {
			break
		}
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return syntax.NoNode, false
	}

	// применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		expr = p.b.Node(syntax.KindUnaryExpr, prefixes[i], p.pos, expr)
	}

	return expr, true
}

// parsePostfixExpr обрабатывает постфиксы: вызов, индекс, поле
func (p *Parser) parsePostfixExpr() (syntax.NodeID, bool) {
	start := p.pos
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return syntax.NoNode, false
	}

	for {
		switch p.peek().Kind {
		case token.LParen:
			args, ok := p.parseArgList()
			if !ok {
				return syntax.NoNode, false
			}
			expr = p.b.Node(syntax.KindCallExpr, start, p.pos, expr, args)

		case token.LBracket:
			p.advance() // [
			idx, ok := p.parseExpr()
			if !ok {
				return syntax.NoNode, false
			}
			if !p.expect(token.RBracket, "expected ']' after index") {
				return syntax.NoNode, false
			}
			expr = p.b.Node(syntax.KindIndexExpr, start, p.pos, expr, idx)

		case token.Dot:
			p.advance() // .
			field, ok := p.parseName()
			if !ok {
				return syntax.NoNode, false
			}
			expr = p.b.Node(syntax.KindFieldExpr, start, p.pos, expr, field)

		default:
			return expr, true
		}
	}
}

// parseArgList: "(" (expr ("," expr)* ","?)? ")"
func (p *Parser) parseArgList() (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // (

	var args []syntax.NodeID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseExpr()
		if !ok {
			return syntax.NoNode, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}

	if !p.expect(token.RParen, "expected ')' after arguments") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindArgList, start, p.pos, args...), true
}

// parsePrimaryExpr: литерал, имя/путь, группа, массив
func (p *Parser) parsePrimaryExpr() (syntax.NodeID, bool) {
	start := p.pos
	tok := p.peek()

	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse:
		p.advance()
		return p.b.Leaf(syntax.KindLiteral, start), true

	case token.Ident:
		if p.peekAt(1).Kind == token.ColonColon {
			return p.parsePath()
		}
		return p.parseName()

	case token.LParen:
		p.advance() // (
		inner, ok := p.parseExpr()
		if !ok {
			return syntax.NoNode, false
		}
		if !p.expect(token.RParen, "expected ')'") {
			return syntax.NoNode, false
		}
		return p.b.Node(syntax.KindGroupExpr, start, p.pos, inner), true

	case token.LBracket:
		return p.parseArrayLit()

	default:
		p.errHere("expected expression, got \"" + tok.Text + "\"")
		return syntax.NoNode, false
	}
}

// parseArrayLit: "[" (expr ("," expr)* ","?)? "]"
func (p *Parser) parseArrayLit() (syntax.NodeID, bool) {
	start := p.pos
	p.advance() // [

	var elems []syntax.NodeID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elem, ok := p.parseExpr()
		if !ok {
			return syntax.NoNode, false
		}
		elems = append(elems, elem)
		if !p.eat(token.Comma) {
			break
		}
	}

	if !p.expect(token.RBracket, "expected ']' after array elements") {
		return syntax.NoNode, false
	}
	return p.b.Node(syntax.KindArrayExpr, start, p.pos, elems...), true
}
