package parser

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekAt смотрит на n токенов вперёд, не выходя за EOF.
func (p *Parser) peekAt(n uint32) token.Token {
	i := p.pos + n
	if int(i) >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance — съедает текущий токен; на EOF остаётся на месте.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// eat съедает токен вида k, если он текущий.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect — ожидаем конкретный токен. Если нет — репортим и false.
func (p *Parser) expect(k token.Kind, msg string) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.errHere(msg)
	return false
}

func (p *Parser) errHere(msg string) {
	p.report(p.peek().Span, msg)
}

func (p *Parser) report(sp source.Span, msg string) {
	p.errs++
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.MaxErrors != 0 && p.errs > p.opts.MaxErrors {
		return
	}
	p.opts.Reporter.Report(diag.Finding{
		Rule:     diag.RuleSyntax,
		Severity: diag.SevError,
		Message:  msg,
		Span:     sp,
	})
}
