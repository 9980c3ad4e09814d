// Package parser builds syntax trees for the Surge subset this tool
// formats. It is a compact recursive-descent parser over the full
// token slice of a file; unparsable regions become error nodes, so
// parsing always yields a tree and never an error value.
package parser

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/lexer"
	"sgstyle/internal/source"
	"sgstyle/internal/syntax"
	"sgstyle/internal/token"
)

type Options struct {
	// MaxErrors caps reported diagnostics; 0 means no cap. Parsing
	// continues past the cap, only reporting stops.
	MaxErrors uint
	Reporter  diag.Reporter
}

// Parser — состояние парсера на один файл
type Parser struct {
	file *source.File
	toks []token.Token
	pos  uint32
	b    *syntax.Builder
	opts Options
	errs uint
}

// Parse scans and parses one file. Lexical errors are forwarded to the
// reporter under the syntax rule name.
func Parse(file *source.File, opts Options) *syntax.Tree {
	lexOpts := lexer.Options{}
	if opts.Reporter != nil {
		lexOpts.Reporter = lexer.DiagReporter{Next: opts.Reporter}
	}
	return ParseTokens(file, lexer.ScanAll(file, lexOpts), opts)
}

// ParseTokens parses an already-scanned token stream. toks must be the
// complete lexer output for file, EOF last.
func ParseTokens(file *source.File, toks []token.Token, opts Options) *syntax.Tree {
	p := Parser{
		file: file,
		toks: toks,
		b:    syntax.NewBuilder(file, toks),
		opts: opts,
	}
	root := p.parseFile()
	return p.b.Finish(root)
}

// parseFile — основной цикл верхнего уровня: пока не EOF — parseItem.
func (p *Parser) parseFile() syntax.NodeID {
	var items []syntax.NodeID
	for !p.at(token.EOF) {
		start := p.pos
		item, ok := p.parseItem()
		if ok {
			items = append(items, item)
			continue
		}
		p.resyncTop()
		if p.pos == start {
			p.advance() // гарантия прогресса
		}
		items = append(items, p.b.Node(syntax.KindError, start, p.pos))
	}
	return p.b.Node(syntax.KindFile, 0, uint32(len(p.toks)), items...)
}

// parseItem выбирает по первому токену нужный распознаватель
// top-level конструкции.
func (p *Parser) parseItem() (syntax.NodeID, bool) {
	switch p.peek().Kind {
	case token.KwImport:
		return p.parseImport()
	case token.KwFn, token.KwLet, token.KwType:
		return p.parseDecl()
	case token.KwPub:
		// pub предваряет fn/let/type; сам по себе — ошибка
		switch p.peekAt(1).Kind {
		case token.KwFn, token.KwLet, token.KwType:
			return p.parseDecl()
		}
		p.errHere("expected declaration after 'pub'")
		return syntax.NoNode, false
	default:
		p.errHere("unexpected top-level construct")
		return syntax.NoNode, false
	}
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' ИЛИ до стартового токена следующего item ИЛИ EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if isTopStarter(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func isTopStarter(k token.Kind) bool {
	switch k {
	case token.KwImport, token.KwFn, token.KwLet, token.KwType, token.KwPub:
		return true
	default:
		return false
	}
}
