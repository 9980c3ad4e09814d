package lexer

import (
	"unicode/utf8"

	"sgstyle/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase). Token.Text —
// ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(token.Invalid, start)
	}
	var startsIdent bool
	if r < utf8.RuneSelf {
		startsIdent = isIdentStartByte(byte(r))
	} else {
		startsIdent = isIdentStartRune(r)
	}
	if !startsIdent {
		// не начало идентификатора — пусть решает сканер операторов
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()

	for {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) { // ASCII fast-path
			lx.cursor.Bump()
			continue
		}
		if b < utf8.RuneSelf {
			break
		}
		r2, _ := lx.peekRune()
		if !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	text := string(lx.cursor.Slice(start))
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start), Text: text}
	}
	return token.Token{Kind: token.Ident, Span: lx.cursor.SpanFrom(start), Text: text}
}
