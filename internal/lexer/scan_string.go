package lexer

import (
	"sgstyle/internal/token"
)

// Минимум: "..." (escape-последовательности не валидируются глубоко,
// '\' съедает следующий байт; ошибки → Reporter).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump() // '\' съедает следующий байт; на EOF Bump — no-op
		case '\n':
			// перевод строки в строковом литерале — ошибка
			lx.report(lx.cursor.SpanFrom(start), "newline in string literal")
			return lx.emit(token.Invalid, start)
		default:
			lx.cursor.Bump()
		}
	}
	// EOF без закрывающей кавычки
	lx.report(lx.cursor.SpanFrom(start), "unterminated string literal")
	return lx.emit(token.Invalid, start)
}
