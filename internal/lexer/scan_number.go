package lexer

import (
	"sgstyle/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, 1.0e+10, .5.
// Суффиксов нет; разделители '_' допускаются между цифрами без строгой
// валидации. Неверные формы — репорт в opts.Reporter, токен Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// ведущая точка — формат ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			lx.report(lx.cursor.SpanFrom(start), "expected digit after '.'")
			return lx.emit(token.Invalid, start)
		}
		lx.eatDigits(isDec)
		return lx.scanExponent(token.FloatLit, start)
	}

	// ведущий 0 и база?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.eatDigits(isBin)
			return lx.emit(token.IntLit, start)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.eatDigits(isOctal)
			return lx.emit(token.IntLit, start)
		case 'x', 'X':
			lx.cursor.Bump()
			lx.eatDigits(isHex)
			return lx.emit(token.IntLit, start)
		}
		// просто "0", возможно с дробной частью дальше
	}

	kind := token.IntLit
	lx.eatDigits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.eatDigits(isDec)
	}
	return lx.scanExponent(kind, start)
}

// scanExponent завершает десятичный литерал: необязательный e/E со
// знаком и цифрами повышает его до FloatLit.
func (lx *Lexer) scanExponent(kind token.Kind, start Mark) token.Token {
	if b := lx.cursor.Peek(); b != 'e' && b != 'E' {
		return lx.emit(kind, start)
	}
	lx.cursor.Bump()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.report(lx.cursor.SpanFrom(start), "expected digit after exponent")
		return lx.emit(token.Invalid, start)
	}
	lx.eatDigits(isDec)
	return lx.emit(token.FloatLit, start)
}

// eatDigits съедает цифры класса pred вместе с разделителями '_'.
func (lx *Lexer) eatDigits(pred func(byte) bool) {
	lx.cursor.EatWhile(func(b byte) bool {
		return pred(b) || b == '_'
	})
}
