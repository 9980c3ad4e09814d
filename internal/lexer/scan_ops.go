package lexer

import (
	"sgstyle/internal/token"
)

// Жадность: сначала 2-символьные, затем 1-символьные.
// Набор из token.Kind (::, ->, &&, ||, ==, !=, <=, >=, <<, >>, +=, ...).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try2(':', ':'):
		return lx.emit(token.ColonColon, start)
	case lx.try2('-', '>'):
		return lx.emit(token.Arrow, start)
	case lx.try2('&', '&'):
		return lx.emit(token.AndAnd, start)
	case lx.try2('|', '|'):
		return lx.emit(token.OrOr, start)
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start)
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start)
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start)
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start)
	case lx.try2('<', '<'):
		return lx.emit(token.Shl, start)
	case lx.try2('>', '>'):
		return lx.emit(token.Shr, start)
	case lx.try2('+', '='):
		return lx.emit(token.PlusAssign, start)
	case lx.try2('-', '='):
		return lx.emit(token.MinusAssign, start)
	case lx.try2('*', '='):
		return lx.emit(token.StarAssign, start)
	case lx.try2('/', '='):
		return lx.emit(token.SlashAssign, start)
	case lx.try2('%', '='):
		return lx.emit(token.PercentAssign, start)
	}

	// односимвольные
	if k, ok := punctKind(lx.cursor.Bump()); ok {
		return lx.emit(k, start)
	}

	// неизвестный символ
	lx.report(lx.cursor.SpanFrom(start), "unknown character")
	return lx.emit(token.Invalid, start)
}

func punctKind(ch byte) (token.Kind, bool) {
	switch ch {
	case '+':
		return token.Plus, true
	case '-':
		return token.Minus, true
	case '*':
		return token.Star, true
	case '/':
		return token.Slash, true
	case '%':
		return token.Percent, true
	case '=':
		return token.Assign, true
	case '!':
		return token.Bang, true
	case '<':
		return token.Lt, true
	case '>':
		return token.Gt, true
	case '&':
		return token.Amp, true
	case '|':
		return token.Pipe, true
	case '^':
		return token.Caret, true
	case ':':
		return token.Colon, true
	case ';':
		return token.Semicolon, true
	case ',':
		return token.Comma, true
	case '.':
		return token.Dot, true
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	default:
		return token.Invalid, false
	}
}
