package parser

import (
	"sgstyle/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет.
const (
	precAssignment     = 1  // = += -= *= /= %=
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precEquality       = 4  // == !=
	precComparison     = 5  // < <= > >=
	precBitwiseOr      = 6  // |
	precBitwiseXor     = 7  // ^
	precBitwiseAnd     = 8  // &
	precShift          = 9  // << >>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
)

// binaryPrec возвращает (приоритет, правоассоциативный).
// Для не-операторов приоритет -1.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	// Присваивание (правоассоциативно)
	case token.Assign, token.PlusAssign, token.MinusAssign,
		token.StarAssign, token.SlashAssign, token.PercentAssign:
		return precAssignment, true

	// Логические операторы
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false

	// Операторы равенства
	case token.EqEq, token.BangEq:
		return precEquality, false

	// Операторы сравнения
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false

	// Битовые операторы
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false

	// Сдвиги
	case token.Shl, token.Shr:
		return precShift, false

	// Арифметические операторы
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false

	default:
		return -1, false // не бинарный оператор
	}
}

// isUnaryOp: префиксные операторы подмножества
func isUnaryOp(kind token.Kind) bool {
	switch kind {
	case token.Plus, token.Minus, token.Bang:
		return true
	default:
		return false
	}
}
