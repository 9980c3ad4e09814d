package lexer

import (
	"sgstyle/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ' и '\t' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (поддерживает вложенность; если не закрыта — репорт и обрезаем на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t':
			lx.cursor.EatWhile(func(c byte) bool { return c == ' ' || c == '\t' })
			lx.pushTrivia(token.TriviaSpace, start)
		case b == '\n':
			lx.cursor.EatWhile(func(c byte) bool { return c == '\n' })
			lx.pushTrivia(token.TriviaNewline, start)
		case b == '/':
			if !lx.scanCommentIntoHold() {
				return
			}
		default:
			// нет больше trivia
			return
		}
	}
}

// scanCommentIntoHold лексит // и /* */ в hold. Вызывается только когда
// текущий байт '/'; если это не начало комментария, курсор откатывается
// и '/' достаётся сканеру операторов.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	switch lx.cursor.Peek() {
	case '/': // "//..."
		lx.cursor.EatWhile(func(b byte) bool { return b != '\n' })
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*': // "/* ... */" (with nesting)
		lx.cursor.Bump()
		depth := 1
		for depth > 0 && !lx.cursor.EOF() {
			switch {
			case lx.try2('/', '*'):
				depth++
			case lx.try2('*', '/'):
				depth--
			default:
				lx.cursor.Bump()
			}
		}
		if depth > 0 {
			lx.report(lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.pushTrivia(token.TriviaBlockComment, start)
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}

// pushTrivia дописывает кусок trivia со спаном start..текущая позиция.
func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: string(lx.cursor.Slice(start)),
	})
}
