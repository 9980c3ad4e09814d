package token

import (
	"sgstyle/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFn && t.Kind <= KwFalse
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// LeadingNewlines returns the total number of newline characters in the
// token's leading trivia.
func (t Token) LeadingNewlines() int {
	n := 0
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			n += len(tr.Text)
		}
	}
	return n
}

// HasLeadingComment reports whether a comment appears in the leading trivia.
func (t Token) HasLeadingComment() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaLineComment || tr.Kind == TriviaBlockComment {
			return true
		}
	}
	return false
}
