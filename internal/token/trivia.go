package token

import "sgstyle/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a run of non-token source text attached to the following token.
// For TriviaSpace and TriviaNewline, Text holds the whole coalesced run.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsWhitespace reports whether the trivia is a space or newline run.
func (tr Trivia) IsWhitespace() bool {
	return tr.Kind == TriviaSpace || tr.Kind == TriviaNewline
}

// IsComment reports whether the trivia is a line or block comment.
func (tr Trivia) IsComment() bool {
	return tr.Kind == TriviaLineComment || tr.Kind == TriviaBlockComment
}
