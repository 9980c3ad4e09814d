// Package token defines lexical token kinds and trivia for Surge-subset sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Whitespace and comments never appear in the main token stream; they are
//     attached to the following token as leading Trivia (EOF carries the tail).
//   - Runs of spaces/tabs coalesce into one TriviaSpace; runs of newlines
//     coalesce into one TriviaNewline. Blank-line counting is therefore a
//     length check on a single trivia, not a rescan.
//   - Built-in type names (int, uint32, float64, ...) are identifiers.
//     They are recognized downstream, not by the lexer.
package token
