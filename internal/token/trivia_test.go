package token_test

import (
	"testing"

	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

func TestTriviaPredicates(t *testing.T) {
	tests := []struct {
		name       string
		trivia     token.Trivia
		whitespace bool
		comment    bool
	}{
		{"space run", token.Trivia{Kind: token.TriviaSpace, Text: "  \t"}, true, false},
		{"newline run", token.Trivia{Kind: token.TriviaNewline, Text: "\n\n"}, true, false},
		{"line comment", token.Trivia{Kind: token.TriviaLineComment, Text: "// x"}, false, true},
		{"block comment", token.Trivia{Kind: token.TriviaBlockComment, Text: "/* x */"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trivia.IsWhitespace(); got != tt.whitespace {
				t.Errorf("IsWhitespace = %v, want %v", got, tt.whitespace)
			}
			if got := tt.trivia.IsComment(); got != tt.comment {
				t.Errorf("IsComment = %v, want %v", got, tt.comment)
			}
		})
	}
}

func TestTriviaAttachment(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaLineComment,
		Span: source.Span{Start: 0, End: 10},
		Text: "// leading",
	}
	tok := token.Token{
		Kind:    token.KwFn,
		Span:    source.Span{Start: 11, End: 13},
		Text:    "fn",
		Leading: []token.Trivia{tv},
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("leading comment trivia must be present and structured")
	}
}
