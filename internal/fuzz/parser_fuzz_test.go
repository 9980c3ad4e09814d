package fuzztests

import (
	"testing"
	"time"

	"sgstyle/internal/diag"
	"sgstyle/internal/parser"
	"sgstyle/internal/source"
	"sgstyle/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sg", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		tree := parser.Parse(file, parser.Options{MaxErrors: 128, Reporter: bag})
		if tree == nil {
			t.Fatalf("Parse returned nil tree")
		}
		// Инварианты дерева держатся даже на мусорном входе: узлы-ошибки —
		// обычные узлы, а не дыры в структуре.
		if err := testkit.CheckTreeInvariants(tree, file); err != nil {
			t.Fatalf("tree invariants violated: %v\ninput (%d bytes): %q",
				err, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// It uses a timeout to detect infinite loops that could be caused by
// malformed input or edge cases in error recovery.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Add specific shapes that stress error recovery
	f.Add([]byte("let x = 1 let y = 2;"))               // missing semicolon between items
	f.Add([]byte("fn f() { { { { } } } }"))             // deeply nested blocks
	f.Add([]byte("(((((((((("))                         // unclosed parens
	f.Add([]byte("fn f(a: int, b { return; }"))         // broken parameter list
	f.Add([]byte("let xs = [1, 2"))                     // unclosed list
	f.Add([]byte("+ + + + +"))                          // operators with no operands
	f.Add([]byte("fn f() -> { }"))                      // missing return type
	f.Add([]byte("import a::b::c::d::e::f::g::h as x")) // long path, no semicolon

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.sg", input)
			file := fs.Get(fileID)

			bag := diag.NewBag(128)
			_ = parser.Parse(file, parser.Options{MaxErrors: 128, Reporter: bag})
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
