package fuzztests

import (
	"testing"

	"sgstyle/internal/diag"
	"sgstyle/internal/format"
	"sgstyle/internal/parser"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
	"sgstyle/internal/syntax"
)

// FuzzFormatStable checks the formatter contract on every input that
// parses cleanly: the output parses without errors and a second
// formatting pass reproduces it byte for byte.
func FuzzFormatStable(f *testing.F) {
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
		if bag.HasErrors() || syntax.Validate(tree) != nil {
			// Битый вход форматтеру не предлагается — это контракт драйвера.
			return
		}

		cfg := style.Default()
		formatted, err := format.File(tree, cfg)
		if err != nil {
			t.Fatalf("format failed on a valid tree: %v\ninput: %q", err, truncateForLog(input, 200))
		}

		fs2 := source.NewFileSet()
		file2 := fs2.Get(fs2.AddVirtual("fuzz.sg", []byte(formatted)))
		bag2 := diag.NewBag(128)
		tree2 := parser.Parse(file2, parser.Options{MaxErrors: 128, Reporter: bag2})
		if bag2.HasErrors() || syntax.Validate(tree2) != nil {
			t.Fatalf("formatted output does not parse\ninput: %q\nformatted: %q",
				truncateForLog(input, 200), truncateForLog([]byte(formatted), 200))
		}

		again, err := format.File(tree2, cfg)
		if err != nil {
			t.Fatalf("second format failed: %v", err)
		}
		if again != formatted {
			t.Fatalf("formatting is not idempotent\nfirst:  %q\nsecond: %q",
				truncateForLog([]byte(formatted), 200), truncateForLog([]byte(again), 200))
		}
	})
}
