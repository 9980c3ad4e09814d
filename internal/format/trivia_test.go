package format

// Тесты сохранения комментариев и схлопывания пустых строк.
//
// Покрытие:
//   - Хвостовые комментарии, комментарии на своих строках, перед '}'
//   - Встроенные и многострочные блочные комментарии
//   - Комментарии при плотной пунктуации (запятая, ';', ')')
//   - Строчный комментарий внутри выражения ломает все группы
//   - Режим пробелов: висячая запятая и посимвольное совпадение токенов

import (
	"testing"

	"sgstyle/internal/lexer"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
)

func TestCommentPreservation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing comment stays on its line",
			input: "let x = 1; // answer\nlet y = 2;\n",
			want:  "let x = 1; // answer\nlet y = 2;\n",
		},
		{
			name:  "own line comment between items",
			input: "let x = 1;\n// note\nlet y = 2;\n",
			want:  "let x = 1;\n// note\nlet y = 2;\n",
		},
		{
			name:  "blank run collapses to one",
			input: "let x = 1;\n\n\n\nlet y = 2;\n",
			want:  "let x = 1;\n\nlet y = 2;\n",
		},
		{
			name:  "blank then comment",
			input: "let x = 1;\n\n\n// header\nlet y = 2;\n",
			want:  "let x = 1;\n\n// header\nlet y = 2;\n",
		},
		{
			name:  "leading blanks before first comment dropped",
			input: "\n\n// top\nfn main() {}\n",
			want:  "// top\nfn main() {}\n",
		},
		{
			name:  "comment after last item",
			input: "fn main() {}\n// done\n",
			want:  "fn main() {}\n// done\n",
		},
		{
			name:  "comment before closing brace",
			input: "fn f() {\n    work();\n    // cleanup follows\n}\n",
			want:  "fn f() {\n    work();\n    // cleanup follows\n}\n",
		},
		{
			name:  "inline block comment",
			input: "let x = /* answer */ 42;\n",
			want:  "let x = /* answer */ 42;\n",
		},
		{
			name:  "multiline block comment kept verbatim",
			input: "fn f() {\n    /* first\n       second */\n    return;\n}\n",
			want:  "fn f() {\n    /* first\n       second */\n    return;\n}\n",
		},
		{
			name:  "missing final newline added",
			input: "let x = 1;",
			want:  "let x = 1;\n",
		},
		{
			name:  "blank run inside block collapses",
			input: "fn f() {\n    a();\n\n\n    b();\n}\n",
			want:  "fn f() {\n    a();\n\n    b();\n}\n",
		},
		{
			name:  "blank before closing brace trimmed",
			input: "fn f() {\n    a();\n\n}\n",
			want:  "fn f() {\n    a();\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, tt.input, style.Default())
			if got != tt.want {
				t.Errorf("format mismatch:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

// TestCommentOnTightPunct: комментарий, прилипший к запятой, ';' или
// ')', встаёт перед ней через один пробел.
func TestCommentOnTightPunct(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "before comma",
			input: "fn f(){g(a /* ctx */, b);}",
			want:  "fn f() {\n    g(a /* ctx */, b);\n}\n",
		},
		{
			name:  "before semicolon",
			input: "fn f(){return x /* ok */;}",
			want:  "fn f() {\n    return x /* ok */;\n}\n",
		},
		{
			name:  "before closing paren",
			input: "fn f(){g(a /* t */);}",
			want:  "fn f() {\n    g(a /* t */);\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, tt.input, style.Default())
			if got != tt.want {
				t.Errorf("format mismatch:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

// TestLineCommentBreaksGroups: строчный комментарий внутри выражения
// заставляет сломаться каждую объемлющую группу.
func TestLineCommentBreaksGroups(t *testing.T) {
	got := formatWith(t, "let x = a + // why\nb;\n", style.Default())
	want := "let x =\n" +
		"    a +\n" +
		"        // why\n" +
		"        b;\n"
	if got != want {
		t.Errorf("forced break:\n got: %q\nwant: %q", got, want)
	}
}

func TestTrailingCommaModes(t *testing.T) {
	input := "let xs=[1,2,];"
	tree := parseSource(t, input)

	canonical, err := File(tree, style.Default())
	if err != nil {
		t.Fatalf("canonical: %v", err)
	}
	if want := "let xs = [1, 2];\n"; canonical != want {
		t.Errorf("canonical drops trailing comma:\n got: %q\nwant: %q", canonical, want)
	}

	ws, err := WhitespaceOnly(parseSource(t, input), style.Default())
	if err != nil {
		t.Fatalf("whitespace-only: %v", err)
	}
	if want := "let xs = [1, 2,];\n"; ws != want {
		t.Errorf("whitespace-only keeps trailing comma:\n got: %q\nwant: %q", ws, want)
	}
}

// Висячая запятая с комментарием не отбрасывается даже в каноне:
// комментарию нужна позиция.
func TestCommentedTrailingCommaKept(t *testing.T) {
	got := formatWith(t, "let xs=[1,2 /* last */,];", style.Default())
	want := "let xs = [1, 2 /* last */,];\n"
	if got != want {
		t.Errorf("commented trailing comma:\n got: %q\nwant: %q", got, want)
	}
}

// TestWhitespaceOnlyTokenSync: рендер режима пробелов лексится в ту же
// последовательность значимых токенов, что и исходник.
func TestWhitespaceOnlyTokenSync(t *testing.T) {
	inputs := []string{
		"import foo::bar;let x=1;fn main(){if x>0{print(x);}else{print(-x);}}",
		"fn f(){while i<n{total=total+xs[i];i=i+1;}return total;}",
		"let xs = [1, 2,]; // keep\nfn g(a:int)->int{return a;}\n",
	}
	for _, input := range inputs {
		tree := parseSource(t, input)
		ws, err := WhitespaceOnly(tree, style.Default())
		if err != nil {
			t.Fatalf("whitespace-only %q: %v", input, err)
		}

		want := lexKinds(t, input)
		got := lexKinds(t, ws)
		if len(want) != len(got) {
			t.Fatalf("token count mismatch for %q: source %d, rendered %d", input, len(want), len(got))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Errorf("token %d mismatch for %q: source %q, rendered %q", i, input, want[i], got[i])
			}
		}
	}
}

func lexKinds(t *testing.T, text string) []string {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("lex.sg", []byte(text)))
	var out []string
	for _, tok := range lexer.ScanAll(file, lexer.Options{}) {
		out = append(out, tok.Kind.String()+":"+tok.Text)
	}
	return out
}
