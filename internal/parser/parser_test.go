package parser

// Тесты разбора подмножества грамматики.
//
// Покрытие:
//   - Импорты: простые, с путями, с алиасами
//   - Декларации: fn (параметры, возвращаемый тип), let (mut, тип,
//     инициализатор), type
//   - Операторы: блоки, if/else, while, return, break, continue
//   - Выражения: приоритеты, ассоциативность, постфиксы, массивы
//   - Восстановление после ошибок: error-узлы на верхнем уровне и в блоках

import (
	"fmt"
	"strings"
	"testing"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/syntax"
	"sgstyle/internal/testkit"
)

// parseString — хелпер: разбирает строку и возвращает дерево с бэгом
func parseString(t *testing.T, input string) (*syntax.Tree, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sg", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	tree := Parse(file, Options{MaxErrors: 100, Reporter: bag})
	return tree, bag
}

// dump печатает форму дерева в одну строку: kind[children] и kind(text) для листьев
func dump(tree *syntax.Tree, id syntax.NodeID) string {
	n := tree.Node(id)
	if n.Kind.IsLeaf() {
		return fmt.Sprintf("%v(%s)", n.Kind, tree.Text(id))
	}
	if len(n.Children) == 0 {
		return n.Kind.String()
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = dump(tree, c)
	}
	return fmt.Sprintf("%v[%s]", n.Kind, strings.Join(parts, " "))
}

// expectShape разбирает input и сверяет форму дерева
func expectShape(t *testing.T, input, want string) {
	t.Helper()
	tree, bag := parseString(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q:\n%s", input, diag.FormatShort(bag.Items(), nil, false))
	}
	got := dump(tree, tree.Root)
	if got != want {
		t.Errorf("shape mismatch for %q:\n got: %s\nwant: %s", input, got, want)
	}
}

// ====== Импорты ======

func TestParseImport(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"import foo;", "file[import[path[name(foo)]]]"},
		{"import foo::bar;", "file[import[path[name(foo) name(bar)]]]"},
		{"import foo::bar::baz;", "file[import[path[name(foo) name(bar) name(baz)]]]"},
		{"import foo as f;", "file[import[path[name(foo)] name(f)]]"},
		{"import foo::bar as fb;", "file[import[path[name(foo) name(bar)] name(fb)]]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectShape(t, tt.input, tt.want)
		})
	}
}

// ====== Декларации ======

func TestParseFn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"empty",
			"fn main() { }",
			"file[fn[name(main) params block]]",
		},
		{
			"params and return type",
			"fn add(a: int, b: int) -> int { return a + b; }",
			"file[fn[name(add) params[param[name(a) type-ref] param[name(b) type-ref]] type-ref block[return[binary[name(a) name(b)]]]]]",
		},
		{
			"pub",
			"pub fn visible() { }",
			"file[fn[name(visible) params block]]",
		},
		{
			"array param type",
			"fn sum(xs: [int]) -> int { return 0; }",
			"file[fn[name(sum) params[param[name(xs) type-ref]] type-ref block[return[literal(0)]]]]",
		},
		{
			"trailing comma in params",
			"fn f(a: int,) { }",
			"file[fn[name(f) params[param[name(a) type-ref]] block]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectShape(t, tt.input, tt.want)
		})
	}
}

func TestParseLet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "let x = 1;", "file[let[name(x) literal(1)]]"},
		{"typed", "let x: int = 1;", "file[let[name(x) type-ref literal(1)]]"},
		{"mut", "let mut x = 1;", "file[let[name(x) literal(1)]]"},
		{"no init", "let x: int;", "file[let[name(x) type-ref]]"},
		{"pub", "pub let x = 1;", "file[let[name(x) literal(1)]]"},
		{"path type", "let c: std::color = red();", "file[let[name(c) type-ref call[name(red) args]]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectShape(t, tt.input, tt.want)
		})
	}
}

func TestParseTypeDecl(t *testing.T) {
	expectShape(t, "type Id = int;", "file[type[name(Id) type-ref]]")
	expectShape(t, "pub type Row = [int];", "file[type[name(Row) type-ref]]")
}

// ====== Операторы ======

func TestParseIfElse(t *testing.T) {
	expectShape(t,
		"fn f() { if a { } else { } }",
		"file[fn[name(f) params block[if[name(a) block block]]]]")

	// else-if складывается в цепочку вложенных if
	expectShape(t,
		"fn f() { if a { } else if b { } else { } }",
		"file[fn[name(f) params block[if[name(a) block if[name(b) block block]]]]]")
}

func TestParseWhile(t *testing.T) {
	expectShape(t,
		"fn f() { while true { break; continue; } }",
		"file[fn[name(f) params block[while[literal(true) block[break continue]]]]]")
}

func TestParseNestedBlock(t *testing.T) {
	expectShape(t,
		"fn f() { { let x = 1; } }",
		"file[fn[name(f) params block[block[let[name(x) literal(1)]]]]]")
}

func TestParseReturnBare(t *testing.T) {
	expectShape(t,
		"fn f() { return; }",
		"file[fn[name(f) params block[return]]]")
}

// ====== Выражения ======

func TestExprPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"mul binds tighter",
			"1 + 2 * 3;",
			"binary[literal(1) binary[literal(2) literal(3)]]",
		},
		{
			"parens override",
			"(1 + 2) * 3;",
			"binary[group[binary[literal(1) literal(2)]] literal(3)]",
		},
		{
			"left assoc",
			"1 - 2 - 3;",
			"binary[binary[literal(1) literal(2)] literal(3)]",
		},
		{
			"assignment right assoc",
			"a = b = c;",
			"binary[name(a) binary[name(b) name(c)]]",
		},
		{
			"compound assign",
			"a += b * 2;",
			"binary[name(a) binary[name(b) literal(2)]]",
		},
		{
			"logic below comparison",
			"a < b && c > d;",
			"binary[binary[name(a) name(b)] binary[name(c) name(d)]]",
		},
		{
			"unary",
			"-x * y;",
			"binary[unary[name(x)] name(y)]",
		},
		{
			"stacked unary",
			"!-x;",
			"unary[unary[name(x)]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, bag := parseString(t, "fn f() { "+tt.input+" }")
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diag.FormatShort(bag.Items(), nil, false))
			}
			// file[fn[name params block[expr-stmt[<want>]]]]
			got := dump(tree, tree.Root)
			want := "file[fn[name(f) params block[expr-stmt[" + tt.want + "]]]]"
			if got != want {
				t.Errorf("shape mismatch:\n got: %s\nwant: %s", got, want)
			}
		})
	}
}

func TestExprPostfix(t *testing.T) {
	tree, bag := parseString(t, "fn f() { g(x)[0].y; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diag.FormatShort(bag.Items(), nil, false))
	}
	got := dump(tree, tree.Root)
	want := "file[fn[name(f) params block[expr-stmt[field[index[call[name(g) args[name(x)]] literal(0)] name(y)]]]]]"
	if got != want {
		t.Errorf("shape mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestExprPathCall(t *testing.T) {
	tree, bag := parseString(t, "fn f() { std::io::print(msg); }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diag.FormatShort(bag.Items(), nil, false))
	}
	got := dump(tree, tree.Root)
	want := "file[fn[name(f) params block[expr-stmt[call[path[name(std) name(io) name(print)] args[name(msg)]]]]]]"
	if got != want {
		t.Errorf("shape mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestExprArrayLiteral(t *testing.T) {
	expectShape(t,
		"let v = [1, 2, 3];",
		"file[let[name(v) array[literal(1) literal(2) literal(3)]]]")
	expectShape(t,
		"let e = [];",
		"file[let[name(e) array]]")
	// висячая запятая
	expectShape(t,
		"let v = [1,];",
		"file[let[name(v) array[literal(1)]]]")
}

func TestExprStringLiteral(t *testing.T) {
	expectShape(t,
		`let s = "hi there";`,
		`file[let[name(s) literal("hi there")]]`)
}

// ====== Восстановление после ошибок ======

func TestErrorRecoveryTopLevel(t *testing.T) {
	// ошибка в первом item, второй разбирается нормально
	tree, bag := parseString(t, "let = 1; fn ok() { }")

	if !bag.HasErrors() {
		t.Fatal("expected parse errors")
	}
	got := dump(tree, tree.Root)
	want := "file[error fn[name(ok) params block]]"
	if got != want {
		t.Errorf("shape mismatch:\n got: %s\nwant: %s", got, want)
	}

	// дерево с error-узлом не проходит валидацию
	if err := syntax.Validate(tree); err == nil {
		t.Error("expected Validate to reject tree with error node")
	}
}

func TestErrorRecoveryInBlock(t *testing.T) {
	tree, bag := parseString(t, "fn f() { let; x; }")

	if !bag.HasErrors() {
		t.Fatal("expected parse errors")
	}
	got := dump(tree, tree.Root)
	want := "file[fn[name(f) params block[error expr-stmt[name(x)]]]]"
	if got != want {
		t.Errorf("shape mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestErrorUnclosedFn(t *testing.T) {
	tree, bag := parseString(t, "fn f(")

	if !bag.HasErrors() {
		t.Fatal("expected parse errors")
	}
	// весь недоразобранный хвост became error-узлом
	got := dump(tree, tree.Root)
	want := "file[error]"
	if got != want {
		t.Errorf("shape mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestErrorUnexpectedTopLevel(t *testing.T) {
	tree, bag := parseString(t, "42;")

	if !bag.HasErrors() {
		t.Fatal("expected parse errors")
	}
	if got := dump(tree, tree.Root); got != "file[error]" {
		t.Errorf("expected file[error], got %s", got)
	}
}

func TestParseEmptyFile(t *testing.T) {
	tree, bag := parseString(t, "")
	if bag.HasErrors() {
		t.Fatal("expected no errors for empty file")
	}
	if got := dump(tree, tree.Root); got != "file" {
		t.Errorf("expected bare file node, got %s", got)
	}
	if err := syntax.Validate(tree); err != nil {
		t.Errorf("empty file should validate: %v", err)
	}
}

func TestParseCommentsOnlyFile(t *testing.T) {
	tree, bag := parseString(t, "// just a comment\n")
	if bag.HasErrors() {
		t.Fatal("expected no errors")
	}
	if got := dump(tree, tree.Root); got != "file" {
		t.Errorf("expected bare file node, got %s", got)
	}
}

func TestMaxErrorsCap(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sg", []byte("let; let; let;"))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	Parse(file, Options{MaxErrors: 1, Reporter: bag})

	if bag.Len() != 1 {
		t.Errorf("expected reporting capped at 1 finding, got %d", bag.Len())
	}
}

func TestLexerErrorsFlowThrough(t *testing.T) {
	_, bag := parseString(t, "let x = \"unterminated;")
	if !bag.HasErrors() {
		t.Fatal("expected lexical error to surface")
	}
	found := false
	for _, f := range bag.Items() {
		if f.Rule == diag.RuleSyntax && strings.Contains(f.Message, "unterminated string") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unterminated string finding, got %s", diag.FormatShort(bag.Items(), nil, false))
	}
}

func TestTreeInvariants(t *testing.T) {
	// Инварианты дерева на представительном наборе входов, включая
	// восстановление после ошибок.
	inputs := []string{
		"",
		"let a = 1;\n",
		"import core::util as u;\nfn main() { let x = f(1, 2); }\n",
		"fn f(a: int, b: int) -> int {\n    if a > b { return a; } else { return b; }\n}\n",
		"type Pair = [int];\nlet xs = [1, 2, 3,];\n",
		"fn loop_() { while true { break; } }\n",
		"let = 1;\n",
		"42;\nlet ok = 2;\n",
		"fn broken( { let x = 1; }\n",
	}
	for _, input := range inputs {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("test.sg", []byte(input)))
		bag := diag.NewBag(100)
		tree := Parse(file, Options{MaxErrors: 100, Reporter: bag})
		if err := testkit.CheckTreeInvariants(tree, file); err != nil {
			t.Errorf("invariants broken for %q: %v", input, err)
		}
	}
}
