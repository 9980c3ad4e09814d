package fuzztests

import "testing"

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

// languageSeeds covers the surface the parser accepts: every item kind,
// statement form, and the recovery paths for broken input. The broken
// snippets stay in the corpus on purpose — error recovery is the part
// that panics first.
var languageSeeds = []string{
	"",
	"let a = 1;\n",
	"let mut x = 1;\n",
	"pub let answer = 42;\n",
	"type Id = int;\n",
	"type Pair = [int];\n",
	"import core::util as u;\n",
	"import foo::bar as fb;\nfn add(a: int, b: int) -> int {\n    return a + b;\n}\n",
	"fn f() {\n    return;\n}\n",
	"fn max(a: int, b: int) -> int {\n    if a < b {\n        return b;\n    } else {\n        return a;\n    }\n}\n",
	"fn loop_() {\n    while true {\n        break;\n    }\n}\n",
	"let xs = [1, 2, 3,];\n",
	"let s = \"hi\";\nlet t = \"\\\"quoted\\\"\";\n",
	"// comment\nlet a = 1; // trailing\n",

	// небрежное форматирование — зона интереса wslint и форматтера
	"let a=1;",
	"let a = 1; \nlet b = 2;\n",
	"fn f(){return;}\n",

	// восстановление после ошибок
	"let = 1;\n",
	"42;\nlet ok = 2;\n",
	"fn broken( { let x = 1; }\n",
	"let s = \"unterminated;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
