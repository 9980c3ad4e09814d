// Package fuzztests houses Go fuzz harnesses that exercise the sgstyle
// front end (source -> lexer -> parser) and the formatter on arbitrary
// inputs. Its goal is to smoke test robustness: no panics, trees that
// keep their structural invariants, and formatted output that stays
// stable under reformatting.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в
// FileSet и прогоняют их через лексер, парсер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/diag, internal/syntax, internal/format, internal/testkit.

package fuzztests
