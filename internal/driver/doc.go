// Package driver orchestrates whole runs of the tool: it collects .sg
// files, parses and analyzes them in parallel, and aggregates per-file
// findings into one deterministic result. CheckPaths runs the lint
// flow, FormatPaths the formatting flow, ApplyFixes the fix flow.
//
// Назначение: файловый ввод-вывод, параллелизм, дисковый кеш находок и
// события прогресса; вся анализная логика живёт в lint/format/wslint.
// Не делает: вывода — результаты рендерит cmd через diagfmt.
// Зависимости: golang.org/x/sync/errgroup, vmihailenco/msgpack,
// internal/{lint,format,wslint,fix,style,observ}.
package driver
