// Package diag defines the finding model shared by every analysis phase.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures for style findings
//     produced by the front end, the rule pipeline, and the whitespace linter.
//   - Offer light-weight utilities (Reporter, Bag, DedupReporter) that let
//     producers emit findings without coupling to storage or formatting.
//   - Model fix suggestions as structured edits that the fix engine can apply.
//
// # Data model
//
// Finding is the central record:
//
//   - Rule – the name of the rule that produced the finding ("max-blank-lines",
//     "line-length", ...). The reserved names RuleSyntax and RuleWhitespace
//     mark front-end errors and whitespace-linter findings.
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Message – human oriented text; keep it short and actionable.
//   - Span – the canonical source.Span pointing at the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fix – optional structured correction.
//
// Findings are immutable once emitted: producers hand them to a Reporter and
// never touch them again. TextEdit.OldText acts as an optional guard that the
// fix engine validates before applying edits.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt, fix application in internal/fix, orchestration in the
// driver layer.
package diag
