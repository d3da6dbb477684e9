// Package diag defines the diagnostic model shared by the scanner, parser and
// checker.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced by
//     the lexer, parser and semantic checks.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// Package diag performs no formatting and no IO. Rendering lives in
// internal/diagfmt; collection per file lives in internal/driver.
//
// # Data model
//
//   - Severity: Info, Warning, Error.
//   - Code: numeric identifier with a stable string form (LEX1001, SYN2001, ...).
//   - Message: short human-readable text.
//   - Primary: the source.Span the finding points at.
//   - Notes: optional secondary spans with extra context.
//
// The scanner and parser stop at their first error, so a file contributes at
// most one LEX or SYN diagnostic. Semantic checks may add several SEM entries.
package diag
