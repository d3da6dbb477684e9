// Package token defines the terminal alphabet of the crust language.
// Invariants:
//   - The set of kinds is closed; every consumer switches over Kind exhaustively.
//   - Only Ident, NumberLit and StringLit carry a payload in Token.Text.
//   - Keyword vs identifier is decided once, by the scanner, through
//     LookupKeyword on case-folded text. Tokens are never reclassified.
//   - Token.Span locates the token in its file but never takes part in
//     token equality (see Token.Same).
package token
