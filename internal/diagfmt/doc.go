// Package diagfmt renders diagnostics, token streams and syntax trees.
//
// Diagnostics go out as pretty text (with source snippet and carets) or JSON.
// Tokens as a numbered listing or JSON. The AST is first lowered into
// ASTNodeOutput and then printed as an indented tree, a top-down ASCII tree,
// JSON or YAML.
package diagfmt
