// Package sema interprets numeric literals and validates array bounds.
//
// The parser keeps numbers as raw text; sema converts them with Uint, Int and
// Float and reports failures as diagnostics (SEM3xxx) through diag.Reporter.
package sema
