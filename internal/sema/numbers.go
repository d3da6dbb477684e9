package sema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

// NumberError is returned when a Number literal does not fit the requested
// numeric type.
type NumberError struct {
	Literal string
	Target  string // "uint", "int" or "float"
	Err     error  // *strconv.NumError
	Span    source.Span
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid %s literal %q: %v", e.Target, e.Literal, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// Where returns the span of the literal.
func (e *NumberError) Where() source.Span { return e.Span }

// digits drops `_` separators.
func digits(n ast.Number) string {
	return strings.ReplaceAll(n.Text, "_", "")
}

func numberErr(n ast.Number, target string, err error) *NumberError {
	return &NumberError{Literal: n.Text, Target: target, Err: err, Span: n.Span}
}

// Uint interprets n as a base-10 unsigned integer.
func Uint(n ast.Number) (uint64, error) {
	v, err := strconv.ParseUint(digits(n), 10, 64)
	if err != nil {
		return 0, numberErr(n, "uint", err)
	}
	return v, nil
}

// Int interprets n as a base-10 signed integer.
func Int(n ast.Number) (int64, error) {
	v, err := strconv.ParseInt(digits(n), 10, 64)
	if err != nil {
		return 0, numberErr(n, "int", err)
	}
	return v, nil
}

// Float interprets n as a 64-bit float.
func Float(n ast.Number) (float64, error) {
	v, err := strconv.ParseFloat(digits(n), 64)
	if err != nil {
		return 0, numberErr(n, "float", err)
	}
	return v, nil
}

// IsFractional reports whether n contains a decimal point.
func IsFractional(n ast.Number) bool {
	return strings.Contains(n.Text, ".")
}
