package driver

import (
	"errors"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/parser"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// ErrorCode classifies a scan or parse failure.
func ErrorCode(err error) diag.Code {
	var (
		single *token.SingleTokenError
		pair   *token.CompoundTokenError
		open   *token.UnterminatedError
		unexp  *parser.UnexpectedTokenError
		eof    *parser.UnexpectedEOFError
		extra  *parser.ExpectedEOFError
	)
	switch {
	case errors.As(err, &single):
		return diag.LexUnknownChar
	case errors.As(err, &pair):
		return diag.LexUnknownCompound
	case errors.As(err, &open):
		return diag.LexUnterminatedBlock
	case errors.As(err, &unexp):
		return diag.SynUnexpectedToken
	case errors.As(err, &eof):
		return diag.SynUnexpectedEOF
	case errors.As(err, &extra):
		return diag.SynExpectedEOF
	}
	return diag.UnknownCode
}

// located is implemented by token.Error and parser.Error.
type located interface {
	Where() source.Span
}

// ErrorDiagnostic converts the first failure of a scan or parse into a
// diagnostic. Errors without a location point at the start of file.
func ErrorDiagnostic(err error, file source.FileID) diag.Diagnostic {
	span := source.Span{File: file}
	var loc located
	if errors.As(err, &loc) {
		span = loc.Where()
	}
	return diag.NewError(ErrorCode(err), span, err.Error())
}
