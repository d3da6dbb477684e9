package sema

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Options configure a semantic pass over a program.
type Options struct {
	Reporter diag.Reporter
}

// Result stores what the checker learned about the program.
type Result struct {
	// Bounds maps every array declaration with a valid bound to its length.
	Bounds map[*ast.VariableDecl]uint64
	// Errors counts reported diagnostics.
	Errors int
}

// Check interprets every numeric literal in prog and validates array bounds.
// Bounds must be positive unsigned integers; other literals only have to fit
// int64 or float64.
func Check(prog *ast.Program, opts Options) Result {
	res := Result{Bounds: make(map[*ast.VariableDecl]uint64)}
	if prog == nil {
		return res
	}
	c := checker{reporter: opts.Reporter, result: &res}
	ast.Inspect(prog, c.visit)
	return res
}

type checker struct {
	reporter diag.Reporter
	result   *Result
}

func (c *checker) visit(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.VariableDecl:
		if n.Bound != nil {
			c.checkBound(n)
		}
		return false
	case *ast.NumberExpr:
		c.checkLiteral(n.Value)
		return false
	}
	return true
}

func (c *checker) checkBound(v *ast.VariableDecl) {
	num := v.Bound.Value
	if IsFractional(num) {
		c.report(diag.SemaBoundNotInt, v.Bound.Span, "array bound of %q must be an unsigned integer, found %s", v.Name.Name, num.Text)
		return
	}
	n, err := Uint(num)
	if err != nil {
		c.reportNumber(err)
		return
	}
	if n == 0 {
		c.report(diag.SemaZeroBound, v.Bound.Span, "array %q has zero length", v.Name.Name)
		return
	}
	c.result.Bounds[v] = n
}

func (c *checker) checkLiteral(num ast.Number) {
	var err error
	if IsFractional(num) {
		_, err = Float(num)
	} else {
		_, err = Int(num)
	}
	if err != nil {
		c.reportNumber(err)
	}
}

func (c *checker) reportNumber(err error) {
	var ne *NumberError
	if !errors.As(err, &ne) {
		return
	}
	reason := "malformed"
	if errors.Is(ne.Err, strconv.ErrRange) {
		reason = "out of range"
	}
	c.report(diag.SemaInvalidNumber, ne.Span, "%s literal %s is %s", ne.Target, ne.Literal, reason)
}

func (c *checker) report(code diag.Code, span source.Span, format string, args ...any) {
	c.result.Errors++
	if c.reporter == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if b := diag.ReportError(c.reporter, code, span, msg); b != nil {
		b.Emit()
	}
}
