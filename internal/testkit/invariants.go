// Package testkit holds checks shared by parser tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed program:
// 1) program span is non-empty, points at sf and lies within its content
// 2) every node span is non-empty and belongs to sf
// 3) every node span is contained in the span of its parent
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}

	// 1) program span sanity
	if prog.Span.End <= prog.Span.Start {
		return fmt.Errorf("program span is empty: %v", prog.Span)
	}
	if prog.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Span.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", prog.Span.End, lenContent)
	}

	return checkNode(prog, prog.Span, sf.ID)
}

func checkNode(n ast.Node, parent source.Span, file source.FileID) error {
	sp := n.Pos()
	if sp.End <= sp.Start {
		return fmt.Errorf("empty span on %T: %v", n, sp)
	}
	if sp.File != file {
		return fmt.Errorf("%T span file mismatch: got=%d want=%d", n, sp.File, file)
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("%T span %v is outside parent span %v", n, sp, parent)
	}
	for _, c := range children(n) {
		if err := checkNode(c, sp, file); err != nil {
			return err
		}
	}
	return nil
}

// children returns the direct children of n in Inspect order.
func children(n ast.Node) []ast.Node {
	var out []ast.Node
	ast.Inspect(n, func(c ast.Node) bool {
		if c == n {
			return true
		}
		out = append(out, c)
		return false
	})
	return out
}
