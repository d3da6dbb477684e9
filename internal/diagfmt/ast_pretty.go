package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatASTPretty выводит AST в виде дерева с отступами ├─/└─ и позициями.
func FormatASTPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	root := BuildASTOutput(prog)
	if root == nil {
		_, err := fmt.Fprintln(w, "<nil>")
		return err
	}
	var fileID source.FileID
	if prog != nil {
		fileID = prog.Span.File
	}
	return prettyNode(w, root, fs, fileID, "", "")
}

func prettyNode(w io.Writer, n *ASTNodeOutput, fs *source.FileSet, file source.FileID, head, indent string) error {
	span := source.Span{File: file, Start: n.Span.Start, End: n.Span.End}
	if _, err := fmt.Fprintf(w, "%s%s (%s)\n", head, n.label(), formatSpan(span, fs)); err != nil {
		return err
	}
	for i, c := range n.Children {
		last := i == len(n.Children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		if err := prettyNode(w, c, fs, file, indent+branch, indent+next); err != nil {
			return err
		}
	}
	return nil
}
