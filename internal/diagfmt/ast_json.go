package diagfmt

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cooldudemcgeexl/crust/internal/ast"
)

// FormatASTJSON выводит AST в JSON формате
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(prog))
}

// FormatASTYAML выводит AST в YAML формате
func FormatASTYAML(w io.Writer, prog *ast.Program) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(BuildASTOutput(prog)); err != nil {
		return err
	}
	return encoder.Close()
}
