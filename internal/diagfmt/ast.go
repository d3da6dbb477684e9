package diagfmt

import (
	"fmt"
	"strconv"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

// SpanOutput is a byte range of a node.
type SpanOutput struct {
	Start uint32 `json:"start" yaml:"start"`
	End   uint32 `json:"end" yaml:"end"`
}

// ASTNodeOutput: формат-нейтральное представление узла; из него строятся
// pretty/tree/json/yaml выводы.
type ASTNodeOutput struct {
	Type     string            `json:"type" yaml:"type"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Span     SpanOutput        `json:"span" yaml:"span"`
	Fields   map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Children []*ASTNodeOutput  `json:"children,omitempty" yaml:"children,omitempty"`
}

func spanOut(s source.Span) SpanOutput { return SpanOutput{Start: s.Start, End: s.End} }

func newNode(typ string, span source.Span) *ASTNodeOutput {
	return &ASTNodeOutput{Type: typ, Span: spanOut(span)}
}

func (n *ASTNodeOutput) field(k, v string) *ASTNodeOutput {
	if n.Fields == nil {
		n.Fields = make(map[string]string, 4)
	}
	n.Fields[k] = v
	return n
}

func (n *ASTNodeOutput) add(children ...*ASTNodeOutput) *ASTNodeOutput {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// group создаёт синтетический узел-контейнер, span покрывает детей.
func group(name string, children []*ASTNodeOutput) *ASTNodeOutput {
	if len(children) == 0 {
		return nil
	}
	g := &ASTNodeOutput{Type: name, Children: children}
	g.Span = SpanOutput{Start: children[0].Span.Start, End: children[len(children)-1].Span.End}
	return g
}

// BuildASTOutput converts a parsed program into its output tree.
func BuildASTOutput(prog *ast.Program) *ASTNodeOutput {
	if prog == nil {
		return nil
	}
	root := newNode("Program", prog.Span)
	if prog.Header != nil {
		root.add(newNode("Header", prog.Header.Span).field("name", prog.Header.Name.Name))
	}
	if prog.Body != nil {
		body := newNode("Body", prog.Body.Span)
		body.add(group("Declarations", declsOutput(prog.Body.Decls)))
		body.add(group("Statements", stmtsOutput(prog.Body.Stmts)))
		root.add(body)
	}
	return root
}

func declsOutput(decls []ast.Declaration) []*ASTNodeOutput {
	out := make([]*ASTNodeOutput, 0, len(decls))
	for _, d := range decls {
		out = append(out, declOutput(d))
	}
	return out
}

func declOutput(d ast.Declaration) *ASTNodeOutput {
	switch d := d.(type) {
	case *ast.VariableDecl:
		return varOutput("VariableDecl", d)
	case *ast.ProcedureDecl:
		n := newNode("ProcedureDecl", d.Span)
		n.Text = d.Name.Name
		n.field("result", d.Result.String())
		if d.Global {
			n.field("global", "true")
		}
		params := make([]*ASTNodeOutput, 0, len(d.Params))
		for _, p := range d.Params {
			params = append(params, varOutput("Param", p))
		}
		n.add(group("Params", params))
		n.add(group("Declarations", declsOutput(d.Decls)))
		n.add(group("Statements", stmtsOutput(d.Stmts)))
		return n
	default:
		panic(fmt.Sprintf("diagfmt: unexpected declaration %T", d))
	}
}

func varOutput(typ string, v *ast.VariableDecl) *ASTNodeOutput {
	n := newNode(typ, v.Span)
	n.Text = v.Name.Name
	n.field("type", v.Type.String())
	if v.Global {
		n.field("global", "true")
	}
	if v.Bound != nil {
		n.field("bound", v.Bound.Value.Text)
	}
	return n
}

func stmtsOutput(stmts []ast.Statement) []*ASTNodeOutput {
	out := make([]*ASTNodeOutput, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, stmtOutput(s))
	}
	return out
}

func stmtOutput(s ast.Statement) *ASTNodeOutput {
	switch s := s.(type) {
	case *ast.AssignStmt:
		return newNode("Assign", s.Span).add(exprOutput(s.Dest), exprOutput(s.Value))
	case *ast.IfStmt:
		n := newNode("If", s.Span).add(exprOutput(s.Cond))
		n.add(group("Then", stmtsOutput(s.Then)))
		if s.HasElse() {
			els := group("Else", stmtsOutput(s.Else))
			if els == nil {
				// пустой else всё равно показываем
				els = &ASTNodeOutput{Type: "Else", Span: SpanOutput{Start: s.Span.End, End: s.Span.End}}
			}
			n.add(els)
		}
		return n
	case *ast.LoopStmt:
		n := newNode("Loop", s.Span)
		if s.Init != nil {
			n.add(stmtOutput(s.Init))
		}
		n.add(exprOutput(s.Cond))
		n.add(group("Body", stmtsOutput(s.Body)))
		return n
	case *ast.ReturnStmt:
		return newNode("Return", s.Span).add(exprOutput(s.Value))
	default:
		panic(fmt.Sprintf("diagfmt: unexpected statement %T", s))
	}
}

func exprOutput(e ast.Expr) *ASTNodeOutput {
	switch e := e.(type) {
	case nil:
		return nil
	case *ast.BinaryExpr:
		n := newNode("Binary", e.Span).add(exprOutput(e.Left), exprOutput(e.Right))
		n.Text = e.Op.String()
		return n
	case *ast.UnaryExpr:
		n := newNode("Unary", e.Span).add(exprOutput(e.X))
		n.Text = e.Op.String()
		return n
	case *ast.NameExpr:
		if e == nil {
			return nil
		}
		n := newNode("Name", e.Span).add(exprOutput(e.Index))
		n.Text = e.Name.Name
		return n
	case *ast.CallExpr:
		n := newNode("Call", e.Span)
		n.Text = e.Callee.Name
		for _, a := range e.Args {
			n.add(exprOutput(a))
		}
		return n
	case *ast.NumberExpr:
		n := newNode("Number", e.Value.Span)
		n.Text = e.Value.Text
		return n
	case *ast.StringExpr:
		n := newNode("String", e.Value.Span)
		n.Text = strconv.Quote(e.Value.Value)
		return n
	case *ast.BoolExpr:
		n := newNode("Bool", e.Span)
		n.Text = strconv.FormatBool(e.Value)
		return n
	case *ast.ParenExpr:
		return newNode("Paren", e.Span).add(exprOutput(e.X))
	default:
		panic(fmt.Sprintf("diagfmt: unexpected expression %T", e))
	}
}

// label is the one-line caption used by the text renderers.
func (n *ASTNodeOutput) label() string {
	s := n.Type
	if n.Text != "" {
		s += " " + n.Text
	}
	if len(n.Fields) > 0 {
		s += " " + formatFields(n.Fields)
	}
	return s
}
