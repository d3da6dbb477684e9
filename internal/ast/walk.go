package ast

import "fmt"

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// each node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		Inspect(n.Header, f)
		Inspect(n.Body, f)
	case *Header:
		Inspect(&n.Name, f)
	case *Body:
		inspectDecls(n.Decls, f)
		inspectStmts(n.Stmts, f)
	case *VariableDecl:
		Inspect(&n.Name, f)
		if n.Bound != nil {
			Inspect(n.Bound, f)
		}
	case *ProcedureDecl:
		Inspect(&n.Name, f)
		for _, p := range n.Params {
			Inspect(p, f)
		}
		inspectDecls(n.Decls, f)
		inspectStmts(n.Stmts, f)
	case *ArrayBound:
		Inspect(&n.Value, f)
	case *AssignStmt:
		Inspect(n.Dest, f)
		Inspect(n.Value, f)
	case *IfStmt:
		Inspect(n.Cond, f)
		inspectStmts(n.Then, f)
		inspectStmts(n.Else, f)
	case *LoopStmt:
		Inspect(n.Init, f)
		Inspect(n.Cond, f)
		inspectStmts(n.Body, f)
	case *ReturnStmt:
		Inspect(n.Value, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *UnaryExpr:
		Inspect(n.X, f)
	case *NameExpr:
		Inspect(&n.Name, f)
		if n.Index != nil {
			Inspect(n.Index, f)
		}
	case *CallExpr:
		Inspect(&n.Callee, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *NumberExpr:
		Inspect(&n.Value, f)
	case *StringExpr:
		Inspect(&n.Value, f)
	case *ParenExpr:
		Inspect(n.X, f)
	case *Identifier, *Number, *StringNode, *BoolExpr:
		// листья
	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node %T", n))
	}
}

func inspectDecls(ds []Declaration, f func(Node) bool) {
	for _, d := range ds {
		Inspect(d, f)
	}
}

func inspectStmts(ss []Statement, f func(Node) bool) {
	for _, s := range ss {
		Inspect(s, f)
	}
}
