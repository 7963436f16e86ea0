package ast

import (
	"minilang/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node. Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}
	case *Block:
		for _, stmt := range n.Nodes {
			Inspect(stmt, f)
		}
	case *VarDecl:
		Inspect(n.Type, f)
		for _, name := range n.Names {
			Inspect(name, f)
		}
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)
	case *ReadStmt:
		Inspect(n.Target, f)
	case *WriteStmt:
		Inspect(n.Value, f)
	case *ExprStmt:
		Inspect(n.X, f)
	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)
	case *UnaryExpr:
		Inspect(n.X, f)
	case *ParenExpr:
		Inspect(n.X, f)
	case *AssignExpr:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *CallExpr:
		Inspect(n.Fun, f)
		for _, arg := range n.Args {
			Inspect(arg, f)
		}
	}
}
