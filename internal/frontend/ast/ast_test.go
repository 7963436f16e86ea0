package ast

import (
	"fmt"
	"testing"

	"minilang/internal/tokens"
	"minilang/internal/types"
)

func ident(name string) *IdentifierExpr {
	return &IdentifierExpr{Name: name}
}

func label(n Node) string {
	switch n := n.(type) {
	case *IdentifierExpr:
		return n.Name
	case *BasicLit:
		return n.Value
	case *BinaryExpr:
		return n.Op.Value
	default:
		return fmt.Sprintf("%T", n)
	}
}

func TestInspect_DepthFirstOrder(t *testing.T) {
	// int x = 1 + y; while x { write(x); }
	program := &Program{Statements: []Statement{
		&VarDecl{
			Type:  &TypeName{Name: types.TYPE_INT},
			Names: []*IdentifierExpr{ident("x")},
			Value: &BinaryExpr{
				X:  &BasicLit{Kind: INT, Value: "1"},
				Op: tokens.Token{Kind: tokens.PLUS, Value: "+"},
				Y:  ident("y"),
			},
		},
		&WhileStmt{
			Cond: ident("x"),
			Body: &Block{Nodes: []Statement{&WriteStmt{Value: ident("x")}}},
		},
	}}

	var got []string
	Inspect(program, func(n Node) bool {
		got = append(got, label(n))
		return true
	})

	want := []string{
		"*ast.Program",
		"*ast.VarDecl", "*ast.TypeName", "x", "+", "1", "y",
		"*ast.WhileStmt", "x", "*ast.Block", "*ast.WriteStmt", "x",
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Inspect order = %v, want %v", got, want)
	}
}

func TestInspect_PruneChildren(t *testing.T) {
	stmt := &IfStmt{
		Cond: &UnaryExpr{Op: tokens.Token{Kind: tokens.NOT, Value: "!"}, X: ident("a")},
		Then: &ExprStmt{X: &AssignExpr{Target: ident("b"), Value: &CallExpr{Fun: ident("f"), Args: []Expression{ident("c")}}}},
	}

	var names []string
	Inspect(stmt, func(n Node) bool {
		if id, ok := n.(*IdentifierExpr); ok {
			names = append(names, id.Name)
		}
		_, isCall := n.(*CallExpr)
		return !isCall
	})

	if fmt.Sprint(names) != "[a b]" {
		t.Errorf("names = %v, want [a b]", names)
	}
}

func TestInspect_NilNode(t *testing.T) {
	called := false
	Inspect(nil, func(Node) bool {
		called = true
		return true
	})
	if called {
		t.Error("f must not be called for a nil node")
	}
}

func TestLiteralKind_String(t *testing.T) {
	tests := map[LiteralKind]string{
		INT:    "int",
		REAL:   "real",
		STRING: "string",
		BOOL:   "bool",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
