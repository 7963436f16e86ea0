package ast

import "minilang/internal/source"

type LiteralKind int

const (
	INT LiteralKind = iota
	REAL
	STRING
	BOOL
)

func (k LiteralKind) String() string {
	switch k {
	case INT:
		return "int"
	case REAL:
		return "real"
	case STRING:
		return "string"
	case BOOL:
		return "bool"
	default:
		return "unknown"
	}
}

// BasicLit represents a literal of basic type (int, real, string, bool)
type BasicLit struct {
	Kind  LiteralKind
	Value string // the literal value as a string, without quotes for strings
	source.Location
}

func (b *BasicLit) INode()                {} // Implements Node interface
func (b *BasicLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location { return &b.Location }
