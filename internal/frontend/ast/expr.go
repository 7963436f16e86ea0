package ast

import (
	"minilang/internal/source"
	"minilang/internal/tokens"
)

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X  Expression   // left operand
	Op tokens.Token // operator
	Y  Expression   // right operand
	source.Location
}

func (b *BinaryExpr) INode()                {} // Implements Node interface
func (b *BinaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// UnaryExpr represents a unary expression (!x, -x)
type UnaryExpr struct {
	Op tokens.Token // operator
	X  Expression   // operand
	source.Location
}

func (u *UnaryExpr) INode()                {} // Implements Node interface
func (u *UnaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// IdentifierExpr represents an identifier
type IdentifierExpr struct {
	Name string
	source.Location
}

func (i *IdentifierExpr) INode()                {} // Implements Node interface
func (i *IdentifierExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	X Expression
	source.Location
}

func (p *ParenExpr) INode()                {} // Implements Node interface
func (p *ParenExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (p *ParenExpr) Loc() *source.Location { return &p.Location }

// AssignExpr represents `x = v` or a compound form such as `x += v`.
// Assignment is right associative, so Value may itself be an AssignExpr.
type AssignExpr struct {
	Target *IdentifierExpr
	Op     tokens.Token // =, +=, -=, *=, /=
	Value  Expression
	source.Location
}

func (a *AssignExpr) INode()                {} // Implements Node interface
func (a *AssignExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (a *AssignExpr) Loc() *source.Location { return &a.Location }

// CallExpr represents a function call expression
type CallExpr struct {
	Fun  *IdentifierExpr // callee name
	Args []Expression    // call arguments
	source.Location
}

func (c *CallExpr) INode()                {} // Implements Node interface
func (c *CallExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (c *CallExpr) Loc() *source.Location { return &c.Location }
