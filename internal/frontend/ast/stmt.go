package ast

import (
	"minilang/internal/source"
)

// Program represents a whole source file
type Program struct {
	Statements []Statement
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Loc() *source.Location { return &p.Location }

// VarDecl represents `type a, b, c = value;`. The initializer, when present,
// belongs to the last name.
type VarDecl struct {
	Type  *TypeName
	Names []*IdentifierExpr
	Value Expression // can be nil
	source.Location
}

func (v *VarDecl) INode()                {} // Implements Node interface
func (v *VarDecl) Stmt()                 {} // Stmt is a marker interface for all statements
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// ReadStmt represents read(x)
type ReadStmt struct {
	Target *IdentifierExpr
	source.Location
}

func (r *ReadStmt) INode()                {} // Implements Node interface
func (r *ReadStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *ReadStmt) Loc() *source.Location { return &r.Location }

// WriteStmt represents write(expr)
type WriteStmt struct {
	Value Expression
	source.Location
}

func (w *WriteStmt) INode()                {} // Implements Node interface
func (w *WriteStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (w *WriteStmt) Loc() *source.Location { return &w.Location }

// BreakStmt represents a break statement
type BreakStmt struct {
	source.Location
}

func (b *BreakStmt) INode()                {} // Implements Node interface
func (b *BreakStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *BreakStmt) Loc() *source.Location { return &b.Location }

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {} // Implements Node interface
func (e *ExprStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (e *ExprStmt) Loc() *source.Location { return &e.Location }

// EmptyStmt represents a lone ';'
type EmptyStmt struct {
	source.Location
}

func (e *EmptyStmt) INode()                {} // Implements Node interface
func (e *EmptyStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (e *EmptyStmt) Loc() *source.Location { return &e.Location }
