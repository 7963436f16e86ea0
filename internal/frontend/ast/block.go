package ast

import "minilang/internal/source"

// Block represents a braced list of statements. It opens no scope.
type Block struct {
	Nodes []Statement
	source.Location
}

func (b *Block) INode()                {} // Implements Node interface
func (b *Block) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *Block) Loc() *source.Location { return &b.Location }

// IfStmt represents an if statement with an optional else branch
type IfStmt struct {
	Cond Expression // condition
	Then Statement  // then branch
	Else Statement  // else branch, nil when absent
	source.Location
}

func (i *IfStmt) INode()                {} // Implements Node interface
func (i *IfStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt represents a while loop
type WhileStmt struct {
	Cond Expression // condition
	Body Statement  // loop body
	source.Location
}

func (w *WhileStmt) INode()                {} // Implements Node interface
func (w *WhileStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (w *WhileStmt) Loc() *source.Location { return &w.Location }
