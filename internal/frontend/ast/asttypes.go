package ast

import (
	"minilang/internal/source"
	"minilang/internal/types"
)

// TypeName is the type keyword that opens a declaration
type TypeName struct {
	Name types.TYPE_NAME
	source.Location
}

func (t *TypeName) INode()                {} // Implements Node interface
func (t *TypeName) Loc() *source.Location { return &t.Location }
