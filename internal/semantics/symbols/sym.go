package symbols

import (
	"minilang/internal/source"
	"minilang/internal/types"
)

// Symbol represents a declared variable
type Symbol struct {
	Name     string
	Type     types.TYPE_NAME // declared type
	Location *source.Location // name token of the declaration
}

// NewSymbol creates a symbol declared at loc
func NewSymbol(name string, typ types.TYPE_NAME, loc *source.Location) *Symbol {
	return &Symbol{
		Name:     name,
		Type:     typ,
		Location: loc,
	}
}
