package table

import (
	"fmt"

	"minilang/internal/semantics/symbols"
)

// SymbolTable maps every declared name of one program to its symbol.
// The language has no nested scopes, so a single flat table serves a run.
type SymbolTable struct {
	symbols map[string]*symbols.Symbol
	order   []string // names in declaration order
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*symbols.Symbol),
		order:   make([]string, 0),
	}
}

// Declare adds a symbol to the table
func (st *SymbolTable) Declare(name string, symbol *symbols.Symbol) error {
	if _, exists := st.symbols[name]; exists {
		return fmt.Errorf("symbol '%s' already declared", name)
	}
	st.symbols[name] = symbol
	st.order = append(st.order, name)
	return nil
}

// Lookup finds a declared symbol
func (st *SymbolTable) Lookup(name string) (*symbols.Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Names returns the declared names in declaration order
func (st *SymbolTable) Names() []string {
	names := make([]string, len(st.order))
	copy(names, st.order)
	return names
}

// Symbols returns the declared symbols in declaration order
func (st *SymbolTable) Symbols() []*symbols.Symbol {
	result := make([]*symbols.Symbol, 0, len(st.order))
	for _, name := range st.order {
		result = append(result, st.symbols[name])
	}
	return result
}
