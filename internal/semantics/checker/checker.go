// Package checker implements the semantic actions the parser fires while it
// recognizes a program: declarations, uses and assignments are validated
// against one flat symbol table.
package checker

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/semantics/symbols"
	"minilang/internal/semantics/table"
	"minilang/internal/source"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

// maxSuggestionDistance is the largest edit distance still offered as a
// "did you mean" help.
const maxSuggestionDistance = 2

// Checker owns the symbol table of a single analysis run.
type Checker struct {
	table *table.SymbolTable
}

// New creates a checker with an empty symbol table
func New() *Checker {
	return &Checker{table: table.NewSymbolTable()}
}

// Table returns the symbol table filled so far
func (c *Checker) Table() *table.SymbolTable {
	return c.table
}

// Declare records name with type typ. Reserved words are rejected before
// duplicates are looked for.
func (c *Checker) Declare(name tokens.Token, typ types.TYPE_NAME) error {
	loc := locationOf(name)

	if tokens.IsReservedWord(name.Value) {
		return diagnostics.ReservedWordAsIdentifier(loc, name.Value)
	}

	if prev, ok := c.table.Lookup(name.Value); ok {
		return diagnostics.RedeclaredVariable(loc, prev.Location, name.Value)
	}

	return c.table.Declare(name.Value, symbols.NewSymbol(name.Value, typ, loc))
}

// Use checks that name was declared before it is read
func (c *Checker) Use(name tokens.Token) error {
	if _, ok := c.table.Lookup(name.Value); ok {
		return nil
	}
	return c.withSuggestion(diagnostics.UndeclaredVariable(locationOf(name), name.Value), name.Value)
}

// Assign checks that name was declared with exactly the type exprType.
// There is no implicit widening between numeric types.
func (c *Checker) Assign(name tokens.Token, exprType types.TYPE_NAME) error {
	sym, ok := c.table.Lookup(name.Value)
	if !ok {
		return c.withSuggestion(diagnostics.UndeclaredAssignment(locationOf(name), name.Value), name.Value)
	}

	if sym.Type == exprType {
		return nil
	}

	diag := diagnostics.TypeMismatch(locationOf(name), name.Value, sym.Type.String(), exprType.String())
	if sym.Location != nil {
		diag.WithSecondaryLabel(sym.Location, fmt.Sprintf("declarada como %s aquí", sym.Type))
	}
	if types.IsNumericTypeName(sym.Type) && types.IsNumericTypeName(exprType) {
		diag.WithNote("no hay conversión implícita entre tipos numéricos")
	}
	return diag
}

// InferType classifies the value of expr from the literals it contains:
// any string literal makes it string, else any boolean literal makes it
// boolean, else any real literal makes it double, and anything else is int.
// Operands are not type-checked and identifiers contribute nothing.
func (c *Checker) InferType(expr ast.Expression) types.TYPE_NAME {
	var hasString, hasBool, hasReal bool

	ast.Inspect(expr, func(n ast.Node) bool {
		if lit, ok := n.(*ast.BasicLit); ok {
			switch lit.Kind {
			case ast.STRING:
				hasString = true
			case ast.BOOL:
				hasBool = true
			case ast.REAL:
				hasReal = true
			}
		}
		return true
	})

	switch {
	case hasString:
		return types.TYPE_STRING
	case hasBool:
		return types.TYPE_BOOL
	case hasReal:
		return types.TYPE_DOUBLE
	default:
		return types.TYPE_INT
	}
}

// withSuggestion attaches a help pointing at the closest declared name
func (c *Checker) withSuggestion(diag *diagnostics.Diagnostic, name string) *diagnostics.Diagnostic {
	if suggestion, ok := c.closestName(name); ok {
		diag.WithHelp(fmt.Sprintf("¿quiso decir '%s'?", suggestion))
	}
	return diag
}

// closestName returns the declared name with the smallest edit distance to
// name. Ties go to the earlier declaration.
func (c *Checker) closestName(name string) (string, bool) {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, candidate := range c.table.Names() {
		distance := fuzzy.LevenshteinDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best, best != ""
}

func locationOf(tok tokens.Token) *source.Location {
	return source.NewLocation(nil, &tok.Start, &tok.End)
}
