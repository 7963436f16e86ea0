package diagnostics

import (
	"fmt"

	"minilang/internal/source"
)

// Common diagnostic builders for the semantic checker

// UndeclaredVariable creates a diagnostic for a use of an undeclared name
func UndeclaredVariable(loc *source.Location, name string) *Diagnostic {
	return NewSemanticError("Variable no declarada: "+name).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(loc, "no declarada")
}

// UndeclaredAssignment creates a diagnostic for assigning to an undeclared name
func UndeclaredAssignment(loc *source.Location, name string) *Diagnostic {
	return NewSemanticError("Variable no declarada antes de asignar: "+name).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(loc, "asignación a variable no declarada")
}

// RedeclaredVariable creates a diagnostic for redeclared variable
func RedeclaredVariable(newLoc, prevLoc *source.Location, name string) *Diagnostic {
	diag := NewSemanticError("Variable ya declarada: "+name).
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(newLoc, "declarada de nuevo aquí")
	if prevLoc != nil {
		diag.WithSecondaryLabel(prevLoc, "declarada primero aquí")
	}
	return diag.WithHelp("use otro nombre o elimine una de las declaraciones")
}

// ReservedWordAsIdentifier creates a diagnostic for a declaration named after a reserved word
func ReservedWordAsIdentifier(loc *source.Location, name string) *Diagnostic {
	return NewSemanticError("No se puede usar palabra reservada como identificador: "+name).
		WithCode(ErrReservedWord).
		WithPrimaryLabel(loc, "palabra reservada")
}

// TypeMismatch creates a diagnostic for an assignment whose value type differs from the declared type
func TypeMismatch(loc *source.Location, name, declared, got string) *Diagnostic {
	return NewSemanticError(fmt.Sprintf("Tipos incompatibles: variable '%s' es %s pero se intenta asignar %s", name, declared, got)).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(loc, fmt.Sprintf("se esperaba %s", declared))
}
