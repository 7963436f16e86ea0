package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/source"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

func ident(name string, line, col int) tokens.Token {
	start := source.Position{Line: line, Column: col}
	end := source.Position{Line: line, Column: col + len([]rune(name))}
	return tokens.NewToken(tokens.ID, name, start, end)
}

func asDiagnostic(t *testing.T, err error) *diagnostics.Diagnostic {
	t.Helper()
	require.Error(t, err)
	diag, ok := err.(*diagnostics.Diagnostic)
	require.True(t, ok, "expected *diagnostics.Diagnostic, got %T", err)
	assert.Equal(t, diagnostics.Semantic, diag.Phase)
	return diag
}

func TestDeclare(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("x", 1, 5), types.TYPE_INT))

	sym, ok := c.Table().Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.TYPE_INT, sym.Type)
	assert.Equal(t, 1, sym.Location.Start.Line)
	assert.Equal(t, 5, sym.Location.Start.Column)
}

func TestDeclare_Duplicate(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("x", 1, 5), types.TYPE_INT))

	diag := asDiagnostic(t, c.Declare(ident("x", 2, 8), types.TYPE_DOUBLE))
	assert.Equal(t, diagnostics.ErrRedeclaredSymbol, diag.Code)
	assert.Equal(t, "Variable ya declarada: x", diag.Message)
	assert.Equal(t, 2, diag.Line())
	assert.Equal(t, 8, diag.Column())

	require.Len(t, diag.Labels, 2)
	assert.Equal(t, 1, diag.Labels[1].Location.Start.Line, "secondary label points at the first declaration")

	sym, _ := c.Table().Lookup("x")
	assert.Equal(t, types.TYPE_INT, sym.Type, "the first declaration wins")
}

func TestDeclare_ReservedWord(t *testing.T) {
	tests := []string{"if", "while", "int", "boolean", "true", "IF", "While", "Double"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			c := New()
			diag := asDiagnostic(t, c.Declare(ident(name, 1, 5), types.TYPE_INT))
			assert.Equal(t, diagnostics.ErrReservedWord, diag.Code)
			assert.Equal(t, "No se puede usar palabra reservada como identificador: "+name, diag.Message)
			assert.Empty(t, c.Table().Names())
		})
	}
}

func TestDeclare_StringIsNotReserved(t *testing.T) {
	c := New()
	assert.NoError(t, c.Declare(ident("string", 1, 5), types.TYPE_INT))
}

func TestUse(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("total", 1, 5), types.TYPE_INT))

	assert.NoError(t, c.Use(ident("total", 2, 1)))

	diag := asDiagnostic(t, c.Use(ident("y", 3, 7)))
	assert.Equal(t, diagnostics.ErrUndefinedSymbol, diag.Code)
	assert.Equal(t, "Variable no declarada: y", diag.Message)
	assert.Equal(t, "Error semántico en línea 3, columna 7: Variable no declarada: y", diag.Error())
}

func TestUse_SuggestsClosestName(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("contador", 1, 5), types.TYPE_INT))
	require.NoError(t, c.Declare(ident("suma", 2, 5), types.TYPE_INT))

	diag := asDiagnostic(t, c.Use(ident("contdor", 3, 1)))
	assert.Equal(t, "¿quiso decir 'contador'?", diag.Help)

	far := asDiagnostic(t, c.Use(ident("resultado", 4, 1)))
	assert.Empty(t, far.Help, "no suggestion beyond the distance threshold")
}

func TestAssign(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("x", 1, 5), types.TYPE_INT))

	assert.NoError(t, c.Assign(ident("x", 2, 1), types.TYPE_INT))

	diag := asDiagnostic(t, c.Assign(ident("x", 2, 1), types.TYPE_DOUBLE))
	assert.Equal(t, diagnostics.ErrTypeMismatch, diag.Code)
	assert.Equal(t, "Tipos incompatibles: variable 'x' es int pero se intenta asignar double", diag.Message)
	require.Len(t, diag.Notes, 1, "numeric mismatch explains there is no widening")
}

func TestAssign_NoWidening(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("big", 1, 6), types.TYPE_LONG))

	diag := asDiagnostic(t, c.Assign(ident("big", 2, 1), types.TYPE_INT))
	assert.Equal(t, diagnostics.ErrTypeMismatch, diag.Code)
}

func TestAssign_NonNumericMismatchHasNoNote(t *testing.T) {
	c := New()
	require.NoError(t, c.Declare(ident("ok", 1, 9), types.TYPE_BOOL))

	diag := asDiagnostic(t, c.Assign(ident("ok", 2, 1), types.TYPE_STRING))
	assert.Empty(t, diag.Notes)
}

func TestAssign_Undeclared(t *testing.T) {
	c := New()
	diag := asDiagnostic(t, c.Assign(ident("z", 1, 1), types.TYPE_INT))
	assert.Equal(t, diagnostics.ErrUndefinedSymbol, diag.Code)
	assert.Equal(t, "Variable no declarada antes de asignar: z", diag.Message)
}

func lit(kind ast.LiteralKind, value string) *ast.BasicLit {
	return &ast.BasicLit{Kind: kind, Value: value}
}

func binary(x ast.Expression, op tokens.TOKEN, y ast.Expression) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: tokens.Token{Kind: op, Value: string(op)}, Y: y}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expression
		expected types.TYPE_NAME
	}{
		{"int literal", lit(ast.INT, "1"), types.TYPE_INT},
		{"real literal", lit(ast.REAL, "1.5"), types.TYPE_DOUBLE},
		{"string literal", lit(ast.STRING, "hola"), types.TYPE_STRING},
		{"bool literal", lit(ast.BOOL, "true"), types.TYPE_BOOL},
		{"identifier only", &ast.IdentifierExpr{Name: "y"}, types.TYPE_INT},
		{"identifier containing true", &ast.IdentifierExpr{Name: "trueish"}, types.TYPE_INT},
		{"identifiers containing false", binary(&ast.IdentifierExpr{Name: "falsehood"}, tokens.OROR, &ast.IdentifierExpr{Name: "x"}), types.TYPE_INT},
		{"int plus real", binary(lit(ast.INT, "1"), tokens.PLUS, lit(ast.REAL, "2.0")), types.TYPE_DOUBLE},
		{"comparison with real", binary(&ast.IdentifierExpr{Name: "a"}, tokens.LT, lit(ast.REAL, "2.0")), types.TYPE_DOUBLE},
		{"string wins over bool", binary(lit(ast.BOOL, "false"), tokens.EQEQ, lit(ast.STRING, "x")), types.TYPE_STRING},
		{"bool wins over real", binary(lit(ast.REAL, "1.0"), tokens.NEQ, lit(ast.BOOL, "true")), types.TYPE_BOOL},
		{"nested in unary", &ast.UnaryExpr{Op: tokens.Token{Kind: tokens.MINUS}, X: &ast.ParenExpr{X: lit(ast.REAL, "0.5")}}, types.TYPE_DOUBLE},
		{"call arguments", &ast.CallExpr{Fun: &ast.IdentifierExpr{Name: "f"}, Args: []ast.Expression{lit(ast.STRING, "s")}}, types.TYPE_STRING},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.InferType(tt.expr))
		})
	}
}
