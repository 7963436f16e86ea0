package pipeline

import (
	"minilang/internal/frontend/ast"
	"minilang/internal/frontend/lexer"
	"minilang/internal/frontend/parser"
	"minilang/internal/semantics/checker"
	"minilang/internal/semantics/table"
	"minilang/internal/tokens"
)

// tokenize scans src once into a token slice ending with EOF
func tokenize(src string) ([]tokens.Token, error) {
	return lexer.New(src).Tokenize()
}

// parse recognizes toks with a checker of its own. The symbol table is
// returned even on failure so callers can show what was declared.
func parse(toks []tokens.Token) (*ast.Program, *table.SymbolTable, error) {
	c := checker.New()
	program, err := parser.Parse(toks, c)
	return program, c.Table(), err
}
