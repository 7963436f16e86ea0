package parser

import (
	"minilang/internal/frontend/ast"
	"minilang/internal/source"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

// isDeclStart reports whether the current token opens a declaration.
// int and boolean lex as identifiers; string only counts as a type when a
// name follows it, so a variable called string still parses as an expression.
func (p *Parser) isDeclStart() bool {
	tok := p.peek()
	switch tok.Kind {
	case tokens.LONG, tokens.DOUBLE:
		return true
	case tokens.ID:
		switch types.TYPE_NAME(tok.Value) {
		case types.TYPE_INT, types.TYPE_BOOL:
			return true
		case types.TYPE_STRING:
			next := p.next()
			return next.Kind == tokens.ID || tokens.IsKeyword(next.Kind)
		}
	}
	return false
}

// parseTypeName consumes the type keyword of a declaration
func (p *Parser) parseTypeName() *ast.TypeName {
	tok := p.advance()
	typ, _ := types.FromTypeName(tok.Value)
	return &ast.TypeName{
		Name:     typ,
		Location: *source.NewLocation(nil, &tok.Start, &tok.End),
	}
}

// parseVarDecl: type a, b, c = expr;
// Each name is declared before the next one is read. The initializer is
// assigned to the last name.
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	start := p.peek().Start
	typ := p.parseTypeName()

	decl := &ast.VarDecl{
		Type:  typ,
		Names: []*ast.IdentifierExpr{},
	}

	var last tokens.Token
	for {
		name, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		if err := p.checker.Declare(name, typ.Name); err != nil {
			return nil, err
		}
		decl.Names = append(decl.Names, identifierFrom(name))
		last = name

		if !p.optional(tokens.COMMA) {
			break
		}
	}

	if p.optional(tokens.ASSIGN) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.checker.Assign(last, p.checker.InferType(value)); err != nil {
			return nil, err
		}
		decl.Value = value
	}

	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	decl.Location = p.makeLocation(start)
	return decl, nil
}

// parseDeclarator reads a declared name. Keywords are accepted here so the
// checker can reject them as reserved words.
func (p *Parser) parseDeclarator() (tokens.Token, error) {
	if tokens.IsKeyword(p.peek().Kind) {
		return p.advance(), nil
	}
	return p.expectIdentifier()
}
