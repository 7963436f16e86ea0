package parser

import (
	"minilang/internal/frontend/ast"
	"minilang/internal/tokens"
)

// parseBlock: { statement* }
func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(tokens.LBRACE)
	if err != nil {
		return nil, err
	}

	nodes := []ast.Statement{}
	for !(p.match(tokens.RBRACE) || p.isAtEnd()) {
		node, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if _, err := p.expect(tokens.RBRACE); err != nil {
		return nil, err
	}

	return &ast.Block{
		Nodes:    nodes,
		Location: p.makeLocation(start.Start),
	}, nil
}

// parseIfStmt: if condition then? statement (else statement)?
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	start := p.advance().Start

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	p.optional(tokens.THEN)

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{
		Cond: cond,
		Then: body,
	}

	if p.optional(tokens.ELSE) {
		elseNode, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseNode
	}

	stmt.Location = p.makeLocation(start)
	return stmt, nil
}

// parseWhileStmt: while condition statement
func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	start := p.advance().Start

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseStmt()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{
		Cond:     cond,
		Body:     body,
		Location: p.makeLocation(start),
	}, nil
}

// parseCondition: ( expr ) | expr
// A condition that opens with '(' ends at the matching ')'.
func (p *Parser) parseCondition() (ast.Expression, error) {
	if !p.match(tokens.LPAREN) {
		return p.parseExpr()
	}

	open := p.advance()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.RPAREN); err != nil {
		return nil, err
	}

	return &ast.ParenExpr{
		X:        expr,
		Location: p.makeLocation(open.Start),
	}, nil
}
