package parser

import (
	"fmt"

	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/source"
	"minilang/internal/tokens"
)

const (
	emptyProgramMsg       = "Archivo vacío o sin instrucciones válidas"
	trailingContentMsg    = "Contenido inesperado después de la última sentencia: '%s'"
	expectedTokenMsg      = "Se esperaba '%s' pero se encontró '%s'"
	expectedIdentifierMsg = "Se esperaba identificador"
	invalidExpressionMsg  = "Expresión inválida"
	missingSemicolonMsg   = "Se esperaba ';' al final de la sentencia"
	invalidAssignMsg      = "Destino de asignación inválido"
	breakOutsideLoopMsg   = "'break' fuera de un ciclo"
	unaryNestingMsg       = "Demasiados operadores unarios anidados (máximo %d)"
)

// parseExpr parses an expression
func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment: identifier op assignment | logicalOr
// op is '=' or a compound form. Only a bare identifier can be assigned.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	if p.match(tokens.ID) && tokens.IsAssignment(p.next().Kind) {
		target := p.advance()
		op := p.advance()

		// a compound form reads the target before the value
		if op.Kind != tokens.ASSIGN {
			if err := p.checker.Use(target); err != nil {
				return nil, err
			}
		}

		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}

		if op.Kind == tokens.ASSIGN {
			if err := p.checker.Assign(target, p.checker.InferType(value)); err != nil {
				return nil, err
			}
		}

		return &ast.AssignExpr{
			Target:   identifierFrom(target),
			Op:       op,
			Value:    value,
			Location: p.makeLocation(target.Start),
		}, nil
	}

	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}

	if tokens.IsAssignment(p.peek().Kind) {
		return nil, p.errorAt(p.peek(), diagnostics.ErrInvalidAssignTarget, invalidAssignMsg, "solo se puede asignar a una variable").
			WithSecondaryLabel(left.Loc(), "no es una variable")
	}

	return left, nil
}

// parseBinary parses a left-associative chain of operand (op operand)*
func (p *Parser) parseBinary(operand func() (ast.Expression, error), ops ...tokens.TOKEN) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: *source.NewLocation(nil, left.Loc().Start, right.Loc().End),
		}
	}

	return left, nil
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	return p.parseBinary(p.parseLogicalAnd, tokens.OROR)
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	return p.parseBinary(p.parseEquality, tokens.ANDAND)
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseBinary(p.parseComparison, tokens.EQEQ, tokens.NEQ, tokens.DIAMOND_NEQ)
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.parseBinary(p.parseAdditive, tokens.LT, tokens.GT, tokens.LE, tokens.GE)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseBinary(p.parseMultiplicative, tokens.PLUS, tokens.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseBinary(p.parseUnary, tokens.STAR, tokens.SLASH)
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	return p.parseUnaryDepth(0)
}

func (p *Parser) parseUnaryDepth(depth int) (ast.Expression, error) {
	if !p.match(tokens.NOT, tokens.MINUS) {
		return p.parsePrimary()
	}

	if depth >= maxUnaryDepth {
		return nil, p.errorAt(p.peek(), diagnostics.ErrMax,
			fmt.Sprintf(unaryNestingMsg, maxUnaryDepth), "anidamiento excesivo")
	}

	op := p.advance()
	expr, err := p.parseUnaryDepth(depth + 1)
	if err != nil {
		return nil, err
	}

	return &ast.UnaryExpr{
		Op:       op,
		X:        expr,
		Location: *source.NewLocation(nil, &op.Start, expr.Loc().End),
	}, nil
}

// parsePrimary: literal | identifier [ ( args ) ] | ( expr )
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case tokens.INT_CONST:
		return p.literal(ast.INT), nil

	case tokens.REAL_CONST:
		return p.literal(ast.REAL), nil

	case tokens.STRING_CONST:
		return p.literal(ast.STRING), nil

	case tokens.TRUE, tokens.FALSE:
		return p.literal(ast.BOOL), nil

	case tokens.ID:
		if p.next().Kind == tokens.LPAREN {
			return p.parseCallExpr()
		}
		p.advance()
		if err := p.checker.Use(tok); err != nil {
			return nil, err
		}
		return identifierFrom(tok), nil

	case tokens.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokens.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{
			X:        expr,
			Location: p.makeLocation(tok.Start),
		}, nil
	}

	return nil, p.errorAt(tok, diagnostics.ErrInvalidExpression, invalidExpressionMsg,
		fmt.Sprintf("'%s' no puede iniciar una expresión", describe(tok)))
}

// parseCallExpr: identifier ( (expr (, expr)*)? )
// The callee is not looked up; the language declares no functions.
func (p *Parser) parseCallExpr() (*ast.CallExpr, error) {
	name := p.advance()
	p.advance() // (

	args := []ast.Expression{}
	if !p.match(tokens.RPAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.optional(tokens.COMMA) {
				break
			}
		}
	}

	if _, err := p.expect(tokens.RPAREN); err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		Fun:      identifierFrom(name),
		Args:     args,
		Location: p.makeLocation(name.Start),
	}, nil
}

func (p *Parser) literal(kind ast.LiteralKind) *ast.BasicLit {
	tok := p.advance()
	return &ast.BasicLit{
		Kind:     kind,
		Value:    tok.Value,
		Location: *source.NewLocation(nil, &tok.Start, &tok.End),
	}
}
