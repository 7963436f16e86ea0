package parser

import (
	"fmt"

	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/source"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

// maxUnaryDepth bounds recursion on inputs like "------...x"
const maxUnaryDepth = 100

// Checker receives the semantic actions fired while the grammar is being
// recognized. Every action runs at the point where the fact becomes known,
// and the first error aborts the parse.
type Checker interface {
	Declare(name tokens.Token, typ types.TYPE_NAME) error
	Use(name tokens.Token) error
	Assign(name tokens.Token, exprType types.TYPE_NAME) error
	InferType(expr ast.Expression) types.TYPE_NAME
}

// Parser holds temporary state during parsing of a single token stream.
type Parser struct {
	tokens    []tokens.Token
	current   int // current position in tokens
	checker   Checker
	loopDepth int // number of enclosing while bodies
}

// Parse recognizes a whole program from toks, which must end with EOF, and
// reports every declaration, use and assignment to checker as it goes.
func Parse(toks []tokens.Token, checker Checker) (*ast.Program, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.EOF {
		var end source.Position
		if len(toks) > 0 {
			end = toks[len(toks)-1].End
		} else {
			end = source.Start()
		}
		toks = append(toks, tokens.NewToken(tokens.EOF, string(tokens.EOF), end, end))
	}

	parser := &Parser{
		tokens:  toks,
		current: 0,
		checker: checker,
	}

	return parser.parseProgram()
}

// parseProgram: statement+ followed by EOF
func (p *Parser) parseProgram() (*ast.Program, error) {
	start := p.peek().Start

	if p.isAtEnd() {
		return nil, p.errorAt(p.peek(), diagnostics.ErrEmptyProgram, emptyProgramMsg, "")
	}

	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.isAtEnd() {
		// these can only close something that was never opened
		if p.match(tokens.RBRACE, tokens.ELSE) {
			tok := p.peek()
			return nil, p.errorAt(tok, diagnostics.ErrTrailingContent,
				fmt.Sprintf(trailingContentMsg, describe(tok)), "no se esperaba aquí")
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	end := p.peek().End
	program.Location = *source.NewLocation(nil, &start, &end)
	return program, nil
}

// parseStmt parses a statement
func (p *Parser) parseStmt() (ast.Statement, error) {
	if p.isDeclStart() {
		return p.parseVarDecl()
	}

	switch p.peek().Kind {
	case tokens.IF:
		return p.parseIfStmt()
	case tokens.WHILE:
		return p.parseWhileStmt()
	case tokens.READ:
		return p.parseReadStmt()
	case tokens.WRITE:
		return p.parseWriteStmt()
	case tokens.LBRACE:
		return p.parseBlock()
	case tokens.BREAK:
		return p.parseBreakStmt()
	case tokens.SEMICOLON:
		tok := p.advance()
		return &ast.EmptyStmt{Location: *source.NewLocation(nil, &tok.Start, &tok.End)}, nil
	default:
		return p.parseExprStmt()
	}
}

// parseReadStmt: read ( identifier ) ;?
func (p *Parser) parseReadStmt() (*ast.ReadStmt, error) {
	start := p.advance().Start

	if _, err := p.expect(tokens.LPAREN); err != nil {
		return nil, err
	}

	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.checker.Use(name); err != nil {
		return nil, err
	}

	if _, err := p.expect(tokens.RPAREN); err != nil {
		return nil, err
	}
	p.optional(tokens.SEMICOLON)

	return &ast.ReadStmt{
		Target:   identifierFrom(name),
		Location: p.makeLocation(start),
	}, nil
}

// parseWriteStmt: write ( expr ) ;?
func (p *Parser) parseWriteStmt() (*ast.WriteStmt, error) {
	start := p.advance().Start

	if _, err := p.expect(tokens.LPAREN); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokens.RPAREN); err != nil {
		return nil, err
	}
	p.optional(tokens.SEMICOLON)

	return &ast.WriteStmt{
		Value:    value,
		Location: p.makeLocation(start),
	}, nil
}

// parseBreakStmt: break ; inside a while body
func (p *Parser) parseBreakStmt() (*ast.BreakStmt, error) {
	tok := p.peek()
	if p.loopDepth == 0 {
		return nil, p.errorAt(tok, diagnostics.ErrInvalidBreak, breakOutsideLoopMsg, "no hay un ciclo que interrumpir")
	}
	p.advance()

	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	return &ast.BreakStmt{Location: p.makeLocation(tok.Start)}, nil
}

// parseExprStmt: expr ;
func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	start := p.peek().Start

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	return &ast.ExprStmt{
		X:        expr,
		Location: p.makeLocation(start),
	}, nil
}

// Helper methods

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF
}

func (p *Parser) peek() tokens.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

// next returns the token after the current one without consuming anything
func (p *Parser) next() tokens.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// optional consumes the current token when it has the given kind
func (p *Parser) optional(kind tokens.TOKEN) bool {
	if p.match(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind tokens.TOKEN) (tokens.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}
	tok := p.peek()
	return tok, p.errorAt(tok, diagnostics.ErrExpectedToken,
		fmt.Sprintf(expectedTokenMsg, kind, describe(tok)), fmt.Sprintf("se esperaba '%s'", kind))
}

func (p *Parser) expectIdentifier() (tokens.Token, error) {
	if p.match(tokens.ID) {
		return p.advance(), nil
	}
	tok := p.peek()
	return tok, p.errorAt(tok, diagnostics.ErrMissingIdentifier, expectedIdentifierMsg, "se esperaba un nombre")
}

func (p *Parser) expectSemicolon() error {
	if p.optional(tokens.SEMICOLON) {
		return nil
	}
	prev := p.previous()
	return p.errorAt(p.peek(), diagnostics.ErrMissingSemiCol, missingSemicolonMsg, "").
		WithSecondaryLabel(source.NewLocation(nil, &prev.End, &prev.End), "agregue ';' aquí").
		WithNote("toda sentencia debe terminar con ';'")
}

// errorAt builds a syntax diagnostic anchored at tok
func (p *Parser) errorAt(tok tokens.Token, code, msg, label string) *diagnostics.Diagnostic {
	return diagnostics.NewSyntaxError(msg).
		WithCode(code).
		WithPrimaryLabel(source.NewLocation(nil, &tok.Start, &tok.End), label)
}

// makeLocation creates a source location from start to the end of the last consumed token
func (p *Parser) makeLocation(start source.Position) source.Location {
	end := p.previous().End
	return *source.NewLocation(nil, &start, &end)
}

func identifierFrom(tok tokens.Token) *ast.IdentifierExpr {
	return &ast.IdentifierExpr{
		Name:     tok.Value,
		Location: *source.NewLocation(nil, &tok.Start, &tok.End),
	}
}

// describe renders a token the way messages quote it
func describe(tok tokens.Token) string {
	switch tok.Kind {
	case tokens.EOF:
		return "fin de archivo"
	case tokens.STRING_CONST:
		return `"` + tok.Value + `"`
	default:
		return tok.Value
	}
}
