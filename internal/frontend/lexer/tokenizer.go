package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"minilang/internal/diagnostics"
	"minilang/internal/source"
	"minilang/internal/tokens"
)

const (
	unterminatedCommentMsg = "Comentario sin cierre"
	unterminatedStringMsg  = "Cadena sin cierre"
	malformedRealMsg       = "Número real mal formado"
	digitLedIdentifierMsg  = "Identificador no puede comenzar con un número"
	unrecognizedSymbolMsg  = "Símbolo no reconocido: '%c'"
)

type regexHandler func(lex *Lexer, match string) (tokens.Token, bool)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// patterns are tried in order, so every two-character operator sits
// before the one-character operator it starts with.
var patterns = []regexPattern{
	{regexp.MustCompile(`^[ \t\r\n]+`), skipHandler},      // whitespace
	{regexp.MustCompile(`^//[^\n]*`), skipHandler},        // single line comments
	{regexp.MustCompile(`^/\*`), blockCommentHandler},     // multi line comments
	{regexp.MustCompile(`^"`), stringHandler},             // string literals
	{regexp.MustCompile(`^[0-9]+`), numberHandler},        // integer and real literals
	{regexp.MustCompile(`^[\p{L}_][\p{L}\p{Nd}_]*`), identifierHandler},
	{regexp.MustCompile(`^\+=`), defaultHandler(tokens.PLUSEQ)},
	{regexp.MustCompile(`^-=`), defaultHandler(tokens.MINUSEQ)},
	{regexp.MustCompile(`^\*=`), defaultHandler(tokens.STAREQ)},
	{regexp.MustCompile(`^/=`), defaultHandler(tokens.SLASHEQ)},
	{regexp.MustCompile(`^==`), defaultHandler(tokens.EQEQ)},
	{regexp.MustCompile(`^!=`), defaultHandler(tokens.NEQ)},
	{regexp.MustCompile(`^>=`), defaultHandler(tokens.GE)},
	{regexp.MustCompile(`^<=`), defaultHandler(tokens.LE)},
	{regexp.MustCompile(`^<>`), defaultHandler(tokens.DIAMOND_NEQ)},
	{regexp.MustCompile(`^&&`), defaultHandler(tokens.ANDAND)},
	{regexp.MustCompile(`^\|\|`), defaultHandler(tokens.OROR)},
	{regexp.MustCompile(`^\+`), defaultHandler(tokens.PLUS)},
	{regexp.MustCompile(`^-`), defaultHandler(tokens.MINUS)},
	{regexp.MustCompile(`^\*`), defaultHandler(tokens.STAR)},
	{regexp.MustCompile(`^/`), defaultHandler(tokens.SLASH)},
	{regexp.MustCompile(`^>`), defaultHandler(tokens.GT)},
	{regexp.MustCompile(`^<`), defaultHandler(tokens.LT)},
	{regexp.MustCompile(`^=`), defaultHandler(tokens.ASSIGN)},
	{regexp.MustCompile(`^!`), defaultHandler(tokens.NOT)},
	{regexp.MustCompile(`^\(`), defaultHandler(tokens.LPAREN)},
	{regexp.MustCompile(`^\)`), defaultHandler(tokens.RPAREN)},
	{regexp.MustCompile(`^\{`), defaultHandler(tokens.LBRACE)},
	{regexp.MustCompile(`^\}`), defaultHandler(tokens.RBRACE)},
	{regexp.MustCompile(`^;`), defaultHandler(tokens.SEMICOLON)},
	{regexp.MustCompile(`^,`), defaultHandler(tokens.COMMA)},
}

// Lexer turns source text into tokens on demand. Position always describes
// the next unconsumed character.
type Lexer struct {
	Position source.Position
	content  string
	err      *diagnostics.Diagnostic
	errToken tokens.Token
}

func New(content string) *Lexer {
	return &Lexer{
		Position: source.Start(),
		content:  content,
	}
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) remainder() string {
	return lex.content[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.content)
}

// Err returns the lexical diagnostic behind the last ERROR token, if any.
func (lex *Lexer) Err() *diagnostics.Diagnostic {
	return lex.err
}

// fail records a lexical diagnostic anchored at start and returns the ERROR
// token that carries its formatted message.
func (lex *Lexer) fail(code, message string, start source.Position) tokens.Token {
	end := lex.Position
	if !start.Before(end) {
		end = start
	}
	lex.err = diagnostics.NewLexicalError(message).
		WithCode(code).
		WithPrimaryLabel(source.NewLocation(nil, &start, &end), "")
	lex.errToken = tokens.NewToken(tokens.ERROR, lex.err.Error(), start, end)
	return lex.errToken
}

// NextToken returns the next token. Once the input is exhausted every call
// returns EOF. After an ERROR token the same ERROR is returned again.
func (lex *Lexer) NextToken() tokens.Token {
	if lex.err != nil {
		return lex.errToken
	}

	for !lex.atEOF() {
		remainder := lex.remainder()
		matched := false

		for _, pattern := range patterns {
			match := pattern.regex.FindString(remainder)
			if match == "" {
				continue
			}
			matched = true
			if token, ok := pattern.handler(lex, match); ok {
				return token
			}
			break
		}

		if !matched {
			start := lex.Position
			r, _ := utf8.DecodeRuneInString(remainder)
			lex.advance(string(r))
			return lex.fail(diagnostics.ErrUnexpectedCharacter, fmt.Sprintf(unrecognizedSymbolMsg, r), start)
		}
	}

	return tokens.NewToken(tokens.EOF, string(tokens.EOF), lex.Position, lex.Position)
}

// Tokenize drives NextToken to EOF. The returned slice ends with the EOF
// token; on the first ERROR token it returns the lexical diagnostic instead.
func (lex *Lexer) Tokenize() ([]tokens.Token, error) {
	toks := make([]tokens.Token, 0)
	for {
		token := lex.NextToken()
		if token.Kind == tokens.ERROR {
			return nil, lex.err
		}
		toks = append(toks, token)
		if token.Kind == tokens.EOF {
			return toks, nil
		}
	}
}

func defaultHandler(kind tokens.TOKEN) regexHandler {
	return func(lex *Lexer, match string) (tokens.Token, bool) {
		start := lex.Position
		lex.advance(match)
		return tokens.NewToken(kind, match, start, lex.Position), true
	}
}

// skipHandler consumes text that produces no token.
func skipHandler(lex *Lexer, match string) (tokens.Token, bool) {
	lex.advance(match)
	return tokens.Token{}, false
}

func blockCommentHandler(lex *Lexer, match string) (tokens.Token, bool) {
	start := lex.Position
	body := lex.remainder()[len(match):]
	end := strings.Index(body, "*/")
	if end < 0 {
		lex.advance(lex.remainder())
		return lex.fail(diagnostics.ErrUnterminatedComment, unterminatedCommentMsg, start), true
	}
	lex.advance(match + body[:end+2])
	return tokens.Token{}, false
}

func stringHandler(lex *Lexer, match string) (tokens.Token, bool) {
	start := lex.Position
	body := lex.remainder()[len(match):]
	end := strings.IndexAny(body, "\"\n")
	if end < 0 || body[end] == '\n' {
		return lex.fail(diagnostics.ErrUnterminatedString, unterminatedStringMsg, start), true
	}
	lex.advance(match + body[:end+1])
	return tokens.NewToken(tokens.STRING_CONST, body[:end], start, lex.Position), true
}

// numberHandler reads an integer or real literal. A letter right after the
// digits, or a '.' without a digit after it, is an error anchored at the
// first digit.
func numberHandler(lex *Lexer, digits string) (tokens.Token, bool) {
	start := lex.Position
	lex.advance(digits)

	rest := lex.remainder()
	next, _ := utf8.DecodeRuneInString(rest)
	if len(rest) > 0 && (unicode.IsLetter(next) || next == '_') {
		return lex.fail(diagnostics.ErrDigitLedIdentifier, digitLedIdentifierMsg, start), true
	}

	if len(rest) == 0 || rest[0] != '.' {
		return tokens.NewToken(tokens.INT_CONST, digits, start, lex.Position), true
	}

	lex.advance(".")
	fraction := fractionPattern.FindString(lex.remainder())
	if fraction == "" {
		return lex.fail(diagnostics.ErrInvalidNumber, malformedRealMsg, start), true
	}
	lex.advance(fraction)
	return tokens.NewToken(tokens.REAL_CONST, digits+"."+fraction, start, lex.Position), true
}

var fractionPattern = regexp.MustCompile(`^[0-9]+`)

// identifierHandler reads the longest identifier, so a keyword followed by
// more identifier characters stays an identifier.
func identifierHandler(lex *Lexer, identifier string) (tokens.Token, bool) {
	start := lex.Position
	lex.advance(identifier)
	if kind, ok := tokens.LookupKeyword(identifier); ok {
		return tokens.NewToken(kind, identifier, start, lex.Position), true
	}
	return tokens.NewToken(tokens.ID, identifier, start, lex.Position), true
}
