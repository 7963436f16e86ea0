package tokens

import (
	"fmt"
	"io"
	"strings"

	"minilang/colors"
	"minilang/internal/source"
)

type TOKEN string

const (
	//keywords
	LONG   TOKEN = "long"
	DOUBLE TOKEN = "double"
	IF     TOKEN = "if"
	THEN   TOKEN = "then"
	ELSE   TOKEN = "else"
	WHILE  TOKEN = "while"
	BREAK  TOKEN = "break"
	READ   TOKEN = "read"
	WRITE  TOKEN = "write"
	TRUE   TOKEN = "true"
	FALSE  TOKEN = "false"
	//literals
	ID           TOKEN = "identifier"
	INT_CONST    TOKEN = "integer literal"
	REAL_CONST   TOKEN = "real literal"
	STRING_CONST TOKEN = "string literal"
	//arithmetic operators
	PLUS  TOKEN = "+"
	MINUS TOKEN = "-"
	STAR  TOKEN = "*"
	SLASH TOKEN = "/"
	//relational operators
	GT          TOKEN = ">"
	LT          TOKEN = "<"
	GE          TOKEN = ">="
	LE          TOKEN = "<="
	EQEQ        TOKEN = "=="
	NEQ         TOKEN = "!="
	DIAMOND_NEQ TOKEN = "<>"
	//assignment
	ASSIGN  TOKEN = "="
	PLUSEQ  TOKEN = "+="
	MINUSEQ TOKEN = "-="
	STAREQ  TOKEN = "*="
	SLASHEQ TOKEN = "/="
	//logical operators
	ANDAND TOKEN = "&&"
	OROR   TOKEN = "||"
	NOT    TOKEN = "!"
	//delimiters
	LPAREN    TOKEN = "("
	RPAREN    TOKEN = ")"
	LBRACE    TOKEN = "{"
	RBRACE    TOKEN = "}"
	SEMICOLON TOKEN = ";"
	COMMA     TOKEN = ","

	EOF   TOKEN = "end of file"
	ERROR TOKEN = "error"
)

var keyWordsMap = map[string]TOKEN{
	string(LONG):   LONG,
	string(DOUBLE): DOUBLE,
	string(IF):     IF,
	string(THEN):   THEN,
	string(ELSE):   ELSE,
	string(WHILE):  WHILE,
	string(BREAK):  BREAK,
	string(READ):   READ,
	string(WRITE):  WRITE,
	string(TRUE):   TRUE,
	string(FALSE):  FALSE,
}

// reservedWords are the names no variable may take. int and boolean are not
// lexer keywords but are still reserved.
var reservedWords = []string{
	"long", "double", "if", "then", "else", "while", "break",
	"read", "write", "true", "false", "int", "boolean",
}

// LookupKeyword returns the keyword kind spelled exactly by word.
func LookupKeyword(word string) (TOKEN, bool) {
	kind, ok := keyWordsMap[word]
	return kind, ok
}

// IsKeyword reports whether kind is one of the keyword kinds.
func IsKeyword(kind TOKEN) bool {
	_, ok := keyWordsMap[string(kind)]
	return ok
}

// IsReservedWord reports whether name matches a reserved word, ignoring case.
func IsReservedWord(name string) bool {
	for _, word := range reservedWords {
		if strings.EqualFold(word, name) {
			return true
		}
	}
	return false
}

// IsAssignment reports whether kind is '=' or one of the compound forms.
func IsAssignment(kind TOKEN) bool {
	switch kind {
	case ASSIGN, PLUSEQ, MINUSEQ, STAREQ, SLASHEQ:
		return true
	default:
		return false
	}
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func (t Token) Line() int   { return t.Start.Line }
func (t Token) Column() int { return t.Start.Column }

func (t Token) String() string {
	if t.Value == string(t.Kind) {
		return fmt.Sprintf("%q", t.Value)
	}
	return fmt.Sprintf("%q ('%v')", t.Value, t.Kind)
}

// Debug writes the token with its position, one per line.
func (t Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Line(), t.Column())
	fmt.Fprintln(w, t.String())
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
