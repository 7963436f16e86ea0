package diagnostics

import (
	"io"
	"unicode"

	"minilang/colors"
	"minilang/internal/tokens"
	"minilang/internal/types"
)

// SyntaxHighlighter colors minilang source lines shown in diagnostics
type SyntaxHighlighter struct{}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter() *SyntaxHighlighter {
	return &SyntaxHighlighter{}
}

// Token represents a highlighted token
type Token struct {
	Text  string
	Color colors.COLOR
}

// Highlight applies syntax highlighting to a line of code
// Returns a slice of tokens with their associated colors
func (sh *SyntaxHighlighter) Highlight(line string) []Token {
	var tokensSlice []Token
	i := 0

	for i < len(line) {
		// Skip whitespace
		if unicode.IsSpace(rune(line[i])) {
			start := i
			for i < len(line) && unicode.IsSpace(rune(line[i])) {
				i++
			}
			tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.WHITE})
			continue
		}

		// String literals (double quotes)
		if line[i] == '"' {
			start := i
			i++
			for i < len(line) && line[i] != '"' {
				i++
			}
			if i < len(line) {
				i++ // Include closing quote
			}
			tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.GREEN})
			continue
		}

		// Numbers (integers and floats)
		if unicode.IsDigit(rune(line[i])) || (line[i] == '.' && i+1 < len(line) && unicode.IsDigit(rune(line[i+1]))) {
			start := i
			for i < len(line) && (unicode.IsDigit(rune(line[i])) || line[i] == '.') {
				i++
			}
			tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.YELLOW})
			continue
		}

		// Identifiers (keywords, types, or regular identifiers)
		if unicode.IsLetter(rune(line[i])) || line[i] == '_' {
			start := i
			for i < len(line) && (unicode.IsLetter(rune(line[i])) || unicode.IsDigit(rune(line[i])) || line[i] == '_') {
				i++
			}
			word := line[start:i]

			// Determine color based on token type using tokens package
			var color colors.COLOR
			if _, ok := tokens.LookupKeyword(word); ok {
				color = colors.PURPLE // Keywords
			} else if types.IsBuiltinType(word) {
				color = colors.ORANGE // Types
			} else {
				color = colors.WHITE // Regular identifiers
			}
			tokensSlice = append(tokensSlice, Token{Text: word, Color: color})
			continue
		}

		// Comments, block comments are only colored from their opening line
		if i+1 < len(line) && line[i] == '/' && (line[i+1] == '/' || line[i+1] == '*') {
			tokensSlice = append(tokensSlice, Token{Text: line[i:], Color: colors.GREY})
			break
		}

		// Operators and punctuation (keep white)
		start := i
		i++
		tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.WHITE})
	}

	return tokensSlice
}

// HighlightWithColor writes line to writer with every token in its color
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	tokens := sh.Highlight(line)
	for _, token := range tokens {
		token.Color.Fprint(writer, token.Text)
	}
}
