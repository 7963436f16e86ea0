package source

import "fmt"

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code, 1-based.
	Column int // Column number in the source code, 1-based, counted in characters.
	Index  int // Byte offset in the source code.
}

// Start is the position of the first character of any source text.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance updates the Position by advancing it over the characters in toSkip.
// A newline moves to column 1 of the next line; every other character,
// including tabs, advances the column by one. Index advances by the byte
// width of each rune so it can be used to slice the original source.
func (p *Position) Advance(toSkip string) *Position {
	for _, char := range toSkip {
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Index += len(string(char))
	}
	return p
}

// Before reports whether p comes strictly before other in the source.
func (p Position) Before(other Position) bool {
	return p.Index < other.Index
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
