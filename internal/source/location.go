package source

import (
	"fmt"
	"strings"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

func (l *Location) String() string {
	if l.Start == nil || l.End == nil {
		return "location(unknown)"
	}

	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// GetText extracts the text covered by this location from content.
// Returns empty string if the location does not fit inside content.
func (l *Location) GetText(content string) string {
	if l.Start == nil || l.End == nil {
		return ""
	}
	if l.Start.Index < 0 || l.End.Index > len(content) || l.Start.Index > l.End.Index {
		return ""
	}
	return content[l.Start.Index:l.End.Index]
}

// SplitLines splits content into lines without their terminators.
// A trailing "\r" is dropped so CRLF sources render like LF ones.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
