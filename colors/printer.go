package colors

import (
	"fmt"
	"io"
	"strings"
)

// Printf writes to stdout
func (c COLOR) Printf(format string, args ...any) {
	fmt.Printf(string(c)+format+string(RESET), args...)
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, string(c)+format+string(RESET), args...)
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, args...)
	fmt.Fprint(w, string(RESET))
}

func (c COLOR) Sprint(args ...any) string {
	return string(c) + fmt.Sprint(args...) + string(RESET)
}

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			i++
			continue
		}
		if inEscape {
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ConvertANSIToHTML converts ANSI color codes to HTML span tags
func ConvertANSIToHTML(text string) string {
	// First, escape HTML entities
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")

	// Then replace ANSI codes with HTML
	ansiToHTMLColors := map[string]string{
		"\033[0m":        "</span>",
		"\033[31m":       "<span style=\"color: #ef4444\">",
		"\033[32m":       "<span style=\"color: #10b981\">",
		"\033[33m":       "<span style=\"color: #f59e0b\">",
		"\033[34m":       "<span style=\"color: #3b82f6\">",
		"\033[35m":       "<span style=\"color: #c678dd; font-weight: bold\">",
		"\033[36m":       "<span style=\"color: #56b6c2\">",
		"\033[37m":       "<span style=\"color: var(--vscode-editorLineNumber-activeForeground);\">",
		"\033[90m":       "<span style=\"color: #5c6370\">",
		"\033[1m":        "<span style=\"font-weight: bold\">",
		"\033[1;31m":     "<span style=\"color: #ef4444; font-weight: bold\">",
		"\033[1;32m":     "<span style=\"color: #10b981; font-weight: bold\">",
		"\033[1;33m":     "<span style=\"color: #f59e0b; font-weight: bold\">",
		"\033[1;34m":     "<span style=\"color: #3b82f6; font-weight: bold\">",
		"\033[1;37m":     "<span style=\"color: var(--vscode-editorLineNumber-activeForeground); font-weight: bold\">",
		"\033[38;5;208m": "<span style=\"color: #ff8700\">",
	}

	for ansi, html := range ansiToHTMLColors {
		result = strings.ReplaceAll(result, ansi, html)
	}

	// Convert newlines to <br> and spaces to &nbsp; for proper formatting
	result = strings.ReplaceAll(result, "\n", "<br>")
	result = strings.ReplaceAll(result, "  ", "&nbsp;&nbsp;") // Preserve double spaces

	return result
}
