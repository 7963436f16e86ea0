package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"minilang/colors"
)

func highlight(sh *SyntaxHighlighter, line string) string {
	var buf bytes.Buffer
	sh.HighlightWithColor(line, &buf)
	return buf.String()
}

func TestSyntaxHighlighter_Keywords(t *testing.T) {
	sh := NewSyntaxHighlighter()

	tests := []struct {
		name  string
		input string
		word  string
	}{
		{"while keyword", "while (i < 10) { i = i + 1; }", "while"},
		{"if then else", "if x > 0 then write x; else write 0;", "then"},
		{"read keyword", "read x;", "read"},
		{"boolean literal", "flag = true;", "true"},
		{"long declaration", "long total;", "long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := highlight(sh, tt.input)
			if !strings.Contains(output, colors.PURPLE.Sprint(tt.word)) {
				t.Errorf("expected %q to be highlighted as a keyword in %q", tt.word, output)
			}
		})
	}
}

func TestSyntaxHighlighter_Types(t *testing.T) {
	sh := NewSyntaxHighlighter()

	for _, input := range []string{"int x;", "boolean done;", "string name;"} {
		word := strings.Fields(input)[0]
		output := highlight(sh, input)
		if !strings.Contains(output, colors.ORANGE.Sprint(word)) {
			t.Errorf("expected type %q to be highlighted in %q", word, output)
		}
	}
}

func TestSyntaxHighlighter_Literals(t *testing.T) {
	sh := NewSyntaxHighlighter()

	output := highlight(sh, `x = 3.14; s = "hola";`)
	if !strings.Contains(output, colors.YELLOW.Sprint("3.14")) {
		t.Error("number literal should be yellow")
	}
	if !strings.Contains(output, colors.GREEN.Sprint(`"hola"`)) {
		t.Error("string literal should be green")
	}
}

func TestSyntaxHighlighter_Comments(t *testing.T) {
	sh := NewSyntaxHighlighter()

	tests := []string{
		"x = 1; // trailing",
		"/* block",
	}

	for _, input := range tests {
		toks := sh.Highlight(input)
		last := toks[len(toks)-1]
		if last.Color != colors.GREY {
			t.Errorf("comment in %q should be grey, got %q", input, last.Color)
		}
	}
}

func TestSyntaxHighlighter_PreservesText(t *testing.T) {
	sh := NewSyntaxHighlighter()

	inputs := []string{
		"int a, b = 2;",
		"\twhile (a <> b) { a += 1; }",
		`write "a\b";`,
		"año = 1;",
		"",
	}

	for _, input := range inputs {
		got := colors.StripANSI(highlight(sh, input))
		if got != input {
			t.Errorf("StripANSI(highlight(%q)) = %q", input, got)
		}
	}
}
