package tokens

import (
	"bytes"
	"strings"
	"testing"

	"minilang/colors"
	"minilang/internal/source"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word     string
		expected TOKEN
		ok       bool
	}{
		{"if", IF, true},
		{"then", THEN, true},
		{"while", WHILE, true},
		{"long", LONG, true},
		{"true", TRUE, true},
		{"If", "", false},
		{"int", "", false},
		{"boolean", "", false},
		{"ifx", "", false},
	}

	for _, tt := range tests {
		got, ok := LookupKeyword(tt.word)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("LookupKeyword(%q) = (%q, %v), want (%q, %v)", tt.word, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestIsReservedWord(t *testing.T) {
	reserved := []string{"if", "IF", "While", "int", "INT", "boolean", "break", "false"}
	for _, word := range reserved {
		if !IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = false, want true", word)
		}
	}

	free := []string{"x", "ifx", "string", "integer", "_if", ""}
	for _, word := range free {
		if IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = true, want false", word)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	if !IsKeyword(ELSE) {
		t.Error("ELSE should be a keyword kind")
	}
	if IsKeyword(ID) || IsKeyword(PLUS) || IsKeyword(EOF) {
		t.Error("non-keyword kinds reported as keywords")
	}
}

func TestIsAssignment(t *testing.T) {
	for _, kind := range []TOKEN{ASSIGN, PLUSEQ, MINUSEQ, STAREQ, SLASHEQ} {
		if !IsAssignment(kind) {
			t.Errorf("%s should be an assignment operator", kind)
		}
	}
	for _, kind := range []TOKEN{EQEQ, NEQ, GE, PLUS} {
		if IsAssignment(kind) {
			t.Errorf("%s should not be an assignment operator", kind)
		}
	}
}

func TestTokenDebug(t *testing.T) {
	tok := NewToken(ID, "count", source.Position{Line: 3, Column: 7, Index: 20}, source.Position{Line: 3, Column: 12, Index: 25})

	var buf bytes.Buffer
	tok.Debug(&buf, "main.txt")

	out := colors.StripANSI(buf.String())
	if !strings.HasPrefix(out, "main.txt:3:7 ") {
		t.Errorf("debug output should start with the position, got %q", out)
	}
	if !strings.Contains(out, `"count" ('identifier')`) {
		t.Errorf("debug output should show value and kind, got %q", out)
	}
}
