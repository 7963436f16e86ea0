package diagnostics

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"minilang/colors"
	"minilang/internal/source"
)

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag()

	if bag == nil {
		t.Fatal("NewDiagnosticBag returned nil")
	}
	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false for empty bag")
	}
	if out := bag.EmitAllToString(); out != "" {
		t.Errorf("Expected no output for an empty bag, got %q", out)
	}
}

func TestDiagnosticBag_AddError(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewSyntaxError("test error"))

	if !bag.HasErrors() {
		t.Error("Expected HasErrors() to be true after adding error")
	}
	if len(bag.diagnostics) != 1 {
		t.Errorf("Expected 1 error, got %d", len(bag.diagnostics))
	}
}

func TestDiagnosticBag_ConcurrentAdd(t *testing.T) {
	bag := NewDiagnosticBag()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.AddSourceContent(fmt.Sprintf("f%d.txt", i), "int x;")
			bag.Add(NewSemanticError("concurrent"))
		}()
	}
	wg.Wait()

	out := colors.StripANSI(bag.EmitAllToString())
	if !strings.Contains(out, "50 de 50 archivos con errores") {
		t.Errorf("unexpected summary %q", out)
	}
}

func TestDiagnosticBag_CaretAtEOFAfterTrailingNewline(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.AddSourceContent("main.txt", "int x\n")

	eof := source.Position{Line: 2, Column: 1, Index: 6}
	prevEnd := source.Position{Line: 1, Column: 6, Index: 5}
	diag := NewSyntaxError("Se esperaba ';' al final de la sentencia").
		WithCode(ErrMissingSemiCol).
		WithPrimaryLabel(source.NewLocation(nil, &eof, &eof), "").
		WithSecondaryLabel(source.NewLocation(nil, &prevEnd, &prevEnd), "agregue ';' aquí")
	diag.FilePath = "main.txt"
	bag.Add(diag)

	out := colors.StripANSI(bag.EmitAllToString())

	for _, want := range []string{
		"--> main.txt:2:1",
		"1 | int x\n",
		"2 | \n",
		"  | ^\n",
		"  |      - agregue ';' aquí",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiagnosticBag_EmitAllToString(t *testing.T) {
	bag := NewDiagnosticBag()
	content := "int x;\nx = y;"
	bag.AddSourceContent("main.txt", content)

	start := source.Position{Line: 2, Column: 5, Index: 11}
	end := source.Position{Line: 2, Column: 6, Index: 12}
	diag := UndeclaredVariable(source.NewLocation(nil, &start, &end), "y")
	diag.FilePath = "main.txt"
	bag.Add(diag)

	out := colors.StripANSI(bag.EmitAllToString())

	for _, want := range []string{
		"error[T0002]: Error semántico en línea 2, columna 5: Variable no declarada: y",
		"--> main.txt:2:5",
		"1 | int x;",
		"2 | x = y;",
		"^ no declarada",
		"1 de 1 archivo con errores",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiagnosticBag_SuccessSummary(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.AddSourceContent("a.txt", "int x;")
	bag.AddSourceContent("b.txt", "int y;")

	out := colors.StripANSI(bag.EmitAllToString())
	if !strings.Contains(out, "2 archivos sin errores") {
		t.Errorf("unexpected summary %q", out)
	}
}

func TestDiagnosticBag_EmitAllToHTML(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.AddSourceContent("a.txt", "int x;")
	bag.Add(NewSyntaxError("x"))

	html := bag.EmitAllToHTML()
	if strings.Contains(html, "\033[") {
		t.Error("HTML output should not contain ANSI escapes")
	}
	if !strings.Contains(html, "<span") {
		t.Error("HTML output should contain span tags")
	}
}
