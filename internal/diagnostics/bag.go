package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"minilang/colors"
	"minilang/internal/utils/strings"
)

const (
	analysisFailedMsg  = "\nAnálisis fallido: %d de %d %s con errores"
	analysisSucceedMsg = "\nAnálisis correcto: %d %s sin errores\n"
)

// DiagnosticBag collects the diagnostics of every analyzed file. The core
// stops at the first error of a file, so a bag holds at most one diagnostic
// per file; the driver fills it from many goroutines.
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	fileCount   int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates an empty diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// AddSourceContent registers the content of an analyzed file so snippets can be rendered
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.fileCount++
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = append(db.diagnostics, diag)
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.diagnostics) > 0
}

// EmitAll renders every diagnostic and the summary to w.
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	db.mu.Lock()
	emitter := NewEmitter(w, db.sourceCache)
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	// copy diagnostics to avoid holding lock during emit
	copy(diagnostics, db.diagnostics)
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}

	db.printSummary(w)
}

// EmitAllToString emits all diagnostics to a string with ANSI codes
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAll(&buf)
	return buf.String()
}

// EmitAllToHTML emits all diagnostics to an HTML string
func (db *DiagnosticBag) EmitAllToHTML() string {
	return colors.ConvertANSIToHTML(db.EmitAllToString())
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.diagnostics) > 0 {
		colors.RED.Fprintf(w, analysisFailedMsg, len(db.diagnostics), db.fileCount, files(db.fileCount))
		fmt.Fprintln(w)
	} else if db.fileCount > 0 {
		colors.GREEN.Fprintf(w, analysisSucceedMsg, db.fileCount, files(db.fileCount))
	}
}

func files(count int) string {
	return strings.Pluralize("archivo", "archivos", count)
}
