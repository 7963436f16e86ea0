package diagnostics

import (
	"fmt"

	"minilang/internal/source"
)

// Phase identifies the analysis stage that produced a diagnostic
type Phase int

const (
	Lexical Phase = iota
	Syntactic
	Semantic
)

func (p Phase) String() string {
	switch p {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Semantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic is a single analysis failure. It implements error so every
// stage can return it directly.
type Diagnostic struct {
	Phase    Phase
	Message  string
	Code     string // Error code like "T0002"
	FilePath string // Source file for this diagnostic, set by the driver
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

func newDiagnostic(phase Phase, message string) *Diagnostic {
	return &Diagnostic{
		Phase:   phase,
		Message: message,
		Labels:  make([]Label, 0),
		Notes:   make([]Note, 0),
	}
}

// NewLexicalError creates a diagnostic raised by the lexer
func NewLexicalError(message string) *Diagnostic {
	return newDiagnostic(Lexical, message)
}

// NewSyntaxError creates a diagnostic raised by the parser
func NewSyntaxError(message string) *Diagnostic {
	return newDiagnostic(Syntactic, message)
}

// NewSemanticError creates a diagnostic raised by the checker
func NewSemanticError(message string) *Diagnostic {
	return newDiagnostic(Semantic, message)
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(loc *source.Location, message string, style LabelStyle) *Diagnostic {
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds the primary labeled location.
// A second primary label is ignored; the primary is always kept first.
func (d *Diagnostic) WithPrimaryLabel(loc *source.Location, message string) *Diagnostic {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return d
		}
	}
	d.Labels = append([]Label{{
		Location: loc,
		Message:  message,
		Style:    Primary,
	}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a secondary labeled location
// Primary label must exist before adding secondary labels
func (d *Diagnostic) WithSecondaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.Primary() == nil {
		// This is a programming error, so we should make it visible
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	return d.WithLabel(loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Primary returns the primary label, or nil if none was attached.
func (d *Diagnostic) Primary() *Label {
	for i := range d.Labels {
		if d.Labels[i].Style == Primary {
			return &d.Labels[i]
		}
	}
	return nil
}

// Line is the 1-based line of the primary label, 0 when unknown.
func (d *Diagnostic) Line() int {
	if p := d.Primary(); p != nil && p.Location != nil && p.Location.Start != nil {
		return p.Location.Start.Line
	}
	return 0
}

// Column is the 1-based column of the primary label, 0 when unknown.
func (d *Diagnostic) Column() int {
	if p := d.Primary(); p != nil && p.Location != nil && p.Location.Start != nil {
		return p.Location.Start.Column
	}
	return 0
}

func (d *Diagnostic) Error() string {
	switch d.Phase {
	case Lexical:
		return fmt.Sprintf("Error léxico [%d:%d]: %s", d.Line(), d.Column(), d.Message)
	case Syntactic:
		return fmt.Sprintf("Error sintáctico en línea %d, columna %d: %s", d.Line(), d.Column(), d.Message)
	default:
		return fmt.Sprintf("Error semántico en línea %d, columna %d: %s", d.Line(), d.Column(), d.Message)
	}
}
