package pipeline

import (
	"errors"
	"fmt"

	"minilang/internal/diagnostics"
	"minilang/internal/frontend/ast"
	"minilang/internal/frontend/parser"
	"minilang/internal/phase"
	"minilang/internal/semantics/checker"
	"minilang/internal/semantics/symbols"
	"minilang/internal/tokens"
)

var _ parser.Checker = (*checker.Checker)(nil)

// Outcome is the terminal state of one analysis run
type Outcome int

const (
	Ok Outcome = iota
	LexicalError
	SyntaxError
	SemanticError
)

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case SemanticError:
		return "semantic error"
	default:
		return "unknown"
	}
}

// Result is everything one analysis run produced. Diagnostic is nil when
// Outcome is Ok. Tokens, Program and Symbols are filled as far as the run got.
type Result struct {
	Outcome    Outcome
	Diagnostic *diagnostics.Diagnostic
	Phase      phase.Phase // last phase completed
	Tokens     []tokens.Token
	Program    *ast.Program
	Symbols    []*symbols.Symbol
}

// Ok reports whether the source was accepted
func (r Result) Ok() bool {
	return r.Outcome == Ok
}

// Err returns the diagnostic as an error, nil on success
func (r Result) Err() error {
	if r.Diagnostic == nil {
		return nil
	}
	return r.Diagnostic
}

// Analyze runs the whole front end over src: the source is tokenized first,
// so lexical errors are reported before any syntax or semantic error, then
// parsed with a fresh checker. The first error ends the run.
func Analyze(src string) Result {
	result := Result{Phase: phase.PhaseNotStarted}

	toks, err := tokenize(src)
	if err != nil {
		return result.fail(err)
	}
	result.Tokens = toks
	result.advance(phase.PhaseLexed)

	program, table, err := parse(toks)
	result.Symbols = table.Symbols()
	if err != nil {
		return result.fail(err)
	}
	result.Program = program
	result.advance(phase.PhaseChecked)

	return result
}

// advance moves the run to the next phase. Skipping or repeating a phase is
// a bug in Analyze.
func (r *Result) advance(to phase.Phase) {
	if !phase.CanAdvance(r.Phase, to) {
		panic(fmt.Sprintf("pipeline: cannot advance from %s to %s", r.Phase, to))
	}
	r.Phase = to
}

func (r Result) fail(err error) Result {
	var diag *diagnostics.Diagnostic
	if !errors.As(err, &diag) {
		// only the symbol table reports plain errors
		diag = diagnostics.NewSemanticError(err.Error())
	}

	r.Diagnostic = diag
	switch diag.Phase {
	case diagnostics.Lexical:
		r.Outcome = LexicalError
	case diagnostics.Syntactic:
		r.Outcome = SyntaxError
	default:
		r.Outcome = SemanticError
	}
	return r
}
