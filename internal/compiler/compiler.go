package compiler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"minilang/colors"
	"minilang/internal/diagnostics"
	"minilang/internal/pipeline"
	"minilang/internal/utils/fs"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	HTML
)

// DefaultExtension is used for directory discovery when Options.Extension is empty
const DefaultExtension = ".txt"

// memorySource names the unit analyzed from Options.Code
const memorySource = "main"

// Options for compilation
type Options struct {
	// For file-based compilation: files and directories, in report order
	Paths []string
	// For in-memory compilation
	Code string
	// Extension of the files collected from directories
	Extension string
	// Max files analyzed at once; <= 0 means GOMAXPROCS
	Jobs int
	// Debug output
	Debug bool
	// Output format: "ansi" or "html"
	LogFormat FORMAT
	// Plain text ANSI report, for pipes and log files
	NoColor bool
	// Destination of the ANSI report; nil means os.Stdout
	Writer io.Writer
}

// FileResult is the analysis of one source unit
type FileResult struct {
	Path   string
	Result pipeline.Result
}

// Result of compilation
type Result struct {
	Success bool
	Output  string
	Files   []FileResult
}

type unit struct {
	path    string
	content string
	loaded  bool
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Compile analyzes every source named by opts and reports the diagnostics
func Compile(opts *Options) Result {
	var out bytes.Buffer

	units, err := loadUnits(opts)
	if err != nil {
		colors.RED.Fprintf(&out, "%v\n", err)
		return finish(opts, Result{Success: false}, &out, nil)
	}

	files, err := analyze(context.Background(), units, opts.Jobs)
	if err != nil {
		colors.RED.Fprintf(&out, "%v\n", err)
		return finish(opts, Result{Success: false}, &out, nil)
	}

	bag := diagnostics.NewDiagnosticBag()
	for i, file := range files {
		bag.AddSourceContent(file.Path, units[i].content)
		if opts.Debug {
			debugDump(&out, file)
		}
		if file.Result.Ok() {
			colors.GREEN.Fprintf(&out, "✓ %s\n", file.Path)
			continue
		}
		diag := file.Result.Diagnostic
		diag.FilePath = file.Path
		bag.Add(diag)
		colors.RED.Fprintf(&out, "✗ %s (%s%s)\n", file.Path, file.Result.Outcome, near(diag, units[i].content))
	}

	return finish(opts, Result{Success: !bag.HasErrors(), Files: files}, &out, bag)
}

// finish appends the diagnostics in bag, if any, to the report in out and
// renders it in the requested format
func finish(opts *Options, result Result, out *bytes.Buffer, bag *diagnostics.DiagnosticBag) Result {
	if opts.LogFormat == HTML {
		result.Output = colors.ConvertANSIToHTML(out.String())
		if bag != nil {
			result.Output += bag.EmitAllToHTML()
		}
		return result
	}

	if bag != nil {
		bag.EmitAll(out)
	}
	result.Output = out.String()
	if opts.NoColor {
		result.Output = colors.StripANSI(result.Output)
	}
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	io.WriteString(w, result.Output)
	return result
}

// near quotes the first line of the source under the primary label
func near(diag *diagnostics.Diagnostic, content string) string {
	primary := diag.Primary()
	if primary == nil || primary.Location == nil {
		return ""
	}
	text, _, _ := strings.Cut(primary.Location.GetText(content), "\n")
	if text == "" {
		return ""
	}
	return fmt.Sprintf(" at '%s'", text)
}

func loadUnits(opts *Options) ([]unit, error) {
	if opts.Code != "" {
		return []unit{{path: memorySource, content: opts.Code, loaded: true}}, nil
	}

	if len(opts.Paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}

	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	paths, err := fs.CollectFiles(opts.Paths, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to collect sources: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s files found", ext)
	}

	units := make([]unit, len(paths))
	for i, path := range paths {
		units[i].path = path
	}
	return units, nil
}

// analyze runs one independent pipeline per unit, at most jobs at a time.
// Units without content are read from disk first. Results keep input order.
func analyze(ctx context.Context, units []unit, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(units))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range units {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u := &units[i]
			if !u.loaded {
				data, err := os.ReadFile(u.path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", u.path, err)
				}
				u.content = string(data)
			}
			results[i] = FileResult{Path: u.path, Result: pipeline.Analyze(u.content)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func debugDump(w io.Writer, file FileResult) {
	colors.PURPLE.Fprintf(w, "── %s [%s] ──\n", file.Path, file.Result.Phase)
	for _, tok := range file.Result.Tokens {
		tok.Debug(w, file.Path)
	}
	if file.Result.Program != nil {
		colors.BLUE.Fprintln(w, "syntax tree:")
		dumper.Fdump(w, file.Result.Program)
	}
	colors.BLUE.Fprintln(w, "symbols:")
	dumper.Fdump(w, file.Result.Symbols)
}
