package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"minilang/colors"
	"minilang/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource stores content under filepath, replacing any previous content
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = source.SplitLines(content)
}

// GetLine retrieves a specific line from a cached source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		return "", fmt.Errorf("no source cached for %s", filepath)
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	// EOF after a final newline sits on an empty line past the last one
	if line == len(lines)+1 {
		return "", nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache               *SourceCache
	writer              io.Writer // Where to write output (os.Stdout, string builder, etc.)
	highlighter         *SyntaxHighlighter
	currentLineNumWidth int // Line number width for current diagnostic
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer, cache *SourceCache) *Emitter {
	if cache == nil {
		cache = NewSourceCache()
	}
	return &Emitter{
		cache:       cache,
		writer:      w,
		highlighter: NewSyntaxHighlighter(),
	}
}

// calculateLineNumWidthForDiagnostic calculates the gutter width needed for every line shown
func (e *Emitter) calculateLineNumWidthForDiagnostic(diag *Diagnostic) int {
	maxLine := 0
	for _, label := range diag.Labels {
		if label.Location == nil || label.Location.Start == nil {
			continue
		}
		if label.Location.Start.Line > maxLine {
			maxLine = label.Location.Start.Line
		}
	}
	if maxLine == 0 {
		return 1
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.currentLineNumWidth = e.calculateLineNumWidthForDiagnostic(diag)

	e.printHeader(diag)

	if primary := diag.Primary(); primary != nil && primary.Location != nil && primary.Location.Start != nil {
		start := primary.Location.Start
		colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", e.currentLineNumWidth), diag.FilePath, start.Line, start.Column)
		fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth))
		colors.GREY.Fprintln(e.writer, " |")
	}

	// primary first, then secondaries in the order they were attached
	for _, label := range diag.Labels {
		e.printLabel(diag.FilePath, label)
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	colors.BOLD_RED.Fprint(e.writer, "error")
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	colors.BOLD_WHITE.Fprintln(e.writer, diag.Error())
}

func (e *Emitter) printLabel(filepath string, label Label) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	// Previous non-empty line gives context for the primary label
	if label.Style == Primary && start.Line > 1 {
		prevLine, err := e.cache.GetLine(filepath, start.Line-1)
		if err == nil && strings.TrimSpace(prevLine) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.currentLineNumWidth, start.Line-1)
			colors.GREY.Fprintln(e.writer, prevLine)
		}
	}

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, e.currentLineNumWidth, start.Line)
	e.highlighter.HighlightWithColor(sourceLine, e.writer)
	fmt.Fprintln(e.writer)

	length := end.Column - start.Column
	if end.Line != start.Line {
		// underline up to the end of the first line only
		length = len([]rune(sourceLine)) + 1 - start.Column
	}
	if length <= 0 {
		length = 1
	}

	underlineColor := colors.RED
	underlineChar := "^"
	if label.Style == Secondary {
		underlineColor = colors.BLUE
		underlineChar = "-"
	} else if length > 1 {
		underlineChar = "~"
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, underlinePadding(sourceLine, start.Column))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}

// underlinePadding reproduces the whitespace before column so the marker
// lines up even when the source line contains tabs.
func underlinePadding(line string, column int) string {
	var b strings.Builder
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	for i := len([]rune(line)); i < column-1; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth))
	colors.CYAN.Fprint(e.writer, " = note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.currentLineNumWidth))
	colors.GREEN.Fprint(e.writer, " = help: ")
	fmt.Fprintln(e.writer, help)
}
