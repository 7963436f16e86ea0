//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"minilang/colors"
	"minilang/internal/compiler"
)

const version = "0.1.0"

func main() {
	// Define flags
	debug := flag.Bool("d", false, "Print tokens, syntax tree and symbol table")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Print tokens, syntax tree and symbol table")
	flag.BoolVar(showVersion, "version", false, "Show version")
	ext := flag.String("ext", compiler.DefaultExtension, "Extension of the files collected from directories")
	jobs := flag.Int("j", runtime.GOMAXPROCS(0), "Max files analyzed concurrently")
	html := flag.Bool("html", false, "Render diagnostics as HTML")
	noColor := flag.Bool("no-color", false, "Print the report without ANSI colors")

	flag.Parse()

	// Handle version
	if *showVersion {
		colors.PURPLE.Printf("minilang analyzer version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, colors.BOLD_WHITE.Sprint("Usage:"), "minilang [options] <file|dir>...")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	format := compiler.ANSI
	if *html {
		format = compiler.HTML
	}

	result := compiler.Compile(&compiler.Options{
		Paths:     args,
		Extension: *ext,
		Jobs:      *jobs,
		Debug:     *debug,
		LogFormat: format,
		NoColor:   *noColor,
		Writer:    os.Stdout,
	})

	if format == compiler.HTML {
		fmt.Println(result.Output)
	}

	// Exit code
	if !result.Success {
		os.Exit(1)
	}
}
