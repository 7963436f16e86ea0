//go:build js && wasm

package main

import (
	"syscall/js"

	"minilang/internal/compiler"
)

func main() {
	js.Global().Set("minilangAnalyze", js.FuncOf(analyze))
	js.Global().Set("minilangWasmVersion", "0.1.0")
	println("minilang analyzer ready")
	<-make(chan struct{})
}

// analyze(code: string, debug: bool) -> {success, output, outcome, message}
func analyze(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, debug: bool)",
		}
	}

	result := compiler.Compile(&compiler.Options{
		Code:      args[0].String(),
		Debug:     args[1].Bool(),
		LogFormat: compiler.HTML,
	})

	outcome, message := "", ""
	if len(result.Files) == 1 {
		analysis := result.Files[0].Result
		outcome = analysis.Outcome.String()
		if err := analysis.Err(); err != nil {
			message = err.Error()
		}
	}

	return map[string]any{
		"success": result.Success,
		"output":  result.Output,
		"outcome": outcome,
		"message": message,
	}
}
