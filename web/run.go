//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/healeycodes/barebones/pkg/barebones"
)

func main() {
	c := make(chan struct{}, 0)
	js.Global().Set("barebones", js.FuncOf(run))
	<-c
}

// run(source) returns the final store as an object of name to value,
// or the error text if the program fails
func run(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: run(source) takes a single argument"
	}
	store, err := barebones.RunProgram("web", args[0].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	result := make(map[string]interface{}, len(store))
	for name, value := range store {
		result[name] = value
	}
	return js.ValueOf(result)
}
