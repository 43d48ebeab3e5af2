// Package main provides the CLI entrypoint for form-binder.
//
// form-binder works on YAML form definitions:
//   - check reports definition problems with suggestions
//   - view renders the view model of a form
//   - submit binds a JSON or urlencoded payload and prints the hydrated object
//   - schema exports the JSON Schema of the values a form accepts
package main

import (
	"context"
	"fmt"
	"os"

	"form-binder/cmd/form-binder/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
