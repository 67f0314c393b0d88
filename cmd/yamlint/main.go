// Package main is the entry point for the yamlint CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/yamlint/cmd/yamlint/commands"
	"github.com/thoreinstein/yamlint/internal/errors"
)

func main() {
	os.Exit(run(os.Stderr))
}

func run(stderr io.Writer) int {
	err := commands.Execute()
	if err == nil {
		return errors.ExitSuccess
	}
	return report(stderr, err)
}

// report prints err and returns the exit code it carries. Errors without an
// explicit code are treated as usage errors.
func report(w io.Writer, err error) int {
	code := errors.ExitUser
	suggestion := ""

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Silent() {
			return exitErr.Code
		}
		code = exitErr.Code
		suggestion = exitErr.Suggestion
		err = exitErr.Err
	}

	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
	if suggestion != "" {
		fmt.Fprintf(w, "  %s\n", suggestion)
	}
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "  %s\n", hint)
	}
	return code
}
