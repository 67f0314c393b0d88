// Package errors provides error handling conventions for the yamlint CLI.
//
// The package re-exports the wrapping helpers of [github.com/cockroachdb/errors]
// so call sites only import one errors package, and defines an [ExitError]
// type carrying the process exit code.
//
// # Exit Codes
//
//   - ExitSuccess (0): every linted source is valid
//   - ExitUser (1): at least one source is invalid, or the invocation is wrong
//   - ExitSystem (2): an I/O or environment failure prevented linting
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. A nil Err means the command already reported the failure
// (for example through a lint report) and main should exit silently:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
