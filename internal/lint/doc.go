// Package lint validates YAML sources and aggregates the outcome.
//
// An Engine turns one source into exactly one Result. A Runner fans a batch
// of sources out to a fixed number of workers, each owning its own Engine,
// and returns the Results in input order. Summarize reduces a batch of
// Results to counts and the process exit code.
package lint
