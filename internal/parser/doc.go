// Package parser validates YAML streams on top of gopkg.in/yaml.v3.
//
// [Parser] decodes every document of a stream, enforces the custom tag
// policy and reports YAML 1.1 constructs through a [WarningHandler].
// [Adapter] is the linting entry point: it installs a scoped handler for
// the duration of one [Adapter.ValidateDocument] call so that deprecation
// warnings fail the document, and restores the previous handler afterward.
//
// Neither type is safe for concurrent use. Give each goroutine its own
// Adapter.
package parser
