// Package mcpserver exposes the lint engine as Model Context Protocol tools.
package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/internal/source"
)

// Options configures the MCP server.
type Options struct {
	Name    string
	Version string

	// Collector resolves lint_path arguments. Nil uses a collector with
	// default options.
	Collector *source.Collector

	// Workers bounds lint_path concurrency.
	Workers int

	// ParseTags is the tag policy applied when a call omits parse_tags, in
	// the same form as the parse_tags setting.
	ParseTags []string

	Logger *slog.Logger
}

// New creates an MCP server with the lint_yaml and lint_path tools
// registered.
func New(opts Options) *server.MCPServer {
	opts = opts.withDefaults()

	s := server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, &handlers{opts: opts})

	return s
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = "yamlint"
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.Logger == nil {
		o.Logger = logging.NewDiscard()
	}
	if o.Collector == nil {
		o.Collector = source.NewCollector(source.Options{Logger: o.Logger})
	}
	return o
}
