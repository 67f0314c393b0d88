package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/lint"
	"github.com/thoreinstein/yamlint/internal/parser"
)

const parseTagsDescription = `Custom tag policy: empty uses the server default, "*" accepts any tag, "none" rejects all, otherwise a comma-separated tag list such as "!env,!ref"`

func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcplib.NewTool("lint_yaml",
			mcplib.WithDescription("Validate the syntax of a YAML document and report the first error with its line"),
			mcplib.WithString("content",
				mcplib.Required(),
				mcplib.Description("YAML text to validate"),
			),
			mcplib.WithString("name", mcplib.Description("File name to report the result under")),
			mcplib.WithString("parse_tags", mcplib.Description(parseTagsDescription)),
		),
		h.lintYAML,
	)

	s.AddTool(
		mcplib.NewTool("lint_path",
			mcplib.WithDescription("Validate a YAML file, or every YAML file under a directory"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("File or directory path"),
			),
			mcplib.WithString("parse_tags", mcplib.Description(parseTagsDescription)),
		),
		h.lintPath,
	)
}

// report is the JSON body both tools return.
type report struct {
	Valid   bool          `json:"valid"`
	Summary lint.Summary  `json:"summary"`
	Results []lint.Result `json:"results"`
}

type handlers struct {
	opts Options
}

func (h *handlers) lintYAML(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	enabled, allowed := h.tagPolicy(request.GetString("parse_tags", ""))
	engine := lint.NewEngine(parser.WithAllowedTags(allowed...), parser.WithLogger(h.opts.Logger))

	res := engine.Validate(content, request.GetString("name", ""), enabled)
	return jsonResult([]lint.Result{res})
}

func (h *handlers) lintPath(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sources, err := h.opts.Collector.Collect([]string{path})
	if err != nil {
		return errorResult(fmt.Sprintf("collecting %s: %v", path, err)), nil
	}

	enabled, allowed := h.tagPolicy(request.GetString("parse_tags", ""))
	runner := &lint.Runner{
		Workers: h.opts.Workers,
		NewEngine: func() *lint.Engine {
			return lint.NewEngine(parser.WithAllowedTags(allowed...), parser.WithLogger(h.opts.Logger))
		},
		Logger: h.opts.Logger,
	}

	results, err := runner.Run(ctx, sources, enabled)
	if err != nil {
		return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
	}
	return jsonResult(results)
}

// tagPolicy resolves a parse_tags argument into the adapter flag and the
// allowed tag set.
func (h *handlers) tagPolicy(arg string) (bool, []string) {
	tags := h.opts.ParseTags
	switch arg = strings.TrimSpace(arg); arg {
	case "":
	case "none":
		return false, nil
	default:
		tags = strings.Split(arg, ",")
	}

	var allowed []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "*" {
			return true, nil
		}
		if t != "" {
			allowed = append(allowed, t)
		}
	}
	return len(allowed) > 0, allowed
}

func jsonResult(results []lint.Result) (*mcplib.CallToolResult, error) {
	summary, code := lint.Summarize(results)
	if results == nil {
		results = []lint.Result{}
	}

	data, err := json.MarshalIndent(report{Valid: code == 0, Summary: summary, Results: results}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling result")
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
