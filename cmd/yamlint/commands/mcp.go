package commands

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/yamlint/cmd"
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/internal/mcpserver"
	"github.com/thoreinstein/yamlint/internal/source"
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running yamlint as a Model Context Protocol server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio)",
	Long: `Start the yamlint MCP server on stdin/stdout.

The server offers two tools: lint_yaml validates a YAML document passed
inline and lint_path validates a file or directory. Both use the loaded
configuration for extensions, excludes and custom tags. Logs go to stderr.`,
	Example: `  # Register with an MCP client
  yamlint mcp serve

See Also: yamlint lint`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		logger := logging.FromContext(c.Context())
		cfg := currentConfig()

		s := mcpserver.New(mcpserver.Options{
			Name:    "yamlint",
			Version: cmd.Version,
			Collector: source.NewCollector(source.Options{
				Extensions:       cfg.Extensions,
				Exclude:          cfg.Exclude,
				RespectGitignore: cfg.RespectGitignore,
				MaxFileSize:      cfg.MaxFileSize,
				Logger:           logger,
			}),
			Workers:   cfg.Workers,
			ParseTags: cfg.ParseTags,
			Logger:    logger,
		})

		logger.Info("serving MCP on stdio")
		if err := server.ServeStdio(s); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "serving MCP"), "")
		}
		return nil
	},
}
