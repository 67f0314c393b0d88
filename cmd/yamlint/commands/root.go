// Package commands implements the CLI commands for yamlint.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/yamlint/cmd"
	"github.com/thoreinstein/yamlint/internal/config"
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
)

// debugEnv raises the log level when -v is not given.
const debugEnv = "YAMLINT_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error log output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a configuration file (default: .yamlint.yaml, then $XDG_CONFIG_HOME/yamlint)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("yamlint version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUserError(err, "Run '"+c.CommandPath()+" --help' for usage")
	})
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "yamlint",
	Short: "Validate YAML syntax",
	Long: `yamlint checks that YAML files parse cleanly.

It reports the first syntax error of each file with its line number,
treats deprecated YAML 1.1 constructs as errors, and exits non-zero when
any file fails. Output is human-readable text or JSON.`,
	Example: `  # Lint every YAML file under the current directory
  yamlint lint .

  # Lint standard input
  cat deploy.yaml | yamlint lint

  # Machine-readable output
  yamlint lint --format json config/

  See Also: yamlint config, yamlint doctor, yamlint mcp`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces configuration load errors for commands that need it.
func checkConfig(cmd *cobra.Command) error {
	// Skip validation for help and version commands, and for config init
	// so a broken file can be replaced, and for doctor which reports it.
	switch cmd.Name() {
	case "help", "version", "init", "doctor":
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if file := config.FileUsed(); file != "" {
		logging.FromContext(cmd.Context()).Debug("loaded configuration", "file", file)
	}
	return nil
}

// currentConfig returns a copy of the loaded configuration, or the defaults.
func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	c := *loadedConfig
	return &c
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
