package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/yamlint/internal/config"
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/lint"
	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/internal/parser"
	"github.com/thoreinstein/yamlint/internal/progress"
	"github.com/thoreinstein/yamlint/internal/report"
	"github.com/thoreinstein/yamlint/internal/source"
)

// stdinArg selects standard input explicitly.
const stdinArg = "-"

var (
	formatFlag      string
	parseTagsFlag   []string
	errorsOnlyFlag  bool
	excludeFlag     []string
	noGitignoreFlag bool
	changedFlag     bool
	workersFlag     int
	progressFlag    bool
	colorFlag       string
)

func init() {
	f := lintCmd.Flags()
	f.StringVar(&formatFlag, "format", "txt", "output format: txt, json")
	f.StringSliceVar(&parseTagsFlag, "parse-tags", nil,
		"allow custom tags; bare flag allows any, --parse-tags=!env,!ref restricts the set")
	f.Lookup("parse-tags").NoOptDefVal = config.AllTags
	f.BoolVar(&errorsOnlyFlag, "errors-only", false, "only report files that contain errors")
	f.StringSliceVar(&excludeFlag, "exclude", nil, "glob patterns of file or directory names to skip")
	f.BoolVar(&noGitignoreFlag, "no-gitignore", false, "do not apply .gitignore rules when walking directories")
	f.BoolVar(&changedFlag, "changed", false, "lint only files git reports as changed under the path")
	f.IntVar(&workersFlag, "workers", 0, "number of files validated in parallel (default: number of CPUs)")
	f.BoolVar(&progressFlag, "progress", false, "show a progress bar on an interactive terminal")
	f.StringVar(&colorFlag, "color", config.ColorAuto, "colorize text output: auto, always, never")

	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint [path...]",
	Short: "Validate YAML files",
	Long: `Validate the syntax of YAML files.

Each path may be a file, which is linted regardless of its extension, or a
directory, which is walked recursively for .yaml and .yml files. With no
path, or with "-", a single stream is read from standard input.

Deprecated YAML 1.1 forms such as 0755 octals and unquoted yes/no values
are reported as errors. Custom tags are rejected unless --parse-tags is
given.

Exit status is 0 when every file is valid, 1 when any file is invalid or
the invocation is wrong, and 2 on system errors.`,
	Example: `  # Lint a directory
  yamlint lint config/

  # Lint from a pipe, only printing failures
  kubectl get cm -o yaml | yamlint lint --errors-only

  # Allow !Ref and !Sub tags
  yamlint lint --parse-tags='!Ref,!Sub' template.yaml

  # Lint the YAML files changed in the current git work tree
  yamlint lint --changed

  See Also: yamlint config show`,
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	cfg := lintConfig(cmd)
	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return errors.NewUserError(
			errors.Newf("invalid settings: %s", strings.Join(msgs, "; ")),
			"Run 'yamlint lint --help' for valid values")
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return errors.NewUserError(err, "Use --format txt or --format json")
	}

	collector := source.NewCollector(source.Options{
		Extensions:       cfg.Extensions,
		Exclude:          cfg.Exclude,
		RespectGitignore: cfg.RespectGitignore,
		MaxFileSize:      cfg.MaxFileSize,
		Logger:           logger,
	})

	sources, err := collectSources(cmd, collector, args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		logger.Warn("no YAML files found", "paths", args)
	}

	pm := progress.New(cmd.ErrOrStderr(), progressFlag && format == report.FormatText, logging.IsInteractive(cmd.ErrOrStderr()))
	allowed := cfg.AllowedTags()
	runner := &lint.Runner{
		Workers: cfg.Workers,
		NewEngine: func() *lint.Engine {
			return lint.NewEngine(parser.WithAllowedTags(allowed...), parser.WithLogger(logger))
		},
		Progress: pm,
		Logger:   logger,
	}

	results, err := runner.Run(cmd.Context(), sources, cfg.CustomTagsEnabled())
	pm.Close()
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "linting"), "")
	}

	summary, code := lint.Summarize(results)
	logger.Info("lint finished", "total", summary.Total, "errored", summary.Errored)

	formatter, err := report.New(format, report.Options{
		DisplayCorrectFiles: cfg.DisplayCorrectFiles,
		Color:               useColor(cfg.Color, cmd.OutOrStdout()),
	})
	if err != nil {
		return errors.NewUserError(err, "Use --format txt or --format json")
	}

	out, err := formatter.Format(results, summary)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if code != errors.ExitSuccess {
		// The report already describes every failure.
		return errors.NewExitError(nil, code)
	}
	return nil
}

// lintConfig layers explicitly set flags over the loaded configuration.
func lintConfig(cmd *cobra.Command) *config.Config {
	cfg := currentConfig()
	f := cmd.Flags()

	if f.Changed("format") {
		cfg.Format = formatFlag
	}
	if f.Changed("parse-tags") {
		cfg.ParseTags = parseTagsFlag
		// Presence of the flag enables custom tags even with an empty value.
		if len(cfg.ParseTags) == 0 {
			cfg.ParseTags = []string{config.AllTags}
		}
	}
	if f.Changed("errors-only") {
		cfg.DisplayCorrectFiles = !errorsOnlyFlag
	}
	if f.Changed("exclude") {
		cfg.Exclude = append(append([]string(nil), cfg.Exclude...), excludeFlag...)
	}
	if f.Changed("no-gitignore") {
		cfg.RespectGitignore = !noGitignoreFlag
	}
	if f.Changed("workers") {
		cfg.Workers = workersFlag
	}
	if f.Changed("color") {
		cfg.Color = colorFlag
	}
	return cfg
}

func collectSources(cmd *cobra.Command, c *source.Collector, args []string) ([]source.Source, error) {
	if changedFlag {
		return collectChanged(c, args)
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == stdinArg) {
		src, err := c.ReadStdin(cmd.InOrStdin())
		if err != nil {
			return nil, errors.NewSystemError(err, "")
		}
		return []source.Source{src}, nil
	}

	for _, a := range args {
		if a == stdinArg {
			return nil, errors.NewUserError(errors.New(`"-" cannot be combined with other paths`), "Lint standard input on its own")
		}
	}

	sources, err := c.Collect(args)
	if err != nil {
		if errors.Is(err, source.ErrPathNotFound) {
			return nil, errors.NewUserError(err, "Check that the path exists")
		}
		return nil, errors.NewSystemError(err, "")
	}
	return sources, nil
}

func collectChanged(c *source.Collector, args []string) ([]source.Source, error) {
	if len(args) > 1 {
		return nil, errors.NewUserError(errors.New("--changed accepts at most one path"), "Pass the repository or a directory inside it")
	}
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	files, err := source.ChangedFiles(root)
	if err != nil {
		return nil, errors.NewUserError(err, "--changed must run inside a git work tree")
	}
	return c.Read(c.Filter(files)), nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return logging.SupportsColor(w)
	}
}
