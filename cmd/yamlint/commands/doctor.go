package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/yamlint/internal/config"
	"github.com/thoreinstein/yamlint/internal/doctor"
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/lint"
	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/internal/parser"
)

var (
	doctorJSON   bool
	doctorSilent bool
	doctorAll    bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorSilent, "silent", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show passed and informational checks too")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "silent", "all")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Diagnose the yamlint setup",
	Long: `Run diagnostic checks on the yamlint setup.

Checks that the configuration file loads and validates, that the parser
accepts and rejects known documents, whether the directory is inside a git
work tree (needed by lint --changed) and how output will be rendered.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --silent    No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if !doctorDir(dir) {
		return errors.NewUserError(errors.Newf("%s is not a directory", dir), "Pass an existing directory")
	}
	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	runner := doctor.NewRunner(
		&doctor.ConfigCheck{File: config.FileUsed(), Err: configLoadErr},
		&doctor.ParserCheck{Engine: lint.NewEngine(parser.WithLogger(logger))},
		&doctor.GitCheck{Dir: dir},
		&doctor.TerminalCheck{
			Interactive: logging.IsInteractive(cmd.ErrOrStderr()),
			Color:       useColor(currentConfig().Color, out),
		},
	)
	report := runner.Run()
	logger.Debug("doctor finished", "passed", report.Summary.Passed, "errors", report.Summary.Errors)

	if err := outputDoctorReport(out, report); err != nil {
		return errors.NewSystemError(err, "")
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(nil, errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	switch {
	case doctorSilent:
		return nil
	case doctorJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !doctorAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

// doctorDir reports whether path names an existing directory.
func doctorDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
