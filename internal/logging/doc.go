// Package logging provides structured logging for the yamlint CLI using slog.
//
// Logs always go to stderr so that lint reports on stdout stay machine
// readable. Text output is colorized on terminals; JSON output is available
// for CI systems.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Debug("validated", "file", "config.yaml", "valid", true)
//
// Use [ForTest] to route log output through the testing framework and
// [NewDiscard] to silence it.
package logging
