package report

import (
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/lint"
)

// Format names an output format.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "txt"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON}

// Formatter renders a batch of results.
type Formatter interface {
	Format(results []lint.Result, summary lint.Summary) (string, error)
}

// Options configures formatter construction.
type Options struct {
	// DisplayCorrectFiles emits an OK line for each valid result.
	DisplayCorrectFiles bool

	// Color enables ANSI styling in text output.
	Color bool
}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownFormat, "%q (expected txt or json)", name)
}

// New returns the formatter for format.
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatText:
		return NewText(opts), nil
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q", string(format))
	}
}
