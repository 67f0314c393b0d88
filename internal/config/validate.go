package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/report"
)

// Validation errors for configuration fields.
var (
	ErrInvalidFormat    = errors.New("unknown format")
	ErrInvalidColor     = errors.New("unknown color mode")
	ErrNegative         = errors.New("must not be negative")
	ErrInvalidExtension = errors.New("invalid extension")
	ErrInvalidPattern   = errors.New("invalid glob pattern")
	ErrInvalidTag       = errors.New("invalid tag")
	ErrNoExtensions     = errors.New("at least one extension is required")
	ErrMixedTags        = errors.New("\"*\" cannot be combined with named tags")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if _, err := report.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, &FieldError{Field: "format", Value: cfg.Format, Err: ErrInvalidFormat})
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, &FieldError{Field: "color", Value: cfg.Color, Err: ErrInvalidColor})
	}

	if cfg.Workers < 0 {
		errs = append(errs, &FieldError{Field: "workers", Value: strconv.Itoa(cfg.Workers), Err: ErrNegative})
	}
	if cfg.MaxFileSize < 0 {
		errs = append(errs, &FieldError{Field: "max_file_size", Value: strconv.FormatInt(cfg.MaxFileSize, 10), Err: ErrNegative})
	}

	if len(cfg.Extensions) == 0 {
		errs = append(errs, &FieldError{Field: "extensions", Err: ErrNoExtensions})
	}
	for _, ext := range cfg.Extensions {
		if strings.TrimSpace(ext) == "" || strings.ContainsAny(ext, `/\`) {
			errs = append(errs, &FieldError{Field: "extensions", Value: ext, Err: ErrInvalidExtension})
		}
	}

	for _, pattern := range cfg.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			errs = append(errs, &FieldError{Field: "exclude", Value: pattern, Err: ErrInvalidPattern})
		}
	}

	for _, tag := range cfg.ParseTags {
		if tag != AllTags && !strings.HasPrefix(tag, "!") {
			errs = append(errs, &FieldError{Field: "parse_tags", Value: tag, Err: ErrInvalidTag})
		}
	}
	if len(cfg.ParseTags) > 1 && containsString(cfg.ParseTags, AllTags) {
		errs = append(errs, &FieldError{Field: "parse_tags", Value: AllTags, Err: ErrMixedTags})
	}

	return errs
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FieldError describes an invalid configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
