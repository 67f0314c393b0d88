package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/paths"
	"github.com/thoreinstein/yamlint/internal/report"
	"github.com/thoreinstein/yamlint/internal/source"
	"github.com/thoreinstein/yamlint/pkg/fileutil"
)

// EnvPrefix prefixes every environment variable viper consults.
const EnvPrefix = "YAMLINT"

// ConfigDirEnv overrides the per-user configuration directory.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// AllTags is the parse_tags entry that accepts any custom tag.
const AllTags = "*"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the effective lint settings.
type Config struct {
	Format              string   `mapstructure:"format" yaml:"format" toml:"format"`
	ParseTags           []string `mapstructure:"parse_tags" yaml:"parse_tags" toml:"parse_tags"`
	DisplayCorrectFiles bool     `mapstructure:"display_correct_files" yaml:"display_correct_files" toml:"display_correct_files"`
	Extensions          []string `mapstructure:"extensions" yaml:"extensions" toml:"extensions"`
	Exclude             []string `mapstructure:"exclude" yaml:"exclude" toml:"exclude"`
	RespectGitignore    bool     `mapstructure:"respect_gitignore" yaml:"respect_gitignore" toml:"respect_gitignore"`
	Workers             int      `mapstructure:"workers" yaml:"workers" toml:"workers"`
	MaxFileSize         int64    `mapstructure:"max_file_size" yaml:"max_file_size" toml:"max_file_size"`
	Color               string   `mapstructure:"color" yaml:"color" toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:              string(report.FormatText),
		ParseTags:           []string{},
		DisplayCorrectFiles: true,
		Extensions:          append([]string(nil), source.DefaultExtensions...),
		Exclude:             []string{},
		RespectGitignore:    true,
		Workers:             0,
		MaxFileSize:         fileutil.DefaultMaxFileSize,
		Color:               ColorAuto,
	}
}

// CustomTagsEnabled reports whether any custom tag is accepted.
func (c *Config) CustomTagsEnabled() bool {
	return len(c.ParseTags) > 0
}

// AllowedTags returns the restricted tag set, or nil when every tag is
// accepted.
func (c *Config) AllowedTags() []string {
	var tags []string
	for _, t := range c.ParseTags {
		t = strings.TrimSpace(t)
		if t == AllTags {
			return nil
		}
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Init resets Viper and installs defaults, search paths and environment
// bindings. Call this once at application startup before accessing config
// values.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.ConfigName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.UserConfigDir())
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("format", d.Format)
	viper.SetDefault("parse_tags", d.ParseTags)
	viper.SetDefault("display_correct_files", d.DisplayCorrectFiles)
	viper.SetDefault("extensions", d.Extensions)
	viper.SetDefault("exclude", d.Exclude)
	viper.SetDefault("respect_gitignore", d.RespectGitignore)
	viper.SetDefault("workers", d.Workers)
	viper.SetDefault("max_file_size", d.MaxFileSize)
	viper.SetDefault("color", d.Color)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// the defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist):
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		case path != "":
			return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
		}
		// Implicit load without a file uses the defaults.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.Wrap(errors.Mark(errors.New(strings.Join(msgs, "; ")), errors.ErrInvalidConfig), "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the configuration file Load read, or "" when defaults
// were used.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
