package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/yamlint/internal/config"
	"github.com/thoreinstein/yamlint/internal/errors"
	"github.com/thoreinstein/yamlint/internal/logging"
	"github.com/thoreinstein/yamlint/internal/paths"
	"github.com/thoreinstein/yamlint/pkg/fileutil"
)

var (
	configOutput string
	configForce  bool
	configGlobal bool
)

func init() {
	configShowCmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "output format: yaml, toml")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing configuration file")
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "write the per-user configuration instead of ./"+paths.ConfigFileName)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create yamlint configuration",
	Long: `Inspect and create yamlint configuration.

Settings are read from ./.yamlint.yaml, then from
$XDG_CONFIG_HOME/yamlint/.yamlint.yaml, and may be overridden with
YAMLINT_* environment variables (for example YAMLINT_FORMAT=json).

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  yamlint config

  # Write a starter file in the current directory
  yamlint config init

See Also: yamlint lint`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the configuration yamlint will use, after defaults, files and environment are merged.`,
	Example: `  # As YAML
  yamlint config show

  # As TOML
  yamlint config show --output toml

See Also: yamlint config init`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file containing the default settings.

The file is written atomically. An existing file is only replaced when
--force is given.`,
	Example: `  # Project configuration
  yamlint config init

  # Per-user configuration
  yamlint config init --global

See Also: yamlint config show`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()

	var (
		data []byte
		err  error
	)
	switch configOutput {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.NewUserError(errors.Newf("unknown output %q", configOutput), "Use --output yaml or --output toml")
	}
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "encoding configuration"), "")
	}

	if file := config.FileUsed(); file != "" {
		logging.FromContext(cmd.Context()).Info("configuration file", "path", file)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := paths.ProjectConfigFile(".")
	if configGlobal {
		path = paths.UserConfigFile()
		if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating configuration directory"), "")
		}
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.NewUserError(errors.Newf("%s already exists", path), "Use --force to overwrite it")
	}

	if err := fileutil.AtomicWriteYAML(path, config.Default(), 0o644); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing configuration"), "Check the directory is writable")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
