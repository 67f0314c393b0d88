package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user configuration directory.
const AppName = "yamlint"

// ConfigName is the base name of a configuration file, without extension.
const ConfigName = ".yamlint"

// ConfigFileName is the file written by config init.
const ConfigFileName = ConfigName + ".yaml"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config directory (~/.config on Linux and macOS).
func ConfigHome() string {
	return xdg.ConfigHome
}

// UserConfigDir returns the per-user yamlint configuration directory.
func UserConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// UserConfigFile returns the path config init --global writes to.
func UserConfigFile() string {
	return filepath.Join(UserConfigDir(), ConfigFileName)
}

// ProjectConfigFile returns the configuration file path inside dir.
func ProjectConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}
