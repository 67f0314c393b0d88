// Package paths resolves the directories yamlint reads configuration from.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory
// compliance. On Linux and macOS the user configuration lives under
// ~/.config/yamlint; a project configuration is a .yamlint.yaml file in the
// working directory:
//
//	paths.UserConfigDir()           // ~/.config/yamlint
//	paths.ProjectConfigFile(".")    // ./.yamlint.yaml
package paths
