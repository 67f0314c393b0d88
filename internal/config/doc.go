// Package config loads yamlint settings with Viper.
//
// Settings come from, in increasing precedence: built-in defaults, a
// .yamlint.yaml file (searched in the working directory, then in
// $XDG_CONFIG_HOME/yamlint), YAMLINT_* environment variables, and finally
// command-line flags applied by the caller. A file may look like:
//
//	format: txt
//	parse_tags: ["!env", "!ref"]
//	display_correct_files: true
//	extensions: [.yaml, .yml]
//	exclude: [vendor, "*.gen.yaml"]
//	respect_gitignore: true
//	workers: 0
//	max_file_size: 1048576
//	color: auto
//
// parse_tags enables custom tags. A list restricts them to the named tags
// and the single entry "*" accepts any tag.
//
// Loaded configurations are validated; [Validate] reports every violation
// rather than stopping at the first.
package config
