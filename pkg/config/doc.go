// Package config handles configuration management for textplot.
// Settings are layered from embedded defaults, a user TOML or YAML file and
// TEXTPLOT_ environment variables; command-line flags are applied on top by
// the CLI.
package config
