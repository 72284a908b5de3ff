// Package config loads ptdb configuration from defaults, a YAML file,
// PTDB_ environment variables and command-line flags.
package config

import (
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/internal/source"
)

// Config holds all ptdb configuration options.
type Config struct {
	Source   source.Config `koanf:"source"`
	LogLevel slog.Level    `koanf:"log_level"`
	Output   string        `koanf:"output"`
	Verbose  bool          `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultSourceType = "sqlite"
	DefaultLogLevel   = "warn"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Output modes accepted by the output key.
var OutputModes = []string{"auto", "text", "json", "markdown"}

// FileNames are the config files searched in the working directory.
var FileNames = []string{"ptdb.yaml", "ptdb.yml"}

// EnvPrefix prefixes environment overrides. A double underscore nests:
// PTDB_SOURCE__TYPE sets source.type.
const EnvPrefix = "PTDB_"

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Source:   source.Config{Type: DefaultSourceType},
		LogLevel: slog.LevelWarn,
		Output:   DefaultOutput,
	}
}
