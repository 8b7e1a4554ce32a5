// Package logging builds zerolog loggers for discordhook applications, with
// console output and rotating file output via lumberjack. The discordhook
// library itself takes any injected zerolog.Logger; this package is for
// programs that want a ready-made one.
package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// Default log settings
const (
	DefaultLevel      = "info"
	DefaultFormat     = "console"
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 3
)

// Config defines logging configuration, loadable from a config file.
type Config struct {
	Level      string `json:"level,omitempty" yaml:"level,omitempty"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"` // json, console or text
	File       string `json:"file,omitempty" yaml:"file,omitempty"`     // empty disables file output
	MaxSizeMB  int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
}

// NewDefaultConfig creates the default logging configuration: info level,
// console output, no file.
func NewDefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
	}
}

// New creates a zerolog logger from the configuration.
func New(cfg Config) (zerolog.Logger, error) {
	return NewBuilder().WithConfig(cfg).Build()
}

// ParseLevel parses a level name, falling back to info on unknown input.
func ParseLevel(levelStr string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
