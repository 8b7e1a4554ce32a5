package logging

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for building loggers.
type Builder struct {
	level      zerolog.Level
	format     Format
	console    bool
	filePath   string
	maxSizeMB  int
	maxBackups int
	factory    *WriterFactory
}

// NewBuilder creates a new logger builder with console output at info
// level.
func NewBuilder() *Builder {
	return &Builder{
		level:      zerolog.InfoLevel,
		format:     FormatConsole,
		console:    true,
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		factory:    NewWriterFactory(),
	}
}

// WithConfig applies a file configuration to the builder.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.level = ParseLevel(cfg.Level)
	b.format = ParseFormat(cfg.Format)
	b.filePath = cfg.File
	if cfg.MaxSizeMB > 0 {
		b.maxSizeMB = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		b.maxBackups = cfg.MaxBackups
	}
	return b
}

// WithLevel sets the minimum level.
func (b *Builder) WithLevel(level zerolog.Level) *Builder {
	b.level = level
	return b
}

// WithFormat sets the output format.
func (b *Builder) WithFormat(format Format) *Builder {
	b.format = format
	return b
}

// WithConsole enables or disables the stderr writer.
func (b *Builder) WithConsole(enabled bool) *Builder {
	b.console = enabled
	return b
}

// WithFile enables rotating file output at the given path. An empty path
// disables file output.
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = path
	return b
}

// WithRotation sets the rotation policy for file output.
func (b *Builder) WithRotation(maxSizeMB, maxBackups int) *Builder {
	b.maxSizeMB = maxSizeMB
	b.maxBackups = maxBackups
	return b
}

// Build creates the logger instance.
func (b *Builder) Build() (zerolog.Logger, error) {
	if err := b.validate(); err != nil {
		return zerolog.Nop(), err
	}

	var writers []io.Writer
	if b.console {
		writers = append(writers, b.factory.CreateConsoleWriter(b.format))
	}
	if b.filePath != "" {
		writers = append(writers, b.factory.CreateFileWriter(b.filePath, b.maxSizeMB, b.maxBackups, b.format))
	}
	if len(writers) == 0 {
		return zerolog.Nop(), errors.New("no log outputs configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(b.level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

// validate checks the builder configuration.
func (b *Builder) validate() error {
	if b.filePath != "" && b.maxSizeMB <= 0 {
		return fmt.Errorf("max log size must be positive, got %d", b.maxSizeMB)
	}
	return nil
}
