package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Format selects how log lines are rendered.
type Format int

const (
	FormatJSON Format = iota
	FormatConsole
	FormatText
)

// String returns the format's config file name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseFormat parses a format name, falling back to console on unknown
// input.
func ParseFormat(formatStr string) Format {
	switch strings.ToLower(formatStr) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// WriterStrategy renders log output for a destination.
type WriterStrategy interface {
	CreateWriter(output io.Writer) io.Writer
}

// JSONWriterStrategy passes zerolog's native JSON lines through unchanged.
type JSONWriterStrategy struct{}

// CreateWriter creates a JSON writer
func (s *JSONWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return output
}

// ConsoleWriterStrategy renders human-readable, optionally colored lines.
type ConsoleWriterStrategy struct {
	NoColor bool
}

// CreateWriter creates a console writer
func (s *ConsoleWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    s.NoColor,
	}
}

// TextWriterStrategy renders console formatting without colors.
type TextWriterStrategy struct{}

// CreateWriter creates a text writer
func (s *TextWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
}

// WriterFactory creates writers based on format
type WriterFactory struct {
	strategies map[Format]WriterStrategy
}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{
		strategies: map[Format]WriterStrategy{
			FormatJSON:    &JSONWriterStrategy{},
			FormatConsole: &ConsoleWriterStrategy{NoColor: false},
			FormatText:    &TextWriterStrategy{},
		},
	}
}

// CreateConsoleWriter creates a stderr writer for the format.
func (wf *WriterFactory) CreateConsoleWriter(format Format) io.Writer {
	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = &ConsoleWriterStrategy{NoColor: false}
	}
	return strategy.CreateWriter(os.Stderr)
}

// CreateFileWriter creates a rotating file writer for the format. Console
// format files are written without colors.
func (wf *WriterFactory) CreateFileWriter(path string, maxSizeMB, maxBackups int, format Format) io.Writer {
	// Best effort; lumberjack surfaces the failure on first write otherwise.
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		LocalTime:  true,
	}

	if format == FormatConsole {
		return (&ConsoleWriterStrategy{NoColor: true}).CreateWriter(rotating)
	}

	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = &JSONWriterStrategy{}
	}
	return strategy.CreateWriter(rotating)
}
