// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Summary = 1 // position counts
	Chatty  = 2 // per-position commentary
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=running commentary

	// Grouped settings
	Output   OutputConfig
	Analysis AnalysisConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     *NewOutputConfig(),
		Analysis:   *NewAnalysisConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream reports are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Chatty {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w", c.Verbosity, Quiet, Chatty, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	return c.Analysis.Validate()
}

// Logger returns a logger writing to LogFile.
func (c *Config) Logger() *log.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "chess-rules: ", 0)
}

// Logf logs a message when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level {
		return
	}
	c.Logger().Printf(format, args...)
}
