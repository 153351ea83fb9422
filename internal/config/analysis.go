package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxWorkers bounds the number of concurrent analyses.
const MaxWorkers = 256

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	// Workers is the number of positions analysed in parallel; 0 means one
	// per CPU.
	Workers int

	// Match conditions; when any is set only matching positions are reported
	MatchCheck     bool
	MatchCheckmate bool
	MatchStalemate bool

	// StopOnError aborts the batch at the first malformed position
	StopOnError bool

	// SuppressDuplicates drops positions already reported earlier in the batch
	SuppressDuplicates bool

	// Material balance to match, such as "QR:qrr"; empty means any
	MaterialPattern string
	MaterialExact   bool
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
// All filters are disabled and the worker count is chosen at run time.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Filtering reports whether any match condition is set.
func (a *AnalysisConfig) Filtering() bool {
	return a.MatchCheck || a.MatchCheckmate || a.MatchStalemate
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 || a.Workers > MaxWorkers {
		return fmt.Errorf("workers %d out of range 0..%d: %w", a.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	return nil
}
