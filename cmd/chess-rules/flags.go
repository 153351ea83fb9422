// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	asciiBoard   = flag.Bool("ascii", false, "Draw pieces as letters instead of Unicode glyphs")
	noBoard      = flag.Bool("noboard", false, "Don't draw the board in text reports")
	listMoves    = flag.Bool("moves", false, "List the legal moves of each position")

	// Input options
	fenFile            = flag.String("f", "", "Read FEN positions from this file, one per line")
	stopOnError        = flag.Bool("strict", false, "Stop at the first malformed position")
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")

	// Ending filters
	checkFilter     = flag.Bool("check", false, "Only report positions where the side to move is in check")
	checkmateFilter = flag.Bool("checkmate", false, "Only report checkmated positions")
	stalemateFilter = flag.Bool("stalemate", false, "Only report stalemated positions")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Interactive play
	playMode = flag.Bool("play", false, "Play a two-player game in the terminal")
	startFEN = flag.String("fen", "", "Starting position for -play (default: initial position)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Misc
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Verbose mode (per-position commentary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Parallel processing
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyAnalysisFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Chatty
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ASCII = *asciiBoard
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ListMoves = *listMoves
	cfg.OutputFilename = *outputFile
}

// applyAnalysisFlags configures batch analysis.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.Workers = *workers
	cfg.Analysis.MatchCheck = *checkFilter
	cfg.Analysis.MatchCheckmate = *checkmateFilter
	cfg.Analysis.MatchStalemate = *stalemateFilter
	cfg.Analysis.StopOnError = *stopOnError
	cfg.Analysis.SuppressDuplicates = *suppressDuplicates

	switch {
	case *materialMatchExact != "":
		cfg.Analysis.MaterialPattern = *materialMatchExact
		cfg.Analysis.MaterialExact = true
	case *materialMatch != "":
		cfg.Analysis.MaterialPattern = *materialMatch
	}
}
