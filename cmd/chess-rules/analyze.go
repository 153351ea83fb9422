package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// collectPositions gathers FEN strings from the command line, a file, or
// stdin, in that order of preference.
func collectPositions(args []string, filename string, stdin io.Reader) ([]string, error) {
	var positions []string
	for _, arg := range args {
		if fen := strings.TrimSpace(arg); fen != "" {
			positions = append(positions, fen)
		}
	}

	if filename != "" {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", filename, err)
		}
		defer file.Close()

		fromFile, err := readPositions(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
		positions = append(positions, fromFile...)
	}

	if len(args) == 0 && filename == "" {
		return readPositions(stdin)
	}
	return positions, nil
}

// readPositions reads one FEN per line, skipping blank lines and lines
// starting with '#'.
func readPositions(r io.Reader) ([]string, error) {
	var positions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		positions = append(positions, line)
	}
	return positions, scanner.Err()
}

// analyzePositions builds a report for every position. Each position is
// parsed onto its own board, so positions can be analysed in parallel.
// Malformed positions yield error reports unless StopOnError is set.
func analyzePositions(ctx context.Context, cfg *config.Config, positions []string) ([]*output.PositionReport, error) {
	return worker.Map(ctx, cfg.Analysis.Workers, positions, func(_ context.Context, i int, fen string) (*output.PositionReport, error) {
		index := i + 1
		board, toMove, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			if cfg.Analysis.StopOnError {
				return nil, fmt.Errorf("position %d: %w", index, err)
			}
			return output.NewErrorReport(index, fen, err), nil
		}

		report, err := output.NewPositionReport(index, board, toMove, cfg.Output.ListMoves)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", index, err)
		}
		return report, nil
	})
}

// matchesFilters reports whether the report passes the configured filters.
// A position must match one of the status filters, if any are set, and the
// material pattern, if one is set. Error reports always pass so that
// malformed input is visible.
func matchesFilters(cfg *config.Config, material *matching.MaterialMatcher, r *output.PositionReport) bool {
	if r.Failed() {
		return true
	}
	if material != nil && !material.MatchPosition(r.Board()) {
		return false
	}

	a := cfg.Analysis
	if !a.Filtering() {
		return true
	}
	return (a.MatchCheck && r.InCheck) ||
		(a.MatchCheckmate && r.Checkmate) ||
		(a.MatchStalemate && r.Stalemate)
}

// analyzeAndReport analyses the positions and writes the matching reports
// in input order. It returns the number of reports written and the number
// of malformed positions. With duplicate suppression only the first
// occurrence of a position is reported.
func analyzeAndReport(ctx context.Context, cfg *config.Config, positions []string) (matched, failed int, err error) {
	var material *matching.MaterialMatcher
	if cfg.Analysis.MaterialPattern != "" {
		if material, err = matching.NewMaterialMatcher(cfg.Analysis.MaterialPattern, cfg.Analysis.MaterialExact); err != nil {
			return 0, 0, fmt.Errorf("material pattern: %w", err)
		}
	}

	reports, err := analyzePositions(ctx, cfg, positions)
	if err != nil {
		return 0, 0, err
	}

	var detector *hashing.DuplicateDetector
	if cfg.Analysis.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector()
	}

	writer := output.NewReportWriter(cfg.OutputFile, cfg)
	for _, r := range reports {
		if r.Failed() {
			failed++
			cfg.Logf(config.Summary, "position %d: %s", r.Index, r.Error)
		}
		if !matchesFilters(cfg, material, r) {
			continue
		}
		if detector != nil && !r.Failed() {
			if first, dup := detector.CheckAndAdd(r.Board(), r.Side(), r.Index); dup {
				cfg.Logf(config.Chatty, "position %d duplicates position %d", r.Index, first)
				continue
			}
		}
		cfg.Logf(config.Chatty, "position %d: %s", r.Index, r.Status)
		if err := writer.WriteReport(r); err != nil {
			return matched, failed, err
		}
		matched++
	}
	if detector != nil {
		cfg.Logf(config.Summary, "%d duplicate position(s) suppressed.", detector.DuplicateCount())
	}
	return matched, failed, writer.Close()
}
