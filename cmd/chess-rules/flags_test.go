package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(noBoard, true)()
	defer saveRestoreBool(listMoves, true)()
	defer saveRestoreBool(asciiBoard, false)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat = false; want true")
	}
	if cfg.Output.ShowBoard {
		t.Error("ShowBoard = true; want false with -noboard")
	}
	if !cfg.Output.ListMoves {
		t.Error("ListMoves = false; want true")
	}
	if cfg.Output.ASCII {
		t.Error("ASCII = true; want false")
	}
}

func TestApplyAnalysisFlags(t *testing.T) {
	defer saveRestoreInt(workers, 4)()
	defer saveRestoreBool(checkmateFilter, true)()
	defer saveRestoreBool(stalemateFilter, false)()
	defer saveRestoreBool(checkFilter, false)()
	defer saveRestoreBool(stopOnError, true)()
	defer saveRestoreBool(suppressDuplicates, true)()

	cfg := config.NewConfig()
	applyAnalysisFlags(cfg)

	if cfg.Analysis.Workers != 4 {
		t.Errorf("Workers = %d; want 4", cfg.Analysis.Workers)
	}
	if !cfg.Analysis.MatchCheckmate || cfg.Analysis.MatchStalemate || cfg.Analysis.MatchCheck {
		t.Errorf("filters = %+v; want checkmate only", cfg.Analysis)
	}
	if !cfg.Analysis.StopOnError {
		t.Error("StopOnError = false; want true")
	}
	if !cfg.Analysis.SuppressDuplicates {
		t.Error("SuppressDuplicates = false; want true with -D")
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Summary},
		{"quiet", true, false, config.Quiet},
		{"verbose", false, true, config.Chatty},
		{"quiet wins", true, true, config.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyAnalysisFlags_Material(t *testing.T) {
	tests := []struct {
		name      string
		z, y      string
		wantPat   string
		wantExact bool
	}{
		{"none", "", "", "", false},
		{"minimal", "QR:q", "", "QR:q", false},
		{"exact", "", "KR:k", "KR:k", true},
		{"exact wins", "Q", "KR:k", "KR:k", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(materialMatch, tt.z)()
			defer saveRestoreString(materialMatchExact, tt.y)()

			cfg := config.NewConfig()
			applyAnalysisFlags(cfg)
			if cfg.Analysis.MaterialPattern != tt.wantPat || cfg.Analysis.MaterialExact != tt.wantExact {
				t.Errorf("material = %q exact=%v; want %q exact=%v",
					cfg.Analysis.MaterialPattern, cfg.Analysis.MaterialExact, tt.wantPat, tt.wantExact)
			}
		})
	}
}
