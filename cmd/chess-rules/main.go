// chess-rules checks chess positions for check, checkmate and stalemate,
// and runs two-player games in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *playMode {
		os.Exit(runPlayMode(cfg))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	positions, err := collectPositions(flag.Args(), *fenFile, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	matched, failed, err := analyzeAndReport(ctx, cfg, positions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg.Logf(config.Summary, "%d position(s) reported out of %d, %d malformed.", matched, len(positions), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// runPlayMode starts an interactive game and returns the exit code.
func runPlayMode(cfg *config.Config) int {
	g := game.New()
	if *startFEN != "" {
		var err error
		g, err = game.NewFromFEN(*startFEN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	cfg.Logf(config.Chatty, "game %s started", g.ID)
	if err := runGame(g, os.Stdin, cfg.OutputFile, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg.Logf(config.Chatty, "game %s finished: %s", g.ID, g.Outcome())
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [FEN...]\n")
	fmt.Fprintf(os.Stderr, "       chess-rules -play [-fen FEN]\n\n")
	fmt.Fprintf(os.Stderr, "Reports check, checkmate, stalemate and legal moves for chess positions.\n")
	fmt.Fprintf(os.Stderr, "Positions are read from the arguments, from -f, or from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands in -play mode:\n")
	fmt.Fprintf(os.Stderr, "  e2 e4   Move the piece on e2 to e4 (also e2e4, e2-e4)\n")
	fmt.Fprintf(os.Stderr, "  moves   List the legal moves\n")
	fmt.Fprintf(os.Stderr, "  draw    Offer a draw, or accept the opponent's offer\n")
	fmt.Fprintf(os.Stderr, "  resign  Give up the game\n")
	fmt.Fprintf(os.Stderr, "  quit    Leave without a result\n")
}
