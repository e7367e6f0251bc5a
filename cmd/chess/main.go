// chess plays chess in the terminal, against a minimax AI or between two
// people at one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/minimax-chess-go/internal/config"
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
		fmt.Printf("minimax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logCloser := setupLogFile(cfg)
	defer logCloser()

	session := NewSession(cfg, os.Stdin)
	if err := session.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCloser()
		os.Exit(1)
	}
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCloser()
		os.Exit(1)
	}
}

// setupLogFile points the log at the -log file, appending across games.
// It returns a function closing the file.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
	return func() { file.Close() }
}

func usage() {
	fmt.Fprintf(os.Stderr, `minimax-chess - play chess against a minimax AI

Usage: chess [options]

Commands during play:
%s

Options:
`, helpText)
	flag.PrintDefaults()
}
