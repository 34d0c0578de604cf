package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/pagekit/cmd/pageexplorer/logger"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	debugMode := false
	pages := 1024

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printUsage()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("pageexplorer %s\n", version)
			os.Exit(0)
		default:
			n, err := strconv.Atoi(filteredArgs[0])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Error: invalid page count %q\n", filteredArgs[0])
				printUsage()
				os.Exit(1)
			}
			pages = n
		}
	}

	logger.Info("starting pageexplorer", "pages", pages, "debug", debugMode)

	m, err := NewModel(pages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: pageexplorer [pages] [--debug]

Interactive buddy-pool visualizer. Opens an in-process pool of the given
page count (default 1024, must be a power of two) and lets you allocate
and free blocks while watching the free lists and the page map.

Keys:
  a        allocate a block of the selected size
  +/-      grow/shrink the next allocation size
  f        free the selected block
  up/down  select an outstanding block
  c        copy the selected block's address
  r        reset the pool
  q        quit`)
}
