// Command pshell is a minimal interactive shell: a lexer/parser, six
// built-ins, and pipelines and redirections dispatched to forked
// processes.
package main

import (
	"fmt"
	"os"

	"github.com/gyonder/pshell/internal/config"
	"github.com/gyonder/pshell/internal/shell/builtin"
	"github.com/gyonder/pshell/internal/shell/history"
	"github.com/gyonder/pshell/internal/shell/repl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pshell: %v\n", err)
		os.Exit(1)
	}

	if dir, err := config.Dir(); err == nil {
		os.MkdirAll(dir, 0700)
	}

	if path, err := config.Path(); err == nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			if err := config.Save(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "pshell: failed to write default config: %v\n", err)
			}
		}
	}

	h := history.New()
	h.SetLimit(cfg.HistorySize)
	if err := h.ReadFile(cfg.HistoryFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "pshell: failed to load history: %v\n", err)
	}

	registry := builtin.NewRegistry()

	sh, err := repl.New(cfg, registry, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pshell: failed to start: %v\n", err)
		os.Exit(1)
	}

	sh.Run()

	if err := h.WriteFile(cfg.HistoryFile); err != nil {
		fmt.Fprintf(os.Stderr, "pshell: failed to save history: %v\n", err)
	}
}
