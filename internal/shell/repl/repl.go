// Package repl drives the interactive read-eval-print loop: reading lines
// with the line editor, lexing and parsing them, and dispatching the
// result to the built-in registry or the process executor.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gyonder/pshell/internal/config"
	"github.com/gyonder/pshell/internal/shell/builtin"
	"github.com/gyonder/pshell/internal/shell/completer"
	"github.com/gyonder/pshell/internal/shell/history"
	"github.com/gyonder/pshell/internal/shell/lexer"
	"github.com/gyonder/pshell/internal/shell/parser"
	"github.com/gyonder/pshell/internal/shell/pexec"
	"github.com/gyonder/pshell/internal/ui"
)

// prompt is the shell's sole prompt string. It carries no trailing
// newline and is never styled: only diagnostics get color.
const prompt = "$ "

// Shell is the interactive REPL.
type Shell struct {
	rl      *readline.Instance
	runner  *pexec.Runner
	history *history.History
	color   bool

	stdin          io.Reader
	stdout, stderr io.Writer
}

// New builds a Shell backed by cfg's history file, registry, and h.
func New(cfg *config.Config, registry *builtin.Registry, h *history.History) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer.New(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		rl:      rl,
		runner:  pexec.NewRunner(registry, h),
		history: h,
		color:   cfg.ColorDiagnostics,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

// Run executes the read-eval-print loop until EOF (Ctrl+D). It returns
// normally only on EOF; the "exit" built-in ends the process directly.
func (s *Shell) Run() {
	defer s.rl.Close()

	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}

		if line != "" {
			s.history.Append(line)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		s.dispatch(line)
	}
}

func (s *Shell) dispatch(line string) {
	tokens := lexer.Tokenize(line)
	if len(tokens) == 0 {
		return
	}

	pipeline := parser.ParseTokens(tokens)
	diag := diagnosticWriter{w: s.stderr, color: s.color}

	if parser.HasPipe(tokens) {
		s.runner.RunPipeline(pipeline, s.stdin, s.stdout, s.stderr, diag)
		return
	}
	s.runner.RunCommand(pipeline.Commands[0], s.stdin, s.stdout, s.stderr)
}

// diagnosticWriter writes REPL-level diagnostics (pipe setup failures),
// styled with ui.WarningStyle when color is enabled. It never wraps a
// built-in's or external command's own stdout/stderr output.
type diagnosticWriter struct {
	w     io.Writer
	color bool
}

func (d diagnosticWriter) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	if d.color {
		text = ui.WarningStyle.Render(text)
	}
	if _, err := fmt.Fprintln(d.w, text); err != nil {
		return 0, err
	}
	return len(p), nil
}
