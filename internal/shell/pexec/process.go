// Package pexec dispatches parsed commands: built-ins run in-process, and
// everything else is resolved against PATH and forked via os/exec, single
// commands and multi-stage pipelines alike.
package pexec

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/gyonder/pshell/internal/shell/builtin"
	"github.com/gyonder/pshell/internal/shell/history"
	"github.com/gyonder/pshell/internal/shell/parser"
	"github.com/gyonder/pshell/internal/shell/path"
	"github.com/gyonder/pshell/internal/shell/redirect"
)

// Runner dispatches a single parsed Pipeline to its built-in or external
// destinations.
type Runner struct {
	Registry *builtin.Registry
	History  *history.History
}

// NewRunner returns a Runner wired to registry and h.
func NewRunner(registry *builtin.Registry, h *history.History) *Runner {
	return &Runner{Registry: registry, History: h}
}

// RunCommand dispatches a single, non-piped command: to the built-in
// registry if its name is registered there, otherwise to PATH resolution
// and a forked child. Redirections named on cmd are honored in both cases.
func (r *Runner) RunCommand(cmd parser.Command, stdin io.Reader, stdout, stderr io.Writer) {
	if len(cmd.Argv) == 0 {
		return
	}

	if h, ok := r.Registry.Lookup(cmd.Name); ok {
		defaults := redirect.Binding{Stdout: stdout, Stderr: stderr}
		bound, restore := redirect.Install(defaults, cmd.StdoutRedirect, cmd.StderrRedirect, stderr)
		defer restore()

		h(&builtin.Context{
			Stdout:   bound.Stdout,
			Stderr:   bound.Stderr,
			History:  r.History,
			Registry: r.Registry,
			Exit:     os.Exit,
		}, cmd.Argv)
		return
	}

	r.runExternal(cmd, stdin, stdout, stderr)
}

func (r *Runner) runExternal(cmd parser.Command, stdin io.Reader, stdout, stderr io.Writer) {
	resolved, ok := path.Find(cmd.Name)
	if !ok {
		fmt.Fprintf(stdout, "%s: command not found\n", cmd.Name)
		return
	}

	defaults := redirect.Binding{Stdout: stdout, Stderr: stderr}
	bound, restore := redirect.Install(defaults, cmd.StdoutRedirect, cmd.StderrRedirect, stderr)
	defer restore()

	c := exec.Command(resolved, cmd.Argv[1:]...)
	c.Args = cmd.Argv
	c.Stdin = stdin
	c.Stdout = bound.Stdout
	c.Stderr = bound.Stderr

	if err := c.Run(); err != nil {
		if _, isExit := err.(*exec.ExitError); !isExit {
			fmt.Fprintf(stderr, "%s: %v\n", cmd.Name, err)
		}
	}
}
