// Package redirect opens redirection targets and installs/restores them,
// both for in-process built-ins (by swapping io.Writer references) and for
// forked external commands (by setting exec.Cmd's Stdout/Stderr).
package redirect

import (
	"fmt"
	"io"
	"os"

	"github.com/gyonder/pshell/internal/shell/parser"
)

const filePerm = 0644

// Open opens r's target file with the mode it specifies. A None-mode
// redirect is a no-op: it returns nil, nil. On open failure it writes a
// diagnostic to diag and returns a nil file with a nil error — the caller
// proceeds without the redirection installed, per the shell's documented
// looser policy on redirect failure.
func Open(r parser.FdRedirect, diag io.Writer) (*os.File, error) {
	if r.Mode == parser.None {
		return nil, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if r.Mode == parser.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(r.Filename, flags, filePerm)
	if err != nil {
		fmt.Fprintf(diag, "%s: %v\n", r.Filename, err)
		return nil, nil
	}
	return f, nil
}

// Binding is an in-process fd's current writer, installed over the course
// of a single built-in invocation.
type Binding struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Install opens stdoutR and stderrR (if set) and returns a Binding with
// those writers substituted in place of the defaults, plus a restore
// function. Restore is safe to call unconditionally (e.g. via defer) and
// closes any files this call opened.
func Install(defaults Binding, stdoutR, stderrR parser.FdRedirect, diag io.Writer) (Binding, func()) {
	b := defaults
	var opened []*os.File

	if f, _ := Open(stdoutR, diag); f != nil {
		b.Stdout = f
		opened = append(opened, f)
	}
	if f, _ := Open(stderrR, diag); f != nil {
		b.Stderr = f
		opened = append(opened, f)
	}

	restore := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	return b, restore
}
