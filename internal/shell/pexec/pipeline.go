package pexec

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gyonder/pshell/internal/shell/parser"
)

// RunPipeline runs every stage of p concurrently, connecting each adjacent
// pair with an os.Pipe. A single-command Pipeline is dispatched directly
// through RunCommand without creating any pipe. If any pipe fails to open,
// the whole pipeline is aborted with a diagnostic on diag and no stage is
// started.
func (r *Runner) RunPipeline(p *parser.Pipeline, stdin io.Reader, stdout, stderr, diag io.Writer) {
	n := len(p.Commands)
	if n == 0 {
		return
	}
	if n == 1 {
		r.RunCommand(p.Commands[0], stdin, stdout, stderr)
		return
	}

	readers := make([]*os.File, n-1)
	writers := make([]*os.File, n-1)
	for i := 0; i < n-1; i++ {
		pr, pw, err := os.Pipe()
		if err != nil {
			fmt.Fprintf(diag, "pipe: %v\n", err)
			for j := 0; j < i; j++ {
				readers[j].Close()
				writers[j].Close()
			}
			return
		}
		readers[i] = pr
		writers[i] = pw
	}

	var wg sync.WaitGroup
	for i, cmd := range p.Commands {
		var in io.Reader = stdin
		if i > 0 {
			in = readers[i-1]
		}
		var out io.Writer = stdout
		if i < n-1 {
			out = writers[i]
		}

		cmd := cmd
		if i < n-1 {
			// Only the last stage's own stdout redirection takes effect; an
			// earlier stage's stdout always feeds the next stage's pipe.
			cmd.StdoutRedirect = parser.FdRedirect{}
		}

		wg.Add(1)
		go func(i int, cmd parser.Command, in io.Reader, out io.Writer) {
			defer wg.Done()
			r.RunCommand(cmd, in, out, stderr)
			if i < n-1 {
				writers[i].Close()
			}
			if i > 0 {
				readers[i-1].Close()
			}
		}(i, cmd, in, out)
	}
	wg.Wait()
}
