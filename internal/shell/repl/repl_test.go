package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gyonder/pshell/internal/shell/builtin"
	"github.com/gyonder/pshell/internal/shell/history"
	"github.com/gyonder/pshell/internal/shell/pexec"
	"github.com/stretchr/testify/assert"
)

func newTestShell() (*Shell, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	h := history.New()
	s := &Shell{
		runner:  pexec.NewRunner(builtin.NewRegistry(), h),
		history: h,
		stdin:   strings.NewReader(""),
		stdout:  &out,
		stderr:  &errOut,
	}
	return s, &out, &errOut
}

func TestDispatch_RunsBuiltin(t *testing.T) {
	s, out, _ := newTestShell()
	s.dispatch("echo hello there")
	assert.Equal(t, "hello there\n", out.String())
}

func TestDispatch_EmptyLineIsNoop(t *testing.T) {
	s, out, errOut := newTestShell()
	s.dispatch("   ")
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestDispatch_PipelineRoutesThroughPipelineExecutor(t *testing.T) {
	s, out, _ := newTestShell()
	s.dispatch(`echo piped | cat`)
	assert.Equal(t, "piped\n", out.String())
}

func TestDiagnosticWriter_ColorDisabledWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	d := diagnosticWriter{w: &buf, color: false}
	n, err := d.Write([]byte("pipe: too many open files"))
	assert.NoError(t, err)
	assert.Equal(t, len("pipe: too many open files"), n)
	assert.Equal(t, "pipe: too many open files\n", buf.String())
}

func TestDiagnosticWriter_ColorEnabledStylesText(t *testing.T) {
	var buf bytes.Buffer
	d := diagnosticWriter{w: &buf, color: true}
	_, err := d.Write([]byte("pipe: too many open files"))
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "pipe: too many open files")
	assert.NotEqual(t, "pipe: too many open files\n", buf.String())
}
