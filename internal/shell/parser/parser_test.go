package parser_test

import (
	"testing"

	"github.com/gyonder/pshell/internal/shell/lexer"
	"github.com/gyonder/pshell/internal/shell/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleCommand(t *testing.T) {
	p := parser.Parse("echo hello world")
	require.NotNil(t, p)
	require.Len(t, p.Commands, 1)
	cmd := p.Commands[0]
	assert.Equal(t, "echo", cmd.Name)
	assert.Equal(t, []string{"echo", "hello", "world"}, cmd.Argv)
	assert.Equal(t, parser.None, cmd.StdoutRedirect.Mode)
}

func TestParse_EmptyLine(t *testing.T) {
	assert.Nil(t, parser.Parse(""))
	assert.Nil(t, parser.Parse("   "))
}

func TestParse_OutputRedirectTruncate(t *testing.T) {
	p := parser.Parse("ls /nonexistent > out.txt")
	require.Len(t, p.Commands, 1)
	cmd := p.Commands[0]
	assert.Equal(t, []string{"ls", "/nonexistent"}, cmd.Argv)
	assert.Equal(t, parser.FdRedirect{Mode: parser.Truncate, Filename: "out.txt"}, cmd.StdoutRedirect)
}

func TestParse_StderrRedirectAppend(t *testing.T) {
	p := parser.Parse("ls /nonexistent 2>> err.txt")
	cmd := p.Commands[0]
	assert.Equal(t, parser.FdRedirect{Mode: parser.Append, Filename: "err.txt"}, cmd.StderrRedirect)
}

func TestParse_LastRedirectionWins(t *testing.T) {
	p := parser.Parse("echo hi > a.txt > b.txt")
	cmd := p.Commands[0]
	assert.Equal(t, "b.txt", cmd.StdoutRedirect.Filename)
}

func TestParse_DanglingRedirectionDiscarded(t *testing.T) {
	p := parser.Parse("echo hi >")
	cmd := p.Commands[0]
	assert.Equal(t, []string{"echo", "hi"}, cmd.Argv)
	assert.Equal(t, parser.None, cmd.StdoutRedirect.Mode)
}

func TestParse_RedirectionOnlyNoArgsIsEmptyCommand(t *testing.T) {
	p := parser.Parse("> out.txt")
	cmd := p.Commands[0]
	assert.Empty(t, cmd.Name)
	assert.Empty(t, cmd.Argv)
	assert.Equal(t, "out.txt", cmd.StdoutRedirect.Filename)
}

func TestParse_NoRedirectionOperatorLeaksIntoArgv(t *testing.T) {
	p := parser.Parse("echo a > out.txt b")
	cmd := p.Commands[0]
	for _, w := range cmd.Argv {
		assert.NotEqual(t, ">", w)
	}
}

func TestParse_Pipeline(t *testing.T) {
	p := parser.Parse("echo foo | tr o 0")
	require.Len(t, p.Commands, 2)
	assert.Equal(t, "echo", p.Commands[0].Name)
	assert.Equal(t, "tr", p.Commands[1].Name)
	assert.Equal(t, []string{"tr", "o", "0"}, p.Commands[1].Argv)
}

func TestParse_PipeInsideQuotesIsNotAPipelineBoundary(t *testing.T) {
	p := parser.Parse(`echo "a|b"`)
	require.Len(t, p.Commands, 1)
	assert.Equal(t, []string{"echo", "a|b"}, p.Commands[0].Argv)
}

func TestHasPipe(t *testing.T) {
	assert.True(t, parser.HasPipe(lexer.Tokenize("a | b")))
	assert.False(t, parser.HasPipe(lexer.Tokenize(`echo "a|b"`)))
}
