// Package parser groups a lexed token sequence into a Pipeline of Commands
// with their attached redirections.
package parser

import "github.com/gyonder/pshell/internal/shell/lexer"

// RedirectionMode is the tagged variant of what a redirection does to a fd.
type RedirectionMode int

const (
	// None means "inherit from parent".
	None RedirectionMode = iota
	Truncate
	Append
)

// FdRedirect is a single redirectable fd's mode and target filename.
type FdRedirect struct {
	Mode     RedirectionMode
	Filename string
}

// Command is the structured form of a single pipeline stage.
type Command struct {
	Name           string
	Argv           []string
	StdoutRedirect FdRedirect
	StderrRedirect FdRedirect
}

// Pipeline is an ordered, non-empty sequence of Commands.
type Pipeline struct {
	Commands []Command
}

// Parse lexes and parses a raw line into a Pipeline. An empty or
// whitespace-only line (or one that lexes to no tokens) yields a nil
// Pipeline — the REPL simply returns to the prompt.
func Parse(line string) *Pipeline {
	tokens := lexer.Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	return ParseTokens(tokens)
}

// ParseTokens partitions tokens at Pipe boundaries and parses each run into
// a Command. A zero-command Pipeline is never returned: if tokens is
// non-empty, the result has at least one (possibly empty-argv) Command.
func ParseTokens(tokens []lexer.Token) *Pipeline {
	var runs [][]lexer.Token
	var current []lexer.Token
	for _, tok := range tokens {
		if tok.Kind == lexer.Pipe {
			runs = append(runs, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	runs = append(runs, current)

	p := &Pipeline{}
	for _, run := range runs {
		p.Commands = append(p.Commands, parseCommand(run))
	}
	return p
}

// HasPipe reports whether tokens contain a top-level pipe boundary. The
// lexer has already resolved quoting by the time this is checked, so a `|`
// typed inside quotes was never turned into a lexer.Pipe token and will
// never be observed here.
func HasPipe(tokens []lexer.Token) bool {
	for _, tok := range tokens {
		if tok.Kind == lexer.Pipe {
			return true
		}
	}
	return false
}

// parseCommand extracts argv and redirections from a single pipeline
// stage's tokens. Later redirections to the same fd overwrite earlier ones.
// A redirection operator with no following Word is silently discarded.
func parseCommand(tokens []lexer.Token) Command {
	var cmd Command

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case lexer.Word:
			cmd.Argv = append(cmd.Argv, tok.Value)

		case lexer.RedirectOut, lexer.RedirectOutAppend:
			if i+1 < len(tokens) && tokens[i+1].Kind == lexer.Word {
				mode := Truncate
				if tok.Kind == lexer.RedirectOutAppend {
					mode = Append
				}
				cmd.StdoutRedirect = FdRedirect{Mode: mode, Filename: tokens[i+1].Value}
				i++
			}

		case lexer.RedirectErr, lexer.RedirectErrAppend:
			if i+1 < len(tokens) && tokens[i+1].Kind == lexer.Word {
				mode := Truncate
				if tok.Kind == lexer.RedirectErrAppend {
					mode = Append
				}
				cmd.StderrRedirect = FdRedirect{Mode: mode, Filename: tokens[i+1].Value}
				i++
			}
		}
	}

	if len(cmd.Argv) > 0 {
		cmd.Name = cmd.Argv[0]
	}
	return cmd
}
