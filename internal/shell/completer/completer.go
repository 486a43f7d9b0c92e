// Package completer implements tab completion for the line editor: command
// names only, offered at the start of a line.
package completer

import (
	"sort"
	"strings"

	"github.com/gyonder/pshell/internal/shell/path"
)

// builtinWhitelist is the subset of built-ins offered for completion. The
// shell has six built-ins total; only the ones worth completing from a
// bare prompt are listed here.
var builtinWhitelist = []string{"echo", "exit"}

// Completer implements readline.AutoCompleter, restricted to the first
// word of the line: arguments are never completed.
type Completer struct{}

// New returns a Completer.
func New() *Completer {
	return &Completer{}
}

// Do implements readline.AutoCompleter. It only offers candidates while
// pos is within the line's first word; anywhere else it returns no
// completions.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}

	matches := candidates(prefix)
	result := make([][]rune, len(matches))
	for i, m := range matches {
		result[i] = []rune(m[len(prefix):])
	}
	return result, len(prefix)
}

// candidates returns every completion candidate for prefix, sorted and
// deduplicated.
func candidates(prefix string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if !strings.HasPrefix(name, prefix) || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, name := range builtinWhitelist {
		add(name)
	}
	for _, name := range path.ListAll() {
		add(name)
	}

	sort.Strings(out)
	return out
}
