package builtin

import (
	"fmt"

	"github.com/gyonder/pshell/internal/shell/path"
)

// typeBuiltin reports whether its one argument names a shell built-in, an
// executable found on PATH, or neither. Built-in status is checked first,
// matching real shells: a PATH entry named "echo" never shadows the
// built-in of the same name.
func typeBuiltin(ctx *Context, args []string) {
	if len(args) < 2 {
		return
	}
	name := args[1]

	if ctx.Registry.Has(name) {
		fmt.Fprintf(ctx.Stdout, "%s is a shell builtin\n", name)
		return
	}
	if p, ok := path.Find(name); ok {
		fmt.Fprintf(ctx.Stdout, "%s is %s\n", name, p)
		return
	}
	fmt.Fprintf(ctx.Stdout, "%s: not found\n", name)
}
