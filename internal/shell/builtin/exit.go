package builtin

import (
	"fmt"
	"strconv"
)

// exitBuiltin terminates the shell process. With no argument the exit
// status is 0. A single numeric argument becomes the exit status; a
// non-numeric argument is reported and treated as status 1.
func exitBuiltin(ctx *Context, args []string) {
	if len(args) < 2 {
		ctx.Exit(0)
		return
	}

	code, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "exit: %s: numeric argument required\n", args[1])
		ctx.Exit(1)
		return
	}
	ctx.Exit(code)
}
