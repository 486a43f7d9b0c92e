package builtin

import (
	"fmt"
	"os"
)

// pwdBuiltin prints the process's current working directory.
func pwdBuiltin(ctx *Context, args []string) {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "pwd: %v\n", err)
		return
	}
	fmt.Fprintln(ctx.Stdout, dir)
}
