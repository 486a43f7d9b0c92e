package builtin

import (
	"fmt"
	"strings"
)

// echoBuiltin writes its arguments separated by single spaces, followed by
// a newline. There is no -n flag and no backslash escape processing: the
// lexer has already resolved quoting before echo ever sees argv.
func echoBuiltin(ctx *Context, args []string) {
	fmt.Fprintln(ctx.Stdout, strings.Join(args[1:], " "))
}
