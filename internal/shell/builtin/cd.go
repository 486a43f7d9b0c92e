package builtin

import (
	"fmt"
	"os"
)

// cdBuiltin changes the process's working directory. A bare "~" (and only
// a bare "~", no "~user" or "~/sub/path" expansion) is replaced with
// $HOME before resolution. A missing argument defaults to $HOME.
func cdBuiltin(ctx *Context, args []string) {
	raw := "~"
	if len(args) >= 2 {
		raw = args[1]
	}

	target := raw
	if target == "~" {
		target = os.Getenv("HOME")
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(ctx.Stdout, "cd: %s: No such file or directory\n", raw)
	}
}
