package builtin

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// historyBuiltin prints, reads, or writes the command history.
//
//	history        print the full history, 1-indexed
//	history N      print only the last N entries, index preserved
//	history -r F   read F into the in-memory history
//	history -w F   write the in-memory history to F
func historyBuiltin(ctx *Context, args []string) {
	flags := pflag.NewFlagSet("history", pflag.ContinueOnError)
	flags.SetOutput(ctx.Stderr)
	readFile := flags.StringP("read", "r", "", "read history from file")
	writeFile := flags.StringP("write", "w", "", "write history to file")

	if err := flags.Parse(args[1:]); err != nil {
		return
	}

	if *readFile != "" {
		if err := ctx.History.ReadFile(*readFile); err != nil {
			fmt.Fprintf(ctx.Stderr, "history: %s: %v\n", *readFile, err)
		}
		return
	}
	if *writeFile != "" {
		if err := ctx.History.WriteFile(*writeFile); err != nil {
			fmt.Fprintf(ctx.Stderr, "history: %s: %v\n", *writeFile, err)
		}
		return
	}

	total := len(ctx.History.All())
	n := 0
	if rest := flags.Args(); len(rest) > 0 {
		if parsed, err := strconv.Atoi(rest[0]); err == nil && parsed > 0 {
			n = parsed
		}
	}

	entries := ctx.History.Last(n)
	start := total - len(entries)
	for i, entry := range entries {
		fmt.Fprintf(ctx.Stdout, "%5d  %s\n", start+i+1, entry)
	}
}
