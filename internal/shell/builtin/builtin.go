// Package builtin holds the shell's built-in command handlers: a
// process-wide, read-only-after-init registry populated once at startup,
// mirroring the original prototype's populate-once, name-keyed dispatch
// table.
package builtin

import (
	"io"
	"os"

	"github.com/gyonder/pshell/internal/shell/history"
)

// Context is what a built-in receives on each invocation: the current I/O
// bindings (already redirected by the caller, if applicable), the shared
// command history, and the registry itself (so "type" can recognize other
// built-ins by name).
type Context struct {
	Stdout    io.Writer
	Stderr    io.Writer
	History   *history.History
	Registry  *Registry
	// Exit terminates the shell process with the given status. Tests
	// substitute a non-terminating stand-in; production code leaves this
	// as os.Exit.
	Exit func(code int)
}

// Handler is the side-effecting capability a built-in name is bound to.
// Handlers never fail the shell: they report problems by writing a
// diagnostic through ctx, never by way of a returned error.
type Handler func(ctx *Context, args []string)

// Registry is a name -> Handler map, populated once at startup and read
// thereafter without locking, since nothing mutates it after Registry is
// built.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns a Registry with all shell built-ins registered.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.register("exit", exitBuiltin)
	r.register("echo", echoBuiltin)
	r.register("type", typeBuiltin)
	r.register("pwd", pwdBuiltin)
	r.register("cd", cdBuiltin)
	r.register("history", historyBuiltin)
	return r
}

func (r *Registry) register(name string, h Handler) {
	r.handlers[name] = h
}

// Lookup returns the handler for name, if any.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Has reports whether name is a registered built-in.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// NewContext returns a Context with default I/O and a real os.Exit.
func NewContext(registry *Registry, h *history.History) *Context {
	return &Context{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		History:  h,
		Registry: registry,
		Exit:     os.Exit,
	}
}
