// Package script embeds a Lua interpreter and exposes the scanner as
// the "ts" module, so extraction pipelines can be written as scripts
// instead of Go code.
//
// Scanner operations that fail for expected reasons (no match, end of
// buffer, unbalanced delimiters) return nil plus a message to Lua so
// scripts can branch on the outcome. Misuse, such as a wrong argument
// type, raises a Lua error.
package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textscan/internal/scan"
)

// Runner executes Lua scripts against a scanner.
type Runner struct {
	state   *lua.LState
	scanner *scan.Scanner
}

// Option configures a Runner.
type Option func(*lua.Options)

// WithStackSize sets the Lua call stack size.
func WithStackSize(size int) Option {
	return func(o *lua.Options) {
		o.CallStackSize = size
	}
}

// New creates a runner bound to the given scanner.
func New(scanner *scan.Scanner, opts ...Option) *Runner {
	luaOpts := lua.Options{}
	for _, opt := range opts {
		opt(&luaOpts)
	}

	L := lua.NewState(luaOpts)
	r := &Runner{state: L, scanner: scanner}
	r.register()
	return r
}

// Scanner returns the scanner the runner is bound to.
func (r *Runner) Scanner() *scan.Scanner {
	return r.scanner
}

// RunString executes Lua source code.
func (r *Runner) RunString(src string) error {
	if err := r.state.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile executes a Lua script file.
func (r *Runner) RunFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	if err := r.state.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

// Global returns the string value of a Lua global, or "" if it is not
// set or not a string.
func (r *Runner) Global(name string) string {
	v := r.state.GetGlobal(name)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.state.Close()
}
