// Package console provides leveled, optionally colored console output.
//
// A Console is an explicitly constructed, caller-owned value passed to
// whatever needs it; the package deliberately exposes no global
// instance. Output below the configured level is suppressed.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Level controls which messages a Console emits.
type Level int

const (
	// LevelQuiet suppresses everything except Print output.
	LevelQuiet Level = iota

	// LevelError emits errors only.
	LevelError

	// LevelWarn emits errors and warnings.
	LevelWarn

	// LevelInfo emits errors, warnings, and informational messages.
	LevelInfo

	// LevelDebug emits everything.
	LevelDebug
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelQuiet:
		return "quiet"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to its Level. Unknown names report an
// error and default to LevelInfo.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "quiet":
		return LevelQuiet, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelInfo, fmt.Errorf("unknown console level %q", name)
	}
}

// BusyFunc is invoked before long-running operations so callers can
// surface progress (spinner, status line). It receives a short
// description of the work.
type BusyFunc func(message string)

// styles holds the per-level render styles.
type styles struct {
	err   lipgloss.Style
	warn  lipgloss.Style
	info  lipgloss.Style
	debug lipgloss.Style
}

func colorStyles() styles {
	return styles{
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		info:  lipgloss.NewStyle(),
		debug: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func plainStyles() styles {
	return styles{
		err:   lipgloss.NewStyle(),
		warn:  lipgloss.NewStyle(),
		info:  lipgloss.NewStyle(),
		debug: lipgloss.NewStyle(),
	}
}

// Console writes leveled messages to a writer.
type Console struct {
	out    io.Writer
	level  Level
	styles styles
	busy   BusyFunc
}

// Option configures a Console during creation.
type Option func(*Console)

// WithLevel sets the output level.
func WithLevel(level Level) Option {
	return func(c *Console) {
		c.level = level
	}
}

// WithColor forces colored output on or off. Without this option the
// Console colors only when the writer is a terminal.
func WithColor(on bool) Option {
	return func(c *Console) {
		if on {
			c.styles = colorStyles()
		} else {
			c.styles = plainStyles()
		}
	}
}

// WithBusyFunc installs the busy callback.
func WithBusyFunc(fn BusyFunc) Option {
	return func(c *Console) {
		c.busy = fn
	}
}

// New creates a Console writing to out at LevelInfo. Color defaults to
// on when out is a terminal.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:    out,
		level:  LevelInfo,
		styles: plainStyles(),
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.styles = colorStyles()
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetLevel changes the output level.
func (c *Console) SetLevel(level Level) {
	c.level = level
}

// Level returns the current output level.
func (c *Console) Level() Level {
	return c.level
}

// Errorf writes an error message.
func (c *Console) Errorf(format string, args ...any) {
	c.emit(LevelError, c.styles.err, "error: ", format, args...)
}

// Warnf writes a warning message.
func (c *Console) Warnf(format string, args ...any) {
	c.emit(LevelWarn, c.styles.warn, "warning: ", format, args...)
}

// Infof writes an informational message.
func (c *Console) Infof(format string, args ...any) {
	c.emit(LevelInfo, c.styles.info, "", format, args...)
}

// Debugf writes a debug message.
func (c *Console) Debugf(format string, args ...any) {
	c.emit(LevelDebug, c.styles.debug, "debug: ", format, args...)
}

// Printf writes unconditionally, regardless of level. Used for primary
// program output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Busy reports the start of a long-running operation through the busy
// callback, if one is installed.
func (c *Console) Busy(message string) {
	if c.busy != nil {
		c.busy(message)
	}
}

func (c *Console) emit(level Level, style lipgloss.Style, prefix, format string, args ...any) {
	if c.level < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, style.Render(prefix+msg))
}
