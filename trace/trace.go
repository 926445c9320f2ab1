/*
File    : C-Like/trace/trace.go
*/

// Package trace implements CLIKE's diagnostic trace channels: debug,
// scope, and stack, each independently switchable from the command
// line, behind one Trace interface with one colorized implementation
// per destination, colorized with fatih/color and gated on terminal
// detection with mattn/go-isatty.
package trace

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Trace is the sink the analyzer and interpreter write diagnostics to.
// A disabled channel is a no-op inside the implementation, so call
// sites never branch on whether tracing is active.
type Trace interface {
	// Debugf logs an interpreter trace line (one per executed block
	// statement and per evaluated expression).
	Debugf(format string, args ...interface{})
	// Scopef logs a symbol-table trace line (a function scope's symbols
	// on scope exit).
	Scopef(format string, args ...interface{})
	// Stackf logs an activation-record trace line (call push/pop).
	Stackf(format string, args ...interface{})
}

// NopTrace discards every call on every channel.
type NopTrace struct{}

func (NopTrace) Debugf(string, ...interface{}) {}
func (NopTrace) Scopef(string, ...interface{}) {}
func (NopTrace) Stackf(string, ...interface{}) {}

// WriterTrace writes each enabled channel to w, colorized when w is a
// terminal. Channels default to disabled; set the Debug/Scope/Stack
// fields to enable them individually, mirroring the --debug/--scope/
// --stack flags of cmd/clike.
type WriterTrace struct {
	w     io.Writer
	Debug bool
	Scope bool
	Stack bool

	debugColor *color.Color
	scopeColor *color.Color
	stackColor *color.Color
}

// NewWriterTrace wraps w for colorized output. When w is an *os.File,
// it is routed through go-colorable (so color codes render on Windows
// consoles too) and color is disabled entirely when it is not a
// terminal.
func NewWriterTrace(w io.Writer) *WriterTrace {
	out := w
	noColor := false
	if f, ok := w.(*os.File); ok {
		out = colorable.NewColorable(f)
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	debugColor := color.New(color.FgCyan)
	scopeColor := color.New(color.FgYellow)
	stackColor := color.New(color.FgMagenta)
	if noColor {
		debugColor.DisableColor()
		scopeColor.DisableColor()
		stackColor.DisableColor()
	}
	return &WriterTrace{w: out, debugColor: debugColor, scopeColor: scopeColor, stackColor: stackColor}
}

func (t *WriterTrace) Debugf(format string, args ...interface{}) {
	if !t.Debug {
		return
	}
	t.debugColor.Fprintf(t.w, "[debug] "+format+"\n", args...)
}

func (t *WriterTrace) Scopef(format string, args ...interface{}) {
	if !t.Scope {
		return
	}
	t.scopeColor.Fprintf(t.w, "[scope] "+format+"\n", args...)
}

func (t *WriterTrace) Stackf(format string, args ...interface{}) {
	if !t.Stack {
		return
	}
	t.stackColor.Fprintf(t.w, "[stack] "+format+"\n", args...)
}
