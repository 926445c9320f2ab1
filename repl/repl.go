/*
File    : C-Like/repl/repl.go
*/

// Package repl implements CLIKE's interactive shell: a supplemental,
// host-level feature (not part of the core language) that lets a user
// type statements one line at a time against a persistent frame,
// parsing and executing each line's statement sequence against a
// single long-lived activation record instead of a fresh one per line.
// Lines are not run through the semantic analyzer.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/carb0ned0/C-Like/callstack"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/interpreter"
	"github.com/carb0ned0/C-Like/parser"
	"github.com/carb0ned0/C-Like/trace"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive CLIKE session: a banner/prompt pair plus the
// persistent state (the interpreter and its single activation record)
// shared across every line the user types.
type Repl struct {
	Banner  string
	Version string
	Prompt  string

	it    *interpreter.Interpreter
	frame *callstack.ActivationRecord
}

// New creates a Repl whose `print` output goes to out and whose
// diagnostics are routed through tr.
func New(banner, version, prompt string, out io.Writer, tr trace.Trace) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		it:      interpreter.New(out, tr),
		frame:   callstack.NewActivationRecord("repl", 1),
	}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 64)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "CLIKE %s\n", r.Version)
	cyanColor.Fprintf(w, "Type CLIKE statements and press enter. Type '.exit' to quit.\n")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the read-eval-print loop until the user exits or EOF.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	r.it.AdoptFrame(r.frame)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return nil
		}
		rl.SaveHistory(line)
		r.execLine(w, line)
	}
}

func (r *Repl) execLine(w io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	stmts, err := parser.ParseStatements(line)
	if err != nil {
		r.reportError(w, err)
		return
	}
	if err := r.it.ExecStatements(stmts); err != nil {
		r.reportError(w, err)
	}
}

func (r *Repl) reportError(w io.Writer, err error) {
	if ce, ok := err.(*clikeerr.Error); ok {
		redColor.Fprintf(w, "[%s] %s (%s)\n", ce.Kind, ce.Message, ce.Pos)
		return
	}
	redColor.Fprintf(w, "%v\n", err)
}
