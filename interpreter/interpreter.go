/*
File    : C-Like/interpreter/interpreter.go
*/

// Package interpreter implements CLIKE's tree-walking evaluator: a
// visitor over the semantically-validated AST that drives a
// callstack.CallStack and a line-oriented output sink. Since
// ast.Visitor's VisitX methods return nothing, evaluated expression
// values are threaded through a scratch register (Interpreter.last)
// instead of a return value, and the non-local `return` signal is
// expressed as two scratch fields (returning, retVal) checked after
// every statement and caught only at the Call boundary.
package interpreter

import (
	"fmt"
	"io"

	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/callstack"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
	"github.com/carb0ned0/C-Like/trace"
	"github.com/carb0ned0/C-Like/values"
)

const builtinPrint = "print"

// Interpreter executes a validated *ast.Program. Create one per run
// with New; it is not safe for concurrent use, since the pipeline is
// strictly single-threaded.
type Interpreter struct {
	cs    *callstack.CallStack
	funcs map[string]*ast.FunctionDecl
	out   io.Writer
	trace trace.Trace

	last      values.Value // scratch register: result of the last-evaluated expression
	returning bool         // true while a `return` signal is propagating up to the nearest Call
	retVal    values.Value
	err       error
}

// New creates an Interpreter that writes `print` output to out and
// trace records to tr.
func New(out io.Writer, tr trace.Trace) *Interpreter {
	return &Interpreter{
		cs:    callstack.New(),
		funcs: make(map[string]*ast.FunctionDecl),
		out:   out,
		trace: tr,
	}
}

// Run executes prog: push the global activation record, register
// every function declaration, invoke main, then pop the global
// record.
func (it *Interpreter) Run(prog *ast.Program) error {
	it.err = nil
	for _, fn := range prog.Funcs {
		it.funcs[fn.Name] = fn
	}
	it.funcs[prog.Main.Name] = prog.Main

	global := callstack.NewActivationRecord("global", 1)
	it.cs.Push(global)
	it.trace.Stackf("push %s (level %d)", global.Name, global.Level)

	it.callFunction("main", nil, prog.Main.Position)

	popped := it.cs.Pop()
	it.trace.Stackf("pop %s (level %d)", popped.Name, popped.Level)

	if it.err != nil {
		return it.err
	}
	if it.returning {
		return clikeerr.New(clikeerr.RunStrayReturn, prog.Main.Position, "return signal escaped to program top level")
	}
	return nil
}

// AdoptFrame pushes frame as the interpreter's sole activation record,
// for hosts (the REPL) that manage their own long-lived frame instead
// of going through Run's push-global/invoke-main/pop-global protocol.
func (it *Interpreter) AdoptFrame(frame *callstack.ActivationRecord) {
	it.cs.Push(frame)
}

// ExecStatements runs stmts against the interpreter's current
// activation record (set up via AdoptFrame) and reports the first
// runtime error encountered, if any. A `return` reaching this level is
// reported as RUNTIME_STRAY_RETURN: the REPL has no enclosing Call to
// catch it.
func (it *Interpreter) ExecStatements(stmts []ast.Stmt) error {
	it.err = nil
	it.returning = false
	for _, stmt := range stmts {
		stmt.Accept(it)
		if it.failed() {
			break
		}
	}
	if it.err != nil {
		return it.err
	}
	if it.returning {
		it.returning = false
		return clikeerr.New(clikeerr.RunStrayReturn, token.Position{}, "return is not valid outside a function call")
	}
	return nil
}

func (it *Interpreter) fail(err error) {
	if it.err == nil {
		it.err = err
	}
}

func (it *Interpreter) failed() bool { return it.err != nil || it.returning }

// eval runs e through the visitor and returns the value left in the
// scratch register.
func (it *Interpreter) eval(e ast.Expr) values.Value {
	it.trace.Debugf("eval %T", e)
	e.Accept(it)
	return it.last
}

func (it *Interpreter) VisitProgram(n *ast.Program) {}
func (it *Interpreter) VisitFunctionDecl(n *ast.FunctionDecl) {}

func (it *Interpreter) VisitBlock(n *ast.Block) {
	for _, stmt := range n.Statements {
		it.trace.Debugf("visit %T", stmt)
		stmt.Accept(it)
		if it.failed() {
			return
		}
	}
}

func (it *Interpreter) println(v values.Value) {
	fmt.Fprintln(it.out, v.String())
}
