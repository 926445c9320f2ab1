/*
File    : C-Like/sema/analyzer.go
*/

// Package sema implements CLIKE's semantic analyzer: a single visitor
// pass over the parsed AST that populates the symtab and enforces
// CLIKE's static checks (duplicate/unresolved identifiers,
// argument-count mismatch, the one static type rule, and the missing
// `main` check).
package sema

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/symtab"
	"github.com/carb0ned0/C-Like/trace"
)

// Analyzer walks a *ast.Program, failing fast on the first violation
// encountered: every error terminates the pass immediately.
type Analyzer struct {
	global  *symtab.Scope
	current *symtab.Scope
	trace   trace.Trace
	err     error
}

// New creates an Analyzer that reports trace records on tr (use
// trace.NopTrace{} to disable tracing entirely).
func New(tr trace.Trace) *Analyzer {
	return &Analyzer{trace: tr}
}

// Analyze runs the full pass and returns the first error encountered,
// or nil if prog is well-formed.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	a.global = symtab.NewScope("global", nil)
	a.current = a.global
	a.err = nil

	prog.Accept(a)
	return a.err
}

// fail records the first error seen; once set, every subsequent visit
// method becomes a no-op (ast.Visitor has no error return, so the
// cursor is carried on the Analyzer itself).
func (a *Analyzer) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *Analyzer) failed() bool { return a.err != nil }

func (a *Analyzer) VisitProgram(n *ast.Program) {
	all := n.Funcs
	if n.Main != nil {
		all = append(append([]*ast.FunctionDecl{}, n.Funcs...), n.Main)
	}
	for _, fn := range all {
		sym := &symtab.FuncSymbol{Name: fn.Name, RetType: fn.RetType, Params: fn.Params}
		if err := a.global.Insert(sym, fn.Position); err != nil {
			a.fail(err)
			return
		}
	}
	if n.Main == nil {
		a.fail(clikeerr.New(clikeerr.SemMissingMain, n.Position, "no function named 'main' with return type int and zero parameters"))
		return
	}
	if n.Main.RetType != ast.INT || len(n.Main.Params) != 0 {
		a.fail(clikeerr.New(clikeerr.SemMissingMain, n.Main.Position, "'main' must return int and take zero parameters"))
		return
	}

	for _, fn := range n.Funcs {
		fn.Accept(a)
		if a.failed() {
			return
		}
	}
	n.Main.Accept(a)
}

func (a *Analyzer) VisitFunctionDecl(n *ast.FunctionDecl) {
	fnScope := symtab.NewScope(n.Name, a.global)
	a.current = fnScope
	for _, p := range n.Params {
		sym := &symtab.VarSymbol{Name: p.Name, Type: p.Type, IsArray: p.IsArray}
		if err := fnScope.Insert(sym, p.Position); err != nil {
			a.fail(err)
			return
		}
	}
	n.Body.Accept(a)
	a.trace.Scopef("exit scope %q (level %d): %s", fnScope.Name, fnScope.Level, symtab.Describe(fnScope))
	a.current = a.global
}

func (a *Analyzer) VisitBlock(n *ast.Block) {
	for _, stmt := range n.Statements {
		stmt.Accept(a)
		if a.failed() {
			return
		}
	}
}

func (a *Analyzer) VisitVarDecl(n *ast.VarDecl) {
	sym := &symtab.VarSymbol{Name: n.Name, Type: n.Type}
	if err := a.current.Insert(sym, n.Position); err != nil {
		a.fail(err)
		return
	}
	if n.Init == nil {
		return
	}
	n.Init.Accept(a)
	if a.failed() {
		return
	}
	rhsType := a.typeOf(n.Init)
	if n.Type == ast.INT && rhsType == ast.FLOAT {
		a.fail(clikeerr.New(clikeerr.SemTypeNarrowing, n.Position,
			"cannot initialize int variable %q with a float expression", n.Name))
	}
}

func (a *Analyzer) VisitArrayDecl(n *ast.ArrayDecl) {
	sym := &symtab.VarSymbol{Name: n.Name, Type: n.Type, IsArray: true, ArraySize: n.Size}
	if err := a.current.Insert(sym, n.Position); err != nil {
		a.fail(err)
	}
}

func (a *Analyzer) VisitAssign(n *ast.Assign) {
	n.Target.Accept(a)
	if a.failed() {
		return
	}
	n.Value.Accept(a)
	if a.failed() {
		return
	}
	targetType := a.typeOf(n.Target)
	rhsType := a.typeOf(n.Value)
	if targetType == ast.INT && rhsType == ast.FLOAT {
		a.fail(clikeerr.New(clikeerr.SemTypeNarrowing, n.Position, "cannot assign a float expression to an int target"))
	}
}

func (a *Analyzer) VisitIf(n *ast.If) {
	n.Cond.Accept(a)
	if a.failed() {
		return
	}
	n.Then.Accept(a)
	if a.failed() || n.Else == nil {
		return
	}
	n.Else.Accept(a)
}

func (a *Analyzer) VisitWhile(n *ast.While) {
	n.Cond.Accept(a)
	if a.failed() {
		return
	}
	n.Body.Accept(a)
}

func (a *Analyzer) VisitFor(n *ast.For) {
	if n.Init != nil {
		n.Init.Accept(a)
		if a.failed() {
			return
		}
	}
	if n.Cond != nil {
		n.Cond.Accept(a)
		if a.failed() {
			return
		}
	}
	for _, post := range n.Post {
		post.Accept(a)
		if a.failed() {
			return
		}
	}
	n.Body.Accept(a)
}

func (a *Analyzer) VisitReturn(n *ast.Return) {
	if n.Value != nil {
		n.Value.Accept(a)
	}
}

func (a *Analyzer) VisitCallStmt(n *ast.CallStmt) {
	n.Call.Accept(a)
}

func (a *Analyzer) VisitBinOp(n *ast.BinOp) {
	n.Left.Accept(a)
	if a.failed() {
		return
	}
	n.Right.Accept(a)
}

func (a *Analyzer) VisitUnaryOp(n *ast.UnaryOp) {
	n.Operand.Accept(a)
}

func (a *Analyzer) VisitVarRef(n *ast.VarRef) {
	if _, ok := a.current.Lookup(n.Name, false); !ok {
		a.fail(clikeerr.New(clikeerr.SemIDNotFound, n.Position, "undeclared identifier %q", n.Name))
	}
}

func (a *Analyzer) VisitIndex(n *ast.Index) {
	sym, ok := a.current.Lookup(n.Name, false)
	if !ok {
		a.fail(clikeerr.New(clikeerr.SemIDNotFound, n.Position, "undeclared identifier %q", n.Name))
		return
	}
	vs, isVar := sym.(*symtab.VarSymbol)
	if !isVar || !vs.IsArray {
		a.fail(clikeerr.New(clikeerr.SemNotAnArray, n.Position, "%q is not an array", n.Name))
		return
	}
	n.Idx.Accept(a)
}

// builtinPrint is CLIKE's only built-in: it is never inserted into the
// symbol table and accepts any number of arguments of any type.
const builtinPrint = "print"

func (a *Analyzer) VisitCall(n *ast.Call) {
	if n.Name == builtinPrint {
		for _, arg := range n.Args {
			arg.Accept(a)
			if a.failed() {
				return
			}
		}
		return
	}

	sym, ok := a.global.Lookup(n.Name, false)
	if !ok {
		a.fail(clikeerr.New(clikeerr.SemIDNotFound, n.Position, "call to undeclared function %q", n.Name))
		return
	}
	fs, isFunc := sym.(*symtab.FuncSymbol)
	if !isFunc {
		a.fail(clikeerr.New(clikeerr.SemIDNotFound, n.Position, "%q is not a function", n.Name))
		return
	}
	if len(n.Args) != len(fs.Params) {
		a.fail(clikeerr.New(clikeerr.SemArgCountMismatch, n.Position,
			"%q expects %d argument(s), got %d", n.Name, len(fs.Params), len(n.Args)))
		return
	}
	for _, arg := range n.Args {
		arg.Accept(a)
		if a.failed() {
			return
		}
	}
}

func (a *Analyzer) VisitIntLit(n *ast.IntLit)       {}
func (a *Analyzer) VisitFloatLit(n *ast.FloatLit)   {}
func (a *Analyzer) VisitCharLit(n *ast.CharLit)     {}
func (a *Analyzer) VisitStringLit(n *ast.StringLit) {}
