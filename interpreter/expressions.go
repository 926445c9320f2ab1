/*
File    : C-Like/interpreter/expressions.go
*/
package interpreter

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/callstack"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
	"github.com/carb0ned0/C-Like/values"
)

func (it *Interpreter) VisitIntLit(n *ast.IntLit)       { it.last = values.IntVal(n.Value) }
func (it *Interpreter) VisitFloatLit(n *ast.FloatLit)   { it.last = values.FloatVal(n.Value) }
func (it *Interpreter) VisitCharLit(n *ast.CharLit)     { it.last = values.CharVal(n.Value) }
func (it *Interpreter) VisitStringLit(n *ast.StringLit) { it.last = values.StringVal(n.Value) }

func (it *Interpreter) VisitVarRef(n *ast.VarRef) {
	v, ok := it.cs.Peek().Get(n.Name)
	if !ok {
		it.fail(clikeerr.New(clikeerr.RunUndefined, n.Position, "undefined variable %q", n.Name))
		return
	}
	it.last = v
}

func (it *Interpreter) VisitIndex(n *ast.Index) {
	arr, idx, ok := it.resolveIndex(n)
	if !ok {
		return
	}
	it.last = arr.Elems[idx]
}

func (it *Interpreter) VisitUnaryOp(n *ast.UnaryOp) {
	v := it.eval(n.Operand)
	if it.failed() {
		return
	}
	if n.Op == token.PLUS {
		it.last = v
		return
	}
	switch v.Type {
	case ast.INT:
		it.last = values.IntVal(-v.Int)
	case ast.FLOAT:
		it.last = values.FloatVal(-v.Flt)
	default:
		it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "unary - requires a numeric operand"))
	}
}

func (it *Interpreter) VisitBinOp(n *ast.BinOp) {
	left := it.eval(n.Left)
	if it.failed() {
		return
	}
	right := it.eval(n.Right)
	if it.failed() {
		return
	}

	switch n.Op {
	case token.PLUS:
		it.evalAdd(n, left, right)
	case token.MINUS:
		it.evalArith(n, left, right, func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b })
	case token.STAR:
		it.evalArith(n, left, right, func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b })
	case token.SLASH:
		it.evalDivide(n, left, right)
	case token.LT, token.GT, token.LEQ, token.GEQ, token.EQ, token.NEQ:
		it.evalRelational(n, left, right)
	case token.AND:
		it.last = boolToValue(left.Truthy() && right.Truthy())
	case token.OR:
		it.last = boolToValue(left.Truthy() || right.Truthy())
	default:
		it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "unsupported operator %s", n.Op))
	}
}

func boolToValue(b bool) values.Value {
	if b {
		return values.IntVal(1)
	}
	return values.IntVal(0)
}

func (it *Interpreter) evalAdd(n *ast.BinOp, left, right values.Value) {
	if left.Type == ast.STRING || right.Type == ast.STRING {
		if left.Type != ast.STRING || right.Type != ast.STRING {
			it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "+ between string and non-string is not allowed"))
			return
		}
		it.last = values.StringVal(left.Str + right.Str)
		return
	}
	it.evalArith(n, left, right, func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b })
}

func (it *Interpreter) evalArith(n *ast.BinOp, left, right values.Value, ffn func(a, b float64) float64, ifn func(a, b int64) int64) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "operator %s requires numeric operands", n.Op))
		return
	}
	if left.Type == ast.FLOAT || right.Type == ast.FLOAT {
		it.last = values.FloatVal(ffn(lf, rf))
		return
	}
	it.last = values.IntVal(ifn(left.Int, right.Int))
}

func (it *Interpreter) evalDivide(n *ast.BinOp, left, right values.Value) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "operator / requires numeric operands"))
		return
	}
	if rf == 0 {
		it.fail(clikeerr.New(clikeerr.RunDivByZero, n.Position, "division by zero"))
		return
	}
	it.last = values.FloatVal(lf / rf)
}

func (it *Interpreter) evalRelational(n *ast.BinOp, left, right values.Value) {
	if isNumeric(left) && isNumeric(right) {
		lf, _ := asFloat(left)
		rf, _ := asFloat(right)
		it.last = boolToValue(compareFloat(n.Op, lf, rf))
		return
	}
	if isTextual(left) && isTextual(right) {
		ls, rs := textOf(left), textOf(right)
		it.last = boolToValue(compareString(n.Op, ls, rs))
		return
	}
	it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "cannot compare %s and %s", left.Type, right.Type))
}

func compareFloat(op token.Kind, a, b float64) bool {
	switch op {
	case token.LT:
		return a < b
	case token.GT:
		return a > b
	case token.LEQ:
		return a <= b
	case token.GEQ:
		return a >= b
	case token.EQ:
		return a == b
	case token.NEQ:
		return a != b
	}
	return false
}

func compareString(op token.Kind, a, b string) bool {
	switch op {
	case token.LT:
		return a < b
	case token.GT:
		return a > b
	case token.LEQ:
		return a <= b
	case token.GEQ:
		return a >= b
	case token.EQ:
		return a == b
	case token.NEQ:
		return a != b
	}
	return false
}

func isNumeric(v values.Value) bool { return v.Type == ast.INT || v.Type == ast.FLOAT }
func isTextual(v values.Value) bool { return v.Type == ast.STRING || v.Type == ast.CHAR }

func textOf(v values.Value) string {
	if v.Type == ast.CHAR {
		return string(rune(v.Chr))
	}
	return v.Str
}

func asFloat(v values.Value) (float64, bool) {
	switch v.Type {
	case ast.INT:
		return float64(v.Int), true
	case ast.FLOAT:
		return v.Flt, true
	default:
		return 0, false
	}
}

func (it *Interpreter) VisitCall(n *ast.Call) {
	if n.Name == builtinPrint {
		for _, arg := range n.Args {
			v := it.eval(arg)
			if it.failed() {
				return
			}
			it.println(v)
		}
		it.last = values.Value{Type: ast.VOID}
		return
	}
	it.last = it.callFunction(n.Name, n.Args, n.Position)
}

// callFunction resolves the declaration, evaluates arguments in the
// caller's frame, binds them positionally into a fresh frame (arrays
// by reference, scalars by value), executes the body catching the
// return signal, then pops the frame.
func (it *Interpreter) callFunction(name string, args []ast.Expr, pos token.Position) values.Value {
	fn, ok := it.funcs[name]
	if !ok {
		it.fail(clikeerr.New(clikeerr.RunUndefinedFunction, pos, "call to undefined function %q", name))
		return values.Value{}
	}

	argVals := make([]values.Value, len(args))
	for i, arg := range args {
		argVals[i] = it.eval(arg)
		if it.failed() {
			return values.Value{}
		}
	}

	frame := callstack.NewActivationRecord(name, it.cs.Depth()+1)
	for i, param := range fn.Params {
		frame.Set(param.Name, argVals[i])
	}

	it.cs.Push(frame)
	it.trace.Stackf("push %s (level %d)", frame.Name, frame.Level)

	fn.Body.Accept(it)

	popped := it.cs.Pop()
	it.trace.Stackf("pop %s (level %d)", popped.Name, popped.Level)

	if it.err != nil {
		return values.Value{}
	}
	if it.returning {
		it.returning = false
		return it.retVal
	}
	return values.Value{Type: ast.VOID}
}
