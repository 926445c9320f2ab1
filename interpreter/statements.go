/*
File    : C-Like/interpreter/statements.go
*/
package interpreter

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/values"
)

// widen applies VarDecl/Assign's implicit int->float widening;
// narrowing never reaches here, since the analyzer already rejected
// it.
func widen(target ast.TypeTag, v values.Value) values.Value {
	if target == ast.FLOAT && v.Type == ast.INT {
		return values.FloatVal(float64(v.Int))
	}
	return v
}

func (it *Interpreter) VisitVarDecl(n *ast.VarDecl) {
	val := values.Zero(n.Type)
	if n.Init != nil {
		rhs := it.eval(n.Init)
		if it.failed() {
			return
		}
		val = widen(n.Type, rhs)
	}
	it.cs.Peek().Set(n.Name, val)
}

func (it *Interpreter) VisitArrayDecl(n *ast.ArrayDecl) {
	arr := values.NewArray(n.Type, n.Size)
	it.cs.Peek().Set(n.Name, values.ArrayVal(arr))
}

func (it *Interpreter) VisitAssign(n *ast.Assign) {
	rhs := it.eval(n.Value)
	if it.failed() {
		return
	}

	switch target := n.Target.(type) {
	case *ast.VarRef:
		current, ok := it.cs.Peek().Get(target.Name)
		if !ok {
			it.fail(clikeerr.New(clikeerr.RunUndefined, target.Position, "undefined variable %q", target.Name))
			return
		}
		it.cs.Peek().Set(target.Name, widen(current.Type, rhs))

	case *ast.Index:
		arr, idx, ok := it.resolveIndex(target)
		if !ok {
			return
		}
		arr.Elems[idx] = widen(arr.ElemType, rhs)

	default:
		it.fail(clikeerr.New(clikeerr.RunTypeError, n.Position, "unsupported assignment target"))
	}
}

// resolveIndex evaluates and range-checks target's index expression,
// returning the backing array and the validated element offset.
func (it *Interpreter) resolveIndex(target *ast.Index) (*values.Array, int64, bool) {
	v, ok := it.cs.Peek().Get(target.Name)
	if !ok {
		it.fail(clikeerr.New(clikeerr.RunUndefined, target.Position, "undefined array %q", target.Name))
		return nil, 0, false
	}
	idxVal := it.eval(target.Idx)
	if it.failed() {
		return nil, 0, false
	}
	idxF, ok := asFloat(idxVal)
	if !ok {
		it.fail(clikeerr.New(clikeerr.RunTypeError, target.Position, "array index must be numeric"))
		return nil, 0, false
	}
	idx := int64(idxF)
	if idx < 0 || idx >= int64(len(v.Arr.Elems)) {
		it.fail(clikeerr.New(clikeerr.RunIndexOutOfBounds, target.Position,
			"index %d out of bounds for array %q of length %d", idx, target.Name, len(v.Arr.Elems)))
		return nil, 0, false
	}
	return v.Arr, idx, true
}

func (it *Interpreter) VisitIf(n *ast.If) {
	cond := it.eval(n.Cond)
	if it.failed() {
		return
	}
	if cond.Truthy() {
		n.Then.Accept(it)
		return
	}
	if n.Else != nil {
		n.Else.Accept(it)
	}
}

func (it *Interpreter) VisitWhile(n *ast.While) {
	for {
		cond := it.eval(n.Cond)
		if it.failed() {
			return
		}
		if !cond.Truthy() {
			return
		}
		n.Body.Accept(it)
		if it.failed() {
			return
		}
	}
}

func (it *Interpreter) VisitFor(n *ast.For) {
	if n.Init != nil {
		n.Init.Accept(it)
		if it.failed() {
			return
		}
	}
	for {
		if n.Cond != nil {
			cond := it.eval(n.Cond)
			if it.failed() {
				return
			}
			if !cond.Truthy() {
				return
			}
		}
		n.Body.Accept(it)
		if it.failed() {
			return
		}
		for _, post := range n.Post {
			post.Accept(it)
			if it.failed() {
				return
			}
		}
	}
}

func (it *Interpreter) VisitReturn(n *ast.Return) {
	if n.Value != nil {
		v := it.eval(n.Value)
		if it.err != nil {
			return
		}
		it.retVal = v
	} else {
		it.retVal = values.Value{Type: ast.VOID}
	}
	it.returning = true
}

func (it *Interpreter) VisitCallStmt(n *ast.CallStmt) {
	n.Call.Accept(it)
}
