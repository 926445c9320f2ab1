/*
File    : C-Like/sema/typing.go
*/
package sema

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/symtab"
	"github.com/carb0ned0/C-Like/token"
)

// typeOf computes the static type of an already-resolved expression.
// It is used only by the TYPE_NARROWING check, so it never reports an
// error itself —
// by the time it runs, every identifier it touches is known to resolve
// (VisitVarRef/VisitIndex/VisitCall already validated them).
func (a *Analyzer) typeOf(e ast.Expr) ast.TypeTag {
	switch n := e.(type) {
	case *ast.IntLit:
		return ast.INT
	case *ast.FloatLit:
		return ast.FLOAT
	case *ast.CharLit:
		return ast.CHAR
	case *ast.StringLit:
		return ast.STRING
	case *ast.VarRef:
		if sym, ok := a.current.Lookup(n.Name, false); ok {
			if vs, ok := sym.(*symtab.VarSymbol); ok {
				return vs.Type
			}
		}
		return ast.VOID
	case *ast.Index:
		if sym, ok := a.current.Lookup(n.Name, false); ok {
			if vs, ok := sym.(*symtab.VarSymbol); ok {
				return vs.Type
			}
		}
		return ast.VOID
	case *ast.Call:
		if n.Name == builtinPrint {
			return ast.VOID
		}
		if sym, ok := a.global.Lookup(n.Name, false); ok {
			if fs, ok := sym.(*symtab.FuncSymbol); ok {
				return fs.RetType
			}
		}
		return ast.VOID
	case *ast.UnaryOp:
		return a.typeOf(n.Operand)
	case *ast.BinOp:
		return a.binOpType(n)
	default:
		return ast.VOID
	}
}

func (a *Analyzer) binOpType(n *ast.BinOp) ast.TypeTag {
	switch n.Op {
	case token.SLASH:
		return ast.FLOAT
	case token.PLUS, token.MINUS, token.STAR:
		if a.typeOf(n.Left) == ast.FLOAT || a.typeOf(n.Right) == ast.FLOAT {
			return ast.FLOAT
		}
		return ast.INT
	default: // relational and logical operators
		return ast.INT
	}
}
