/*
File    : C-Like/ast/node.go
*/

// Package ast defines the CLIKE abstract syntax tree: a tagged sum type
// of Node variants built with the visitor pattern. Every node carries
// the source position of its first token for diagnostics.
package ast

import "github.com/carb0ned0/C-Like/token"

// TypeTag is the closed set of CLIKE scalar/element types.
type TypeTag string

const (
	INT    TypeTag = "int"
	FLOAT  TypeTag = "float"
	CHAR   TypeTag = "char"
	STRING TypeTag = "string"
	VOID   TypeTag = "void"
)

// Node is the base of every AST variant: it can report the source
// position of its first token and accept a Visitor for dispatch.
type Node interface {
	Pos() token.Position
	Accept(v Visitor)
}

// Expr is implemented by every expression-producing node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node (including declarations).
type Stmt interface {
	Node
	stmtNode()
}

// LValue is implemented by the two assignable targets: VarRef and Index.
type LValue interface {
	Expr
	lvalueNode()
}

// Visitor dispatches over every concrete Node variant. Exhaustiveness is
// a design requirement: adding a Node variant without adding its Visit
// method here must fail to compile for every implementer.
type Visitor interface {
	VisitProgram(n *Program)
	VisitFunctionDecl(n *FunctionDecl)

	VisitBlock(n *Block)
	VisitVarDecl(n *VarDecl)
	VisitArrayDecl(n *ArrayDecl)
	VisitAssign(n *Assign)
	VisitIf(n *If)
	VisitWhile(n *While)
	VisitFor(n *For)
	VisitReturn(n *Return)
	VisitCallStmt(n *CallStmt)

	VisitBinOp(n *BinOp)
	VisitUnaryOp(n *UnaryOp)
	VisitVarRef(n *VarRef)
	VisitIndex(n *Index)
	VisitCall(n *Call)
	VisitIntLit(n *IntLit)
	VisitFloatLit(n *FloatLit)
	VisitCharLit(n *CharLit)
	VisitStringLit(n *StringLit)
}

// Param is a single function parameter: its declared type, name, and
// whether it is an array parameter (bound by reference at call time).
type Param struct {
	Type    TypeTag
	Name    string
	IsArray bool
	Position token.Position
}

// Program is the root node: the ordered top-level function declarations
// (main excluded) plus the extracted Main declaration.
type Program struct {
	Funcs    []*FunctionDecl
	Main     *FunctionDecl
	Position token.Position
}

func (n *Program) Pos() token.Position { return n.Position }
func (n *Program) Accept(v Visitor)    { v.VisitProgram(n) }

// FunctionDecl is a top-level function: return type, name, parameters,
// and body block.
type FunctionDecl struct {
	RetType  TypeTag
	Name     string
	Params   []Param
	Body     *Block
	Position token.Position
}

func (n *FunctionDecl) Pos() token.Position { return n.Position }
func (n *FunctionDecl) Accept(v Visitor)    { v.VisitFunctionDecl(n) }

// Block is an ordered sequence of statements delimited by braces.
type Block struct {
	Statements []Stmt
	Position   token.Position
}

func (n *Block) Pos() token.Position { return n.Position }
func (n *Block) Accept(v Visitor)    { v.VisitBlock(n) }
func (n *Block) stmtNode()           {}

// VarDecl declares one scalar variable of Type, with an optional
// initializer expression. Multi-declarations (`int a, b = 1;`) desugar
// to a flat sequence of VarDecl produced by the parser.
type VarDecl struct {
	Type     TypeTag
	Name     string
	Init     Expr // nil if absent
	Position token.Position
}

func (n *VarDecl) Pos() token.Position { return n.Position }
func (n *VarDecl) Accept(v Visitor)    { v.VisitVarDecl(n) }
func (n *VarDecl) stmtNode()           {}

// ArrayDecl declares a fixed-size 1D array of Type with Size elements.
type ArrayDecl struct {
	Type     TypeTag
	Name     string
	Size     int64
	Position token.Position
}

func (n *ArrayDecl) Pos() token.Position { return n.Position }
func (n *ArrayDecl) Accept(v Visitor)    { v.VisitArrayDecl(n) }
func (n *ArrayDecl) stmtNode()           {}

// Assign stores Value into Target, which is either a VarRef or an Index.
type Assign struct {
	Target   LValue
	Value    Expr
	Position token.Position
}

func (n *Assign) Pos() token.Position { return n.Position }
func (n *Assign) Accept(v Visitor)    { v.VisitAssign(n) }
func (n *Assign) stmtNode()           {}

// If is a conditional with an optional else block.
type If struct {
	Cond      Expr
	Then      *Block
	Else      *Block // nil if absent
	Position  token.Position
}

func (n *If) Pos() token.Position { return n.Position }
func (n *If) Accept(v Visitor)    { v.VisitIf(n) }
func (n *If) stmtNode()           {}

// While loops over Body while Cond is truthy.
type While struct {
	Cond     Expr
	Body     *Block
	Position token.Position
}

func (n *While) Pos() token.Position { return n.Position }
func (n *While) Accept(v Visitor)    { v.VisitWhile(n) }
func (n *While) stmtNode()           {}

// For is a classic three-clause loop. Init is either a *VarDecl or an
// *Assign (or nil); Cond is optional (absent means "always true"); Post
// is zero or more Assign statements executed after each iteration.
type For struct {
	Init     Stmt // *VarDecl, *Assign, or nil
	Cond     Expr // nil means always-true
	Post     []*Assign
	Body     *Block
	Position token.Position
}

func (n *For) Pos() token.Position { return n.Position }
func (n *For) Accept(v Visitor)    { v.VisitFor(n) }
func (n *For) stmtNode()           {}

// Return terminates the enclosing call, optionally yielding Value.
type Return struct {
	Value    Expr // nil for bare `return;`
	Position token.Position
}

func (n *Return) Pos() token.Position { return n.Position }
func (n *Return) Accept(v Visitor)    { v.VisitReturn(n) }
func (n *Return) stmtNode()           {}

// CallStmt is a function call used as a statement (its result discarded).
type CallStmt struct {
	Call     *Call
	Position token.Position
}

func (n *CallStmt) Pos() token.Position { return n.Position }
func (n *CallStmt) Accept(v Visitor)    { v.VisitCallStmt(n) }
func (n *CallStmt) stmtNode()           {}

// BinOp is a left-associative binary operator application.
type BinOp struct {
	Op       token.Kind
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *BinOp) Pos() token.Position { return n.Position }
func (n *BinOp) Accept(v Visitor)    { v.VisitBinOp(n) }
func (n *BinOp) exprNode()           {}

// UnaryOp is a prefix `+` or `-` applied to operand.
type UnaryOp struct {
	Op       token.Kind
	Operand  Expr
	Position token.Position
}

func (n *UnaryOp) Pos() token.Position { return n.Position }
func (n *UnaryOp) Accept(v Visitor)    { v.VisitUnaryOp(n) }
func (n *UnaryOp) exprNode()           {}

// VarRef is a bare identifier reference, either as an expression or as
// an assignment target.
type VarRef struct {
	Name     string
	Position token.Position
}

func (n *VarRef) Pos() token.Position { return n.Position }
func (n *VarRef) Accept(v Visitor)    { v.VisitVarRef(n) }
func (n *VarRef) exprNode()           {}
func (n *VarRef) lvalueNode()         {}

// Index is an array element reference `name[idx]`, either as an
// expression or as an assignment target.
type Index struct {
	Name     string
	Idx      Expr
	Position token.Position
}

func (n *Index) Pos() token.Position { return n.Position }
func (n *Index) Accept(v Visitor)    { v.VisitIndex(n) }
func (n *Index) exprNode()           {}
func (n *Index) lvalueNode()         {}

// Call is a function invocation `name(args...)`, used as an expression.
type Call struct {
	Name     string
	Args     []Expr
	Position token.Position
}

func (n *Call) Pos() token.Position { return n.Position }
func (n *Call) Accept(v Visitor)    { v.VisitCall(n) }
func (n *Call) exprNode()           {}

// IntLit is an integer literal.
type IntLit struct {
	Value    int64
	Position token.Position
}

func (n *IntLit) Pos() token.Position { return n.Position }
func (n *IntLit) Accept(v Visitor)    { v.VisitIntLit(n) }
func (n *IntLit) exprNode()           {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value    float64
	Position token.Position
}

func (n *FloatLit) Pos() token.Position { return n.Position }
func (n *FloatLit) Accept(v Visitor)    { v.VisitFloatLit(n) }
func (n *FloatLit) exprNode()           {}

// CharLit is a single-byte character literal.
type CharLit struct {
	Value    byte
	Position token.Position
}

func (n *CharLit) Pos() token.Position { return n.Position }
func (n *CharLit) Accept(v Visitor)    { v.VisitCharLit(n) }
func (n *CharLit) exprNode()           {}

// StringLit is a string literal.
type StringLit struct {
	Value    string
	Position token.Position
}

func (n *StringLit) Pos() token.Position { return n.Position }
func (n *StringLit) Accept(v Visitor)    { v.VisitStringLit(n) }
func (n *StringLit) exprNode()           {}
