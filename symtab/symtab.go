/*
File    : C-Like/symtab/symtab.go
*/

// Package symtab implements CLIKE's compile-time symbol table: the
// Symbol/Scope pair the semantic analyzer builds and consults, kept
// strictly separate from the runtime ActivationRecord/CallStack in
// package callstack. A Scope only ever holds declared types, never
// values, and lookup walks a Parent chain the same way any lexically
// nested scope structure does.
package symtab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
)

// Symbol is the closed set of entries a Scope may hold.
type Symbol interface {
	symbolName() string
}

// VarSymbol records a scalar or array variable's declared type.
type VarSymbol struct {
	Name      string
	Type      ast.TypeTag
	IsArray   bool
	ArraySize int64 // only meaningful if IsArray
}

func (s *VarSymbol) symbolName() string { return s.Name }

// FuncSymbol records a function's signature: return type and parameter
// list, enough to check call arity and argument narrowing.
type FuncSymbol struct {
	Name    string
	RetType ast.TypeTag
	Params  []ast.Param
}

func (s *FuncSymbol) symbolName() string { return s.Name }

// Scope is one level of static nesting: the global scope (function
// signatures), a function's top-level scope (parameters), or a nested
// block scope. Lookup walks Parent chains; Scope holds declared types,
// never values.
type Scope struct {
	Name    string
	Level   int
	Parent  *Scope
	symbols map[string]Symbol
}

// NewScope creates a scope named name nested under parent (nil for the
// global scope).
func NewScope(name string, parent *Scope) *Scope {
	level := 1
	if parent != nil {
		level = parent.Level + 1
	}
	return &Scope{Name: name, Level: level, Parent: parent, symbols: make(map[string]Symbol)}
}

// Insert adds sym to the scope, failing with DUPLICATE_ID if a symbol
// of the same name already exists in this scope (not an enclosing one:
// shadowing across scopes is legal).
func (s *Scope) Insert(sym Symbol, pos token.Position) error {
	if _, exists := s.symbols[sym.symbolName()]; exists {
		return clikeerr.New(clikeerr.SemDuplicateID, pos, "%q is already declared in scope %q", sym.symbolName(), s.Name)
	}
	s.symbols[sym.symbolName()] = sym
	return nil
}

// Lookup searches for name starting in s; if currentOnly is true the
// search stops after s instead of walking Parent.
func (s *Scope) Lookup(name string, currentOnly bool) (Symbol, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
		if currentOnly {
			break
		}
	}
	return nil, false
}

// Describe renders the names held directly in s, sorted, for the scope
// trace channel: one record per scope on exit, listing its symbols.
func Describe(s *Scope) string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		names[i] = fmt.Sprintf("%s:%s", name, kindOf(s.symbols[name]))
	}
	return strings.Join(names, ", ")
}

func kindOf(sym Symbol) string {
	switch sym.(type) {
	case *VarSymbol:
		return "var"
	case *FuncSymbol:
		return "func"
	default:
		return "?"
	}
}
