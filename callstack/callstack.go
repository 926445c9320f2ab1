/*
File    : C-Like/callstack/callstack.go
*/

// Package callstack implements CLIKE's runtime call stack: the
// ActivationRecord/CallStack pair the interpreter pushes and pops on
// every function call, kept strictly separate from the compile-time
// symtab package. An ActivationRecord holds only name-to-Value
// bindings, never declared-type bookkeeping.
package callstack

import (
	"github.com/carb0ned0/C-Like/values"
)

// ActivationRecord is one function invocation's variable bindings: the
// callee's name, its nesting level (1 for the global record, N+1 for a
// call made from level N), and a flat name-to-value map covering both
// parameters and locally declared variables (CLIKE has no block-local
// shadowing at runtime; the analyzer already rejected any that would
// collide).
type ActivationRecord struct {
	Name   string
	Level  int
	vars   map[string]values.Value
}

// NewActivationRecord creates an empty record for a call to name at
// nesting level.
func NewActivationRecord(name string, level int) *ActivationRecord {
	return &ActivationRecord{Name: name, Level: level, vars: make(map[string]values.Value)}
}

// Set binds name to val in this record, declaring or overwriting it.
func (ar *ActivationRecord) Set(name string, val values.Value) {
	ar.vars[name] = val
}

// Get returns the value bound to name in this record only; CLIKE has no
// lexical nesting at runtime, so lookups never cross activation
// records.
func (ar *ActivationRecord) Get(name string) (values.Value, bool) {
	v, ok := ar.vars[name]
	return v, ok
}

// CallStack is the interpreter's stack of ActivationRecords. Index 0 is
// always the global record, holding no variables (function
// declarations live in the interpreter's own function table, not here).
type CallStack struct {
	records []*ActivationRecord
}

// New creates an empty CallStack.
func New() *CallStack {
	return &CallStack{}
}

// Push adds ar to the top of the stack.
func (cs *CallStack) Push(ar *ActivationRecord) {
	cs.records = append(cs.records, ar)
}

// Pop removes and returns the top ActivationRecord. It panics if the
// stack is empty: a matched Push always precedes any Pop in the
// interpreter's own call protocol, so an empty pop is a hosting bug,
// not a CLIKE runtime error.
func (cs *CallStack) Pop() *ActivationRecord {
	n := len(cs.records)
	ar := cs.records[n-1]
	cs.records = cs.records[:n-1]
	return ar
}

// Peek returns the top ActivationRecord without removing it.
func (cs *CallStack) Peek() *ActivationRecord {
	if len(cs.records) == 0 {
		return nil
	}
	return cs.records[len(cs.records)-1]
}

// Depth returns the number of records currently on the stack.
func (cs *CallStack) Depth() int {
	return len(cs.records)
}
