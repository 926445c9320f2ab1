/*
File    : C-Like/callstack/callstack_test.go
*/
package callstack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carb0ned0/C-Like/values"
)

func TestPushPeekPop(t *testing.T) {
	cs := New()
	global := NewActivationRecord("global", 1)
	cs.Push(global)
	require.Equal(t, 1, cs.Depth())
	require.Same(t, global, cs.Peek())

	fnAR := NewActivationRecord("add", 2)
	cs.Push(fnAR)
	require.Equal(t, 2, cs.Depth())
	require.Same(t, fnAR, cs.Peek())

	popped := cs.Pop()
	require.Same(t, fnAR, popped)
	require.Equal(t, 1, cs.Depth())
	require.Same(t, global, cs.Peek())
}

func TestActivationRecordSetGet(t *testing.T) {
	ar := NewActivationRecord("main", 1)
	_, ok := ar.Get("x")
	require.False(t, ok)

	ar.Set("x", values.IntVal(7))
	v, ok := ar.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(7), v.Int)
}

func TestRecordsDoNotCrossLookupBoundaries(t *testing.T) {
	cs := New()
	global := NewActivationRecord("global", 1)
	global.Set("unreachable", values.IntVal(1))
	cs.Push(global)

	callee := NewActivationRecord("f", 2)
	cs.Push(callee)

	_, ok := cs.Peek().Get("unreachable")
	require.False(t, ok)
}
