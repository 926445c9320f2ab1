/*
File    : C-Like/trace/trace_test.go
*/
package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopTraceDiscardsEverything(t *testing.T) {
	var nt NopTrace
	nt.Debugf("x=%d", 1)
	nt.Scopef("push %s", "global")
	nt.Stackf("call %s", "main")
}

func TestWriterTraceOnlyEmitsEnabledChannels(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWriterTrace(&buf)
	tr.Debugf("token %s", "ID")
	require.Empty(t, buf.String())

	tr.Debug = true
	tr.Debugf("token %s", "ID")
	require.Contains(t, buf.String(), "[debug] token ID")

	buf.Reset()
	tr.Scopef("push %s", "main")
	require.Empty(t, buf.String())

	tr.Scope = true
	tr.Scopef("push %s", "main")
	require.Contains(t, buf.String(), "[scope] push main")
}

func TestWriterTraceStackChannel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWriterTrace(&buf)
	tr.Stack = true
	tr.Stackf("push %s level=%d", "add", 2)
	require.Contains(t, buf.String(), "[stack] push add level=2")
}
