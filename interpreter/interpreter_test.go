/*
File    : C-Like/interpreter/interpreter_test.go
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/parser"
	"github.com/carb0ned0/C-Like/sema"
	"github.com/carb0ned0/C-Like/source"
	"github.com/carb0ned0/C-Like/trace"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	p, err := parser.New(src, "", source.NewOSLoader())
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, sema.New(trace.NopTrace{}).Analyze(prog))

	var buf bytes.Buffer
	it := New(&buf, trace.NopTrace{})
	runErr := it.Run(prog)
	return buf.String(), runErr
}

func TestHelloWorld(t *testing.T) {
	out, err := run(t, `int main() { print("Hello, CLIKE!"); }`)
	require.NoError(t, err)
	require.Equal(t, "Hello, CLIKE!\n", out)
}

func TestFactorialRecursion(t *testing.T) {
	out, err := run(t, `
int fact(int n) {
    if (n <= 1) { return 1; }
    return n * fact(n - 1);
}
int main() { print(fact(5)); }
`)
	require.NoError(t, err)
	require.Equal(t, "120\n", out)
}

func TestArraySumByReference(t *testing.T) {
	out, err := run(t, `
void fill(int xs[], int n) {
    int i;
    for (i = 0; i < n; i = i + 1) { xs[i] = i * 2; }
}
int sum(int xs[], int n) {
    int s = 0;
    int i;
    for (i = 0; i < n; i = i + 1) { s = s + xs[i]; }
    return s;
}
int main() {
    int a[5];
    fill(a, 5);
    print(sum(a, 5));
}
`)
	require.NoError(t, err)
	require.Equal(t, "20\n", out)
}

func TestFloatDivision(t *testing.T) {
	out, err := run(t, `int main() { print(7 / 2); }`)
	require.NoError(t, err)
	require.Equal(t, "3.5\n", out)
}

func TestFloatDivisionLandingOnWholeNumberKeepsDecimal(t *testing.T) {
	out, err := run(t, `int main() { print(4 / 2); }`)
	require.NoError(t, err)
	require.Equal(t, "2.0\n", out)
}

func TestDivisionByZeroFails(t *testing.T) {
	_, err := run(t, `int main() { print(1 / 0); }`)
	require.Error(t, err)
	ce := err.(*clikeerr.Error)
	require.Equal(t, clikeerr.RunDivByZero, ce.Kind)
}

func TestNonNumericIndexFails(t *testing.T) {
	_, err := run(t, `int main() { int a[3]; print(a["x"]); }`)
	require.Error(t, err)
	ce := err.(*clikeerr.Error)
	require.Equal(t, clikeerr.RunTypeError, ce.Kind)
}

func TestOutOfBoundsIndexFails(t *testing.T) {
	_, err := run(t, `int main() { int a[3]; print(a[5]); }`)
	require.Error(t, err)
	ce := err.(*clikeerr.Error)
	require.Equal(t, clikeerr.RunIndexOutOfBounds, ce.Kind)
}

func TestWhileLoopAndLogic(t *testing.T) {
	out, err := run(t, `
int main() {
    int i = 0;
    int s = 0;
    while (i < 5 && 1) {
        s = s + i;
        i = i + 1;
    }
    print(s);
}
`)
	require.NoError(t, err)
	require.Equal(t, "10\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `int main() { print("foo" + "bar"); }`)
	require.NoError(t, err)
	require.Equal(t, "foobar\n", out)
}

func TestFloatIndexIsCoercedToInt(t *testing.T) {
	out, err := run(t, `
int main() {
    int a[3];
    a[0] = 10;
    a[1] = 20;
    a[2] = 30;
    print(a[1.9]);
}
`)
	require.NoError(t, err)
	require.Equal(t, "20\n", out)
}

func TestDebugTraceEmitsOnePerVisitedNode(t *testing.T) {
	p, err := parser.New(`int main() { print(1 + 2); }`, "", source.NewOSLoader())
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, sema.New(trace.NopTrace{}).Analyze(prog))

	var traceBuf bytes.Buffer
	tr := trace.NewWriterTrace(&traceBuf)
	tr.Debug = true

	var out bytes.Buffer
	it := New(&out, tr)
	require.NoError(t, it.Run(prog))

	require.Contains(t, traceBuf.String(), "[debug] visit *ast.CallStmt")
	require.Contains(t, traceBuf.String(), "[debug] eval *ast.BinOp")
}
