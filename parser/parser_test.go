/*
File    : C-Like/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/source"
	"github.com/carb0ned0/C-Like/token"
)

// memLoader is a fake source.Loader backed by an in-memory map, so
// include resolution can be tested without touching the filesystem.
type memLoader map[string]string

func (m memLoader) Read(relativePath, _ string) (string, string, error) {
	text, ok := m[relativePath]
	if !ok {
		return "", "", clikeerr.New(clikeerr.ParseIncludeIO, token.Position{}, "no such file: %s", relativePath)
	}
	return relativePath, text, nil
}

func (m memLoader) Canonicalize(path string) (string, error) { return path, nil }

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(src, "", source.NewOSLoader())
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func TestParseSimpleMain(t *testing.T) {
	prog := mustParse(t, `int main() { print("hi"); }`)
	require.NotNil(t, prog.Main)
	require.Equal(t, "main", prog.Main.Name)
	require.Equal(t, ast.INT, prog.Main.RetType)
	require.Len(t, prog.Main.Params, 0)
	require.Len(t, prog.Main.Body.Statements, 1)
	_, ok := prog.Main.Body.Statements[0].(*ast.CallStmt)
	require.True(t, ok)
}

func TestParseFunctionWithParamsAndReturn(t *testing.T) {
	prog := mustParse(t, `
int add(int a, int b) { return a + b; }
int main() { return add(1, 2); }
`)
	require.Len(t, prog.Funcs, 1)
	add := prog.Funcs[0]
	require.Equal(t, "add", add.Name)
	require.Len(t, add.Params, 2)
	require.Equal(t, ast.INT, add.Params[0].Type)
	ret, ok := add.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinOp)
	require.True(t, ok)
	require.Equal(t, ast.Expr(bin.Left), bin.Left)
}

func TestOperatorPrecedence(t *testing.T) {
	prog := mustParse(t, `int main() { return 1 + 2 * 3; }`)
	ret := prog.Main.Body.Statements[0].(*ast.Return)
	bin := ret.Value.(*ast.BinOp)
	require.Equal(t, "+", string(bin.Op))
	_, leftIsLit := bin.Left.(*ast.IntLit)
	require.True(t, leftIsLit)
	rightMul, ok := bin.Right.(*ast.BinOp)
	require.True(t, ok)
	require.Equal(t, "*", string(rightMul.Op))
}

func TestArrayDeclAndIndexAssign(t *testing.T) {
	prog := mustParse(t, `
int main() {
    int a[3];
    a[0] = 10;
}
`)
	stmts := prog.Main.Body.Statements
	decl, ok := stmts[0].(*ast.ArrayDecl)
	require.True(t, ok)
	require.Equal(t, int64(3), decl.Size)
	assign, ok := stmts[1].(*ast.Assign)
	require.True(t, ok)
	idx, ok := assign.Target.(*ast.Index)
	require.True(t, ok)
	require.Equal(t, "a", idx.Name)
}

func TestMultiDeclaratorDesugarsToFlatSequence(t *testing.T) {
	prog := mustParse(t, `int main() { int a, b = 1, c; }`)
	require.Len(t, prog.Main.Body.Statements, 3)
	for _, s := range prog.Main.Body.Statements {
		_, ok := s.(*ast.VarDecl)
		require.True(t, ok)
	}
}

func TestForLoop(t *testing.T) {
	prog := mustParse(t, `
int main() {
    int s = 0;
    for (int i = 0; i < 3; i = i + 1) { s = s + i; }
}
`)
	forStmt, ok := prog.Main.Body.Statements[1].(*ast.For)
	require.True(t, ok)
	_, initOk := forStmt.Init.(*ast.VarDecl)
	require.True(t, initOk)
	require.NotNil(t, forStmt.Cond)
	require.Len(t, forStmt.Post, 1)
}

func TestIfElse(t *testing.T) {
	prog := mustParse(t, `
int main() {
    if (1 < 2) { return 1; } else { return 0; }
}
`)
	ifStmt, ok := prog.Main.Body.Statements[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)
}

func TestParseExpectedError(t *testing.T) {
	p, err := New(`int main() { return }`, "", source.NewOSLoader())
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	ce, ok := err.(*clikeerr.Error)
	require.True(t, ok)
	require.Equal(t, clikeerr.ParseExpected, ce.Kind)
}

func TestIncludeResolutionAppendsFunctions(t *testing.T) {
	loader := memLoader{
		"utils.clike": `int add(int a, int b) { return a + b; }`,
	}
	p, err := New(`#include "utils.clike"
int main() { return add(5, 3); }`, "main.clike", loader)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prog.Funcs, 1)
	require.Equal(t, "add", prog.Funcs[0].Name)
}

func TestIncludeAfterTopDeclFails(t *testing.T) {
	loader := memLoader{"utils.clike": `int add(int a, int b){return a+b;}`}
	p, err := New(`int main(){}
#include "utils.clike"`, "main.clike", loader)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
	ce, ok := err.(*clikeerr.Error)
	require.True(t, ok)
	require.Equal(t, clikeerr.ParseBadIncludePosition, ce.Kind)
}

func TestRecursiveIncludeIsHarmless(t *testing.T) {
	loader := memLoader{
		"a.clike": `#include "b.clike"
int fa() { return 1; }`,
		"b.clike": `#include "a.clike"
int fb() { return 2; }`,
	}
	p, err := New(`#include "a.clike"
int main() { return fa() + fb(); }`, "main.clike", loader)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, fn := range prog.Funcs {
		names[fn.Name] = true
	}
	require.True(t, names["fa"])
	require.True(t, names["fb"])
}

// TestRecursiveIncludeBackToRootIsHarmless covers a cycle that loops
// back to the root file itself, not just between two included files:
// a.clike (the root) includes b.clike, which includes a.clike back.
func TestRecursiveIncludeBackToRootIsHarmless(t *testing.T) {
	rootSrc := `#include "b.clike"
int fa() { return 1; }`
	loader := memLoader{
		// Mirrors how a real on-disk loader would re-read a.clike when
		// b.clike includes it back: same canonical path, same text.
		"a.clike": rootSrc,
		"b.clike": `#include "a.clike"
int fb() { return 2; }`,
	}
	p, err := New(rootSrc, "a.clike", loader)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prog.Funcs, 2)
	names := map[string]bool{}
	for _, fn := range prog.Funcs {
		names[fn.Name] = true
	}
	require.True(t, names["fa"])
	require.True(t, names["fb"])
}
