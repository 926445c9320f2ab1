/*
File    : C-Like/parser/parser.go
*/

// Package parser implements CLIKE's hand-written recursive-descent
// parser: one function per grammar nonterminal, plus the #include
// resolution CLIKE's grammar requires.
package parser

import (
	"path/filepath"

	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/lexer"
	"github.com/carb0ned0/C-Like/source"
	"github.com/carb0ned0/C-Like/token"
)

// maxIncludeDepth bounds transitive #include nesting.
const maxIncludeDepth = 64

// includeState is shared by every Parser instance spawned while
// resolving a single root program's #include chain: the set of already
// included canonical paths (for cycle-safe dedup) and the current
// nesting depth.
type includeState struct {
	loader  source.Loader
	visited map[string]bool
	depth   int
}

// Parser turns a token stream into an *ast.Program. One Parser exists
// per source file; included files get their own Parser sharing the
// same includeState.
type Parser struct {
	lx      *lexer.Lexer
	cur     token.Token
	baseDir string
	state   *includeState
}

// New creates a root Parser for src, read from filename (used only to
// resolve #include paths relative to its directory; pass "" if the
// source has no on-disk location and contains no includes). filename's
// own canonical identity is registered as visited up front, so an
// #include chain that loops back to the root file is deduped the same
// way a cycle between two included files is.
func New(src, filename string, loader source.Loader) (*Parser, error) {
	state := &includeState{
		loader:  loader,
		visited: make(map[string]bool),
	}
	if filename != "" && loader != nil {
		if canonical, err := loader.Canonicalize(filename); err == nil {
			state.visited[canonical] = true
		}
	}
	p := &Parser{
		lx:      lexer.New(src),
		baseDir: filepath.Dir(filename),
		state:   state,
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func newChild(src, baseDir string, state *includeState) (*Parser, error) {
	p := &Parser{lx: lexer.New(src), baseDir: baseDir, state: state}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// eat consumes the current token if it has the expected kind, failing
// with PARSE_EXPECTED otherwise.
func (p *Parser) eat(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, clikeerr.New(clikeerr.ParseExpected, p.cur.Pos,
			"expected %s, got %s (%q)", kind, p.cur.Kind, p.cur.Literal)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// peekNext looks one token beyond the current token without consuming
// either, used to disambiguate constructs that share a leading ID.
func (p *Parser) peekNext() (token.Token, error) {
	return p.lx.Peek()
}

var typeKeywords = map[token.Kind]ast.TypeTag{
	token.INT_KW:    ast.INT,
	token.FLOAT_KW:  ast.FLOAT,
	token.CHAR_KW:   ast.CHAR,
	token.STRING_KW: ast.STRING,
	token.VOID_KW:   ast.VOID,
}

func (p *Parser) atTypeKeyword() bool {
	_, ok := typeKeywords[p.cur.Kind]
	return ok
}

func (p *Parser) parseType() (ast.TypeTag, token.Position, error) {
	tag, ok := typeKeywords[p.cur.Kind]
	if !ok {
		return "", token.Position{}, clikeerr.New(clikeerr.ParseExpected, p.cur.Pos,
			"expected a type keyword, got %s (%q)", p.cur.Kind, p.cur.Literal)
	}
	pos := p.cur.Pos
	if err := p.advance(); err != nil {
		return "", token.Position{}, err
	}
	return tag, pos, nil
}

// Parse runs `program := include* top_decl* EOF`, resolves includes,
// and extracts `main` from the top-level function list.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{Position: p.cur.Pos}

	sawTopDecl := false
	for {
		if p.cur.Kind == token.INCLUDE {
			if sawTopDecl {
				return nil, clikeerr.New(clikeerr.ParseBadIncludePosition, p.cur.Pos,
					"#include must appear before any top-level declaration")
			}
			included, err := p.resolveInclude()
			if err != nil {
				return nil, err
			}
			prog.Funcs = append(prog.Funcs, included...)
			continue
		}
		if p.cur.Kind == token.EOF {
			break
		}
		fn, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		prog.Funcs = append(prog.Funcs, fn)
		sawTopDecl = true
	}
	if _, err := p.eat(token.EOF); err != nil {
		return nil, err
	}

	extractMain(prog)
	return prog, nil
}

// extractMain removes the first function literally named "main" from
// the top-level list and stores it separately. Signature
// validation (return type int, zero params) is the semantic analyzer's
// job (MISSING_MAIN), not the parser's.
func extractMain(prog *ast.Program) {
	for i, fn := range prog.Funcs {
		if fn.Name == "main" {
			prog.Main = fn
			prog.Funcs = append(prog.Funcs[:i], prog.Funcs[i+1:]...)
			return
		}
	}
}

// ParseStatements parses src as a bare sequence of statements rather
// than a full program: no top-level function declarations, no
// #include, no `main` extraction. It backs the interactive REPL,
// where each line is one or more statements evaluated against a
// persistent frame rather than a freestanding program.
func ParseStatements(src string) ([]ast.Stmt, error) {
	p := &Parser{lx: lexer.New(src), state: &includeState{visited: make(map[string]bool)}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.cur.Kind != token.EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s...)
	}
	return stmts, nil
}

// resolveInclude consumes the current INCLUDE token, loads and parses
// the target file, and returns only its FunctionDecl nodes: any nested
// `main` or other construct is silently dropped, repeated includes of
// the same canonical path are silently skipped, and nesting beyond
// maxIncludeDepth fails.
func (p *Parser) resolveInclude() ([]*ast.FunctionDecl, error) {
	path, _ := p.cur.Value.(string)
	pos := p.cur.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}

	canonical, text, err := p.state.loader.Read(path, p.baseDir)
	if err != nil {
		return nil, err
	}
	if p.state.visited[canonical] {
		return nil, nil
	}
	if p.state.depth+1 > maxIncludeDepth {
		return nil, clikeerr.New(clikeerr.ParseIncludeDepth, pos, "#include nesting exceeds %d levels", maxIncludeDepth)
	}
	p.state.visited[canonical] = true
	p.state.depth++
	defer func() { p.state.depth-- }()

	child, err := newChild(text, filepath.Dir(canonical), p.state)
	if err != nil {
		return nil, err
	}
	childProg, err := child.Parse()
	if err != nil {
		return nil, err
	}
	return childProg.Funcs, nil
}
