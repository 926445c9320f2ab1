/*
File    : C-Like/parser/statements.go
*/
package parser

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
)

// parseStatement dispatches on the current token to one grammar
// alternative of `statement`, returning the (possibly multiple, for
// var_decl's comma-separated declarators) statements it produced.
func (p *Parser) parseStatement() ([]ast.Stmt, error) {
	switch {
	case p.atTypeKeyword():
		return p.parseVarOrArrayDecl()
	case p.cur.Kind == token.IF:
		stmt, err := p.parseIf()
		return one(stmt, err)
	case p.cur.Kind == token.WHILE:
		stmt, err := p.parseWhile()
		return one(stmt, err)
	case p.cur.Kind == token.FOR:
		stmt, err := p.parseFor()
		return one(stmt, err)
	case p.cur.Kind == token.RETURN:
		stmt, err := p.parseReturn()
		return one(stmt, err)
	case p.cur.Kind == token.ID:
		stmt, err := p.parseAssignOrCallStmt()
		return one(stmt, err)
	default:
		return nil, clikeerr.New(clikeerr.ParseExpected, p.cur.Pos,
			"expected a statement, got %s (%q)", p.cur.Kind, p.cur.Literal)
	}
}

func one(stmt ast.Stmt, err error) ([]ast.Stmt, error) {
	if err != nil {
		return nil, err
	}
	return []ast.Stmt{stmt}, nil
}

// parseVarOrArrayDecl implements `var_decl | array_decl`, both of which
// begin with `type ID`; array_decl is chosen iff the name is followed by
// `[`.
func (p *Parser) parseVarOrArrayDecl() ([]ast.Stmt, error) {
	typ, pos, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.eat(token.ID)
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == token.LBRACK {
		return p.parseArrayDeclTail(typ, nameTok, pos)
	}

	var decls []ast.Stmt
	decl, err := p.parseDeclaratorTail(typ, nameTok, pos)
	if err != nil {
		return nil, err
	}
	decls = append(decls, decl)

	for p.cur.Kind == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		nextName, err := p.eat(token.ID)
		if err != nil {
			return nil, err
		}
		decl, err := p.parseDeclaratorTail(typ, nextName, nextName.Pos)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}
	return decls, nil
}

// parseDeclaratorTail implements `declarator := ID ('=' expr)?` given the
// name already consumed.
func (p *Parser) parseDeclaratorTail(typ ast.TypeTag, nameTok token.Token, pos token.Position) (*ast.VarDecl, error) {
	var init ast.Expr
	if p.cur.Kind == token.ASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return &ast.VarDecl{Type: typ, Name: nameTok.Literal, Init: init, Position: pos}, nil
}

// parseArrayDeclTail implements `array_decl := type ID '[' INTEGER_CONST ']' ';'`.
func (p *Parser) parseArrayDeclTail(typ ast.TypeTag, nameTok token.Token, pos token.Position) ([]ast.Stmt, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	sizeTok, err := p.eat(token.INTEGER_CONST)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RBRACK); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}
	size, _ := sizeTok.Value.(int64)
	return one(&ast.ArrayDecl{Type: typ, Name: nameTok.Literal, Size: size, Position: pos}, nil)
}

// parseAssignOrCallStmt disambiguates `assign_stmt` from `call_stmt`,
// both of which begin with an identifier.
func (p *Parser) parseAssignOrCallStmt() (ast.Stmt, error) {
	nameTok, err := p.eat(token.ID)
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == token.LPAREN {
		call, err := p.parseCallTail(nameTok)
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.CallStmt{Call: call, Position: nameTok.Pos}, nil
	}

	var target ast.LValue
	if p.cur.Kind == token.LBRACK {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RBRACK); err != nil {
			return nil, err
		}
		target = &ast.Index{Name: nameTok.Literal, Idx: idx, Position: nameTok.Pos}
	} else {
		target = &ast.VarRef{Name: nameTok.Literal, Position: nameTok.Pos}
	}

	if _, err := p.eat(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target, Value: value, Position: nameTok.Pos}, nil
}

// parseAssignCore implements `assign_core := lvalue '=' expr` without a
// trailing semicolon, used by for-loop init/post clauses.
func (p *Parser) parseAssignCore() (*ast.Assign, error) {
	nameTok, err := p.eat(token.ID)
	if err != nil {
		return nil, err
	}
	var target ast.LValue
	if p.cur.Kind == token.LBRACK {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RBRACK); err != nil {
			return nil, err
		}
		target = &ast.Index{Name: nameTok.Literal, Idx: idx, Position: nameTok.Pos}
	} else {
		target = &ast.VarRef{Name: nameTok.Literal, Position: nameTok.Pos}
	}
	if _, err := p.eat(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target, Value: value, Position: nameTok.Pos}, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	ifTok, err := p.eat(token.IF)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.cur.Kind == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: thenBlock, Else: elseBlock, Position: ifTok.Pos}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	whileTok, err := p.eat(token.WHILE)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Position: whileTok.Pos}, nil
}

// parseFor implements `for_stmt := 'for' '(' for_init? ';' expr? ';' for_post? ')' block`.
func (p *Parser) parseFor() (ast.Stmt, error) {
	forTok, err := p.eat(token.FOR)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}

	var init ast.Stmt
	if p.cur.Kind != token.SEMI {
		if p.atTypeKeyword() {
			typ, pos, err := p.parseType()
			if err != nil {
				return nil, err
			}
			nameTok, err := p.eat(token.ID)
			if err != nil {
				return nil, err
			}
			decl, err := p.parseDeclaratorTail(typ, nameTok, pos)
			if err != nil {
				return nil, err
			}
			init = decl
		} else {
			assign, err := p.parseAssignCore()
			if err != nil {
				return nil, err
			}
			init = assign
		}
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if p.cur.Kind != token.SEMI {
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}

	var post []*ast.Assign
	if p.cur.Kind != token.RPAREN {
		assign, err := p.parseAssignCore()
		if err != nil {
			return nil, err
		}
		post = append(post, assign)
		for p.cur.Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			assign, err := p.parseAssignCore()
			if err != nil {
				return nil, err
			}
			post = append(post, assign)
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Cond: cond, Post: post, Body: body, Position: forTok.Pos}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	retTok, err := p.eat(token.RETURN)
	if err != nil {
		return nil, err
	}
	var value ast.Expr
	if p.cur.Kind != token.SEMI {
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Position: retTok.Pos}, nil
}
