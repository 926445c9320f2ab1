/*
File    : C-Like/parser/decls.go
*/
package parser

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/token"
)

// parseFunctionDecl implements `function_decl := type ID '(' param_list? ')' block`.
func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	retType, pos, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.eat(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	if p.cur.Kind != token.RPAREN {
		params, err = p.parseParamList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{
		RetType:  retType,
		Name:     nameTok.Literal,
		Params:   params,
		Body:     body,
		Position: pos,
	}, nil
}

// parseParamList implements `param_list := param (',' param)*`.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	var params []ast.Param
	param, err := p.parseParam()
	if err != nil {
		return nil, err
	}
	params = append(params, param)
	for p.cur.Kind == token.COMMA {
		if err := p.advance(); err != nil {
			return nil, err
		}
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// parseParam implements `param := type ID ('[' ']')?`.
func (p *Parser) parseParam() (ast.Param, error) {
	typ, pos, err := p.parseType()
	if err != nil {
		return ast.Param{}, err
	}
	nameTok, err := p.eat(token.ID)
	if err != nil {
		return ast.Param{}, err
	}
	isArray := false
	if p.cur.Kind == token.LBRACK {
		if err := p.advance(); err != nil {
			return ast.Param{}, err
		}
		if _, err := p.eat(token.RBRACK); err != nil {
			return ast.Param{}, err
		}
		isArray = true
	}
	return ast.Param{Type: typ, Name: nameTok.Literal, IsArray: isArray, Position: pos}, nil
}

// parseBlock implements `block := '{' statement* '}'`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.eat(token.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Position: lbrace.Pos}
	for p.cur.Kind != token.RBRACE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}
