/*
File    : C-Like/parser/expressions.go
*/
package parser

import (
	"github.com/carb0ned0/C-Like/ast"
	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
)

// parseExpr is the grammar's `expr` entry point; precedence follows the
// grammar's nesting (logic_or lowest, unary highest), all operators
// left-associative, built as a chain of binary-climb helpers layering
// logic-or over logic-and over equality over relational over additive
// over term over unary.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseLogicOr()
}

func (p *Parser) parseLogicOr() (ast.Expr, error) {
	left, err := p.parseLogicAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.OR {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: opTok.Kind, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseLogicAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.AND {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: opTok.Kind, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.EQ || p.cur.Kind == token.NEQ {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: opTok.Kind, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.LT || p.cur.Kind == token.GT || p.cur.Kind == token.LEQ || p.cur.Kind == token.GEQ {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: opTok.Kind, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: opTok.Kind, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.STAR || p.cur.Kind == token.SLASH {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: opTok.Kind, Left: left, Right: right, Position: opTok.Pos}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		opTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: opTok.Kind, Operand: operand, Position: opTok.Pos}, nil
	}
	return p.parsePrimary()
}

// parsePrimary implements:
//
//	primary := INTEGER_CONST | FLOAT_CONST | CHAR_CONST | STRING_CONST
//	         | ID ('(' arg_list? ')' | '[' expr ']')?
//	         | '(' expr ')'
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Kind {
	case token.INTEGER_CONST:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, _ := tok.Value.(int64)
		return &ast.IntLit{Value: v, Position: tok.Pos}, nil

	case token.FLOAT_CONST:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, _ := tok.Value.(float64)
		return &ast.FloatLit{Value: v, Position: tok.Pos}, nil

	case token.CHAR_CONST:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, _ := tok.Value.(byte)
		return &ast.CharLit{Value: v, Position: tok.Pos}, nil

	case token.STRING_CONST:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, _ := tok.Value.(string)
		return &ast.StringLit{Value: v, Position: tok.Pos}, nil

	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case token.ID:
		nameTok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case token.LPAREN:
			return p.parseCallTail(nameTok)
		case token.LBRACK:
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
			return &ast.Index{Name: nameTok.Literal, Idx: idx, Position: nameTok.Pos}, nil
		default:
			return &ast.VarRef{Name: nameTok.Literal, Position: nameTok.Pos}, nil
		}

	default:
		return nil, clikeerr.New(clikeerr.ParseExpected, p.cur.Pos,
			"expected an expression, got %s (%q)", p.cur.Kind, p.cur.Literal)
	}
}

// parseCallTail implements the `'(' arg_list? ')'` suffix of a call,
// given the callee name already consumed.
func (p *Parser) parseCallTail(nameTok token.Token) (*ast.Call, error) {
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.cur.Kind != token.RPAREN {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.cur.Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{Name: nameTok.Literal, Args: args, Position: nameTok.Pos}, nil
}
