package parser

import (
	"strconv"

	"github.com/cyascript/cyascript/internal/ast"
	"github.com/cyascript/cyascript/internal/lexer"
)

// parseExpression parses a single atom. Operators, assignment and calls
// have no grammar yet, so an atom directly followed by one of them is an
// error rather than the start of the next statement.
func (p *Parser) parseExpression() (ast.Expression, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok {
		return expr, nil
	}
	switch tok.Kind {
	case lexer.Plus, lexer.Minus, lexer.Star:
		return nil, p.errorf("binary operator '%s' is not supported in this version", tok.Kind)
	case lexer.Eq:
		return nil, p.errorf("assignment is not supported in this version")
	case lexer.LParen:
		return nil, p.errorf("call of %s is not supported in this version", expr)
	}
	return expr, nil
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorf("expect an expression in fact found end of input")
	}

	switch tok.Kind {
	case lexer.Str:
		p.next()
		return &ast.StrLit{Value: tok.Text}, nil
	case lexer.Int:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.errorf("integer literal %s is out of range", tok.Text)
		}
		p.next()
		return &ast.IntLit{Value: v}, nil
	case lexer.Num:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.errorf("number literal %s is out of range", tok.Text)
		}
		p.next()
		return &ast.NumLit{Value: v}, nil
	case lexer.Ident:
		p.next()
		return &ast.VarExpr{Var: &ast.VarName{Name: tok.Text}}, nil
	case lexer.Minus:
		p.next()
		inner, err := p.parseAtom()
		if err != nil {
			return nil, withMsg(err, "expect an operand after unary '-'")
		}
		return &ast.NegExpr{Expr: inner}, nil
	case lexer.LParen:
		return p.parseParenExpression()
	}
	return nil, p.errorf("expect an expression in fact found token %s", tok)
}

// parseParenExpression parses '()' as the none value, '(e)' as e, and
// '(e,)' or '(a, b, ...)' as a tuple.
func (p *Parser) parseParenExpression() (ast.Expression, error) {
	p.next() // (
	if p.test(lexer.Punct(lexer.RParen)) {
		p.next()
		return ast.NoneLit{}, nil
	}

	var elems []ast.Expression
	trailingComma := false
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, expr)

		if p.test(lexer.Punct(lexer.Comma)) {
			p.next()
			trailingComma = true
			if p.test(lexer.Punct(lexer.RParen)) {
				p.next()
				break
			}
			continue
		}
		trailingComma = false
		if err := p.assertNext(lexer.Punct(lexer.RParen)); err != nil {
			return nil, withMsg(err, "expect ',' or ')' in parenthesised expression")
		}
		break
	}

	if len(elems) == 1 && !trailingComma {
		return elems[0], nil
	}
	return &ast.TupleExpr{Elems: elems}, nil
}
