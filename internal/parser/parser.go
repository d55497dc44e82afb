// Package parser implements the cyascript recursive descent parser.
//
// The parser takes ownership of a token slice and its line table (as
// produced by lexer.Tokenize) and builds an ast.ParsedFile. Parsing stops
// at the first error.
package parser

import (
	"fmt"

	"github.com/cyascript/cyascript/internal/ast"
	"github.com/cyascript/cyascript/internal/lexer"
)

// Parser holds the token stream and the read cursor.
type Parser struct {
	tokens []lexer.Token
	lines  []int
	cur    int

	funcs []ast.FuncDecl
}

// New creates a parser. lines must hold one entry per token plus the
// trailing end-of-input line.
func New(tokens []lexer.Token, lines []int) *Parser {
	return &Parser{
		tokens: tokens,
		lines:  lines,
		funcs:  make([]ast.FuncDecl, 0),
	}
}

// Parse is shorthand for New(tokens, lines).Parse().
func Parse(tokens []lexer.Token, lines []int) (*ast.ParsedFile, error) {
	return New(tokens, lines).Parse()
}

// Parse parses the whole token stream.
func (p *Parser) Parse() (*ast.ParsedFile, error) {
	stmts, err := p.statements()
	if err != nil {
		return nil, err
	}
	return &ast.ParsedFile{
		Statements: stmts,
		Funcs:      p.funcs,
		Index:      0,
	}, nil
}

func (p *Parser) statements() ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0)
	for {
		tok, ok := p.peek()
		if !ok {
			return stmts, nil
		}

		var (
			stmt ast.Statement
			err  error
		)
		switch tok.Kind {
		case lexer.Let:
			stmt, err = p.parseLetStatement()
		case lexer.Semi:
			p.next()
			continue
		case lexer.Func:
			err = p.errorf("function declarations are not supported in this version")
		default:
			stmt, err = p.parseExpressionStatement()
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseLetStatement parses one of
//
//	let name = expr
//	let name: Type = expr
//	let name Type = expr
//
// with an optional trailing semicolon.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	line := p.line()
	p.next() // let

	name, err := p.identifier()
	if err != nil {
		return nil, withMsg(err, "expect a variable name after 'let'")
	}

	var typ ast.ParsedType
	switch {
	case p.test(lexer.Punct(lexer.Eq)):
		p.next()
	case p.test(lexer.Punct(lexer.Colon)):
		p.next()
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}
		if err := p.assertNext(lexer.Punct(lexer.Eq)); err != nil {
			return nil, withMsg(err, "expect a '=' after 'let' and variable name")
		}
	default:
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}
		if err := p.assertNext(lexer.Punct(lexer.Eq)); err != nil {
			return nil, withMsg(err, "expect a '=' after variable type in 'let' statement")
		}
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.test(lexer.Punct(lexer.Semi)) {
		p.next()
	}

	return &ast.LetStmt{
		Target: &ast.VarName{Name: name},
		Type:   typ,
		Init:   init,
		Line:   line,
	}, nil
}

// parseExpressionStatement parses an expression used as a statement. With a
// trailing semicolon the value is discarded.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	line := p.line()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.test(lexer.Punct(lexer.Semi)) {
		p.next()
		return &ast.DiscardStmt{Expr: expr, Line: line}, nil
	}
	return &ast.ExprStmt{Expr: expr, Line: line}, nil
}

// hasNext reports whether unread tokens remain.
func (p *Parser) hasNext() bool {
	return p.cur < len(p.tokens)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() (lexer.Token, bool) {
	if !p.hasNext() {
		return lexer.Token{}, false
	}
	return p.tokens[p.cur], true
}

// next consumes and returns the current token. Callers check hasNext first.
func (p *Parser) next() lexer.Token {
	tok := p.tokens[p.cur]
	p.cur++
	return tok
}

// test reports whether the current token equals tok.
func (p *Parser) test(tok lexer.Token) bool {
	cur, ok := p.peek()
	return ok && cur == tok
}

// line returns the source line of the current token, or the end-of-input
// line once the tokens are exhausted.
func (p *Parser) line() int {
	if p.cur < len(p.lines) {
		return p.lines[p.cur]
	}
	if len(p.lines) > 0 {
		return p.lines[len(p.lines)-1]
	}
	return 0
}

// identifier consumes an identifier token and returns its text.
func (p *Parser) identifier() (string, error) {
	tok, ok := p.peek()
	if !ok {
		return "", p.errorf("expect identifier in fact found end of input")
	}
	if tok.Kind != lexer.Ident {
		return "", p.errorf("expect identifier in fact found token %s", tok)
	}
	p.next()
	return tok.Text, nil
}

// assertNext consumes the current token if it equals expected.
func (p *Parser) assertNext(expected lexer.Token) error {
	tok, ok := p.peek()
	if !ok {
		return p.errorf("[assert_next] expect token %s in fact end of input", expected)
	}
	if tok != expected {
		return p.errorf("[assert_next] expect token %s in fact %s", expected, tok)
	}
	p.next()
	return nil
}

// errorf builds a parse error at the current line.
func (p *Parser) errorf(format string, args ...any) error {
	return NewParseError(p.line(), fmt.Sprintf(format, args...))
}
