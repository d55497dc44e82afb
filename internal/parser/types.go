package parser

import (
	"github.com/cyascript/cyascript/internal/ast"
	"github.com/cyascript/cyascript/internal/lexer"
)

// parseType parses a type annotation:
//
//	'(' Type { ',' Type } ')'
//	Ident [ '<' Type { [','] Type } [','] '>' ]
//
// Commas inside a tuple are pure separators, so repeated, leading and
// trailing commas are accepted.
func (p *Parser) parseType() (ast.ParsedType, error) {
	if p.test(lexer.Punct(lexer.LParen)) {
		return p.parseTupleType()
	}

	name, err := p.identifier()
	if err != nil {
		return nil, withMsg(err, "expect a type identifier")
	}
	if !p.test(lexer.Punct(lexer.Lt)) {
		return &ast.SingleType{Name: name}, nil
	}
	p.next() // <

	generic := make([]ast.ParsedType, 0, 2)
	for {
		if !p.hasNext() {
			return nil, p.errorf("expect '>' to close the generic arguments of %s in fact end of input", name)
		}
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		generic = append(generic, arg)

		if p.test(lexer.Punct(lexer.Gt)) {
			p.next()
			break
		}
		if p.test(lexer.Punct(lexer.Comma)) {
			p.next()
			if p.test(lexer.Punct(lexer.Gt)) {
				p.next()
				break
			}
		}
	}

	return &ast.SingleType{Name: name, Generic: generic}, nil
}

func (p *Parser) parseTupleType() (ast.ParsedType, error) {
	p.next() // (
	elems := make([]ast.ParsedType, 0, 2)
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, p.errorf("expect ')' to close tuple type in fact end of input")
		}
		switch tok.Kind {
		case lexer.Comma:
			p.next()
			continue
		case lexer.RParen:
			p.next()
			return &ast.TupleType{Elems: elems}, nil
		}

		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}
