package ast

import (
	"fmt"
	"strings"
)

// Statement is a top-level or body statement. Every statement remembers the
// line it starts on.
type Statement interface {
	Node
	statementNode()
	Pos() Line
}

// LetStmt declares Target. Type is nil when the declaration has no
// annotation and the type is left to inference.
type LetStmt struct {
	Target Var
	Type   ParsedType
	Init   Expression
	Line   Line
}

// ExprStmt is an expression whose value is used, e.g. as the result of a
// block.
type ExprStmt struct {
	Expr Expression
	Line Line
}

// DiscardStmt evaluates Expr and drops the value.
type DiscardStmt struct {
	Expr Expression
	Line Line
}

func (*LetStmt) statementNode()     {}
func (*ExprStmt) statementNode()    {}
func (*DiscardStmt) statementNode() {}

func (s *LetStmt) Pos() Line     { return s.Line }
func (s *ExprStmt) Pos() Line    { return s.Line }
func (s *DiscardStmt) Pos() Line { return s.Line }

func (s *LetStmt) String() string {
	if s.Type == nil {
		return fmt.Sprintf("let %s = %s", s.Target, s.Init)
	}
	return fmt.Sprintf("let %s: %s = %s", s.Target, s.Type, s.Init)
}

func (s *ExprStmt) String() string    { return s.Expr.String() }
func (s *DiscardStmt) String() string { return s.Expr.String() + ";" }

// Param is a function parameter.
type Param struct {
	Name string
	Type ParsedType
}

// ParsedFunc is a function signature and body. ReturnType is nil when the
// function declares none.
type ParsedFunc struct {
	Params     []Param
	Body       []Statement
	ReturnType ParsedType
}

func (f *ParsedFunc) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if f.ReturnType != nil {
		sig += " " + f.ReturnType.String()
	}
	return sig
}

// FuncDecl is an entry of a file's function table.
type FuncDecl struct {
	Name   string
	Func   *ParsedFunc
	Public bool
}

// ParsedFile is everything the parser extracted from one source file. Index
// identifies the file inside a multi-file compilation and is assigned by the
// module loader; the parser leaves it at zero.
type ParsedFile struct {
	Statements []Statement
	Funcs      []FuncDecl
	Index      int
}

// Dump renders the file one statement per line, prefixed with its line
// number.
func (f *ParsedFile) Dump() string {
	var sb strings.Builder
	for _, fn := range f.Funcs {
		vis := ""
		if fn.Public {
			vis = "pub "
		}
		fmt.Fprintf(&sb, "%sfun %s%s\n", vis, fn.Name, fn.Func)
	}
	for _, s := range f.Statements {
		fmt.Fprintf(&sb, "%4d  %s\n", s.Pos(), s)
	}
	return sb.String()
}

func (f *ParsedFile) String() string { return f.Dump() }
