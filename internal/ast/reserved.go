package ast

import (
	"errors"
	"fmt"
)

// The nodes in this file belong to grammar that does not exist yet. They
// keep the sum types complete for later phases; the parser never builds them.

// BinOp is a binary operator.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpAnd
	OpOr
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// BinaryOperand is one `op rhs` step of a BinaryExpr chain.
type BinaryOperand struct {
	Op  BinOp
	RHS Expression
}

// BinaryExpr is Left followed by a flat list of operator steps; precedence
// is applied after parsing.
type BinaryExpr struct {
	Left Expression
	Ops  []BinaryOperand
}

// IfExpr is a conditional that yields a value.
type IfExpr struct {
	Cond Expression
	Then []Statement
	Else []Statement
}

// MatchArm is one pattern and its body.
type MatchArm struct {
	Pattern Expression
	Body    []Statement
}

// MatchExpr is pattern matching over Subject.
type MatchExpr struct {
	Subject Expression
	Arms    []MatchArm
}

// ChainLink is one field access or call in a chain.
type ChainLink struct {
	Field string
	Args  []Expression
	Call  bool
}

// ChainExpr is a receiver followed by member accesses and calls.
type ChainExpr struct {
	Receiver Expression
	Links    []ChainLink
}

// FuncExpr is a function literal.
type FuncExpr struct {
	Func *ParsedFunc
}

func (*BinaryExpr) expressionNode() {}
func (*IfExpr) expressionNode()     {}
func (*MatchExpr) expressionNode()  {}
func (*ChainExpr) expressionNode()  {}
func (*FuncExpr) expressionNode()   {}

func (e *BinaryExpr) String() string { return unsupportedString(e) }
func (e *IfExpr) String() string     { return unsupportedString(e) }
func (e *MatchExpr) String() string  { return unsupportedString(e) }
func (e *ChainExpr) String() string  { return unsupportedString(e) }
func (e *FuncExpr) String() string   { return unsupportedString(e) }

// WhileStmt is a condition-controlled loop.
type WhileStmt struct {
	Cond Expression
	Body []Statement
	Line Line
}

// ForStmt iterates Var over Iter.
type ForStmt struct {
	Var  Var
	Iter Expression
	Body []Statement
	Line Line
}

type BreakStmt struct {
	Line Line
}

type ContinueStmt struct {
	Line Line
}

// ReturnStmt returns Value from the enclosing function.
type ReturnStmt struct {
	Value Expression
	Line  Line
}

func (*WhileStmt) statementNode()    {}
func (*ForStmt) statementNode()      {}
func (*BreakStmt) statementNode()    {}
func (*ContinueStmt) statementNode() {}
func (*ReturnStmt) statementNode()   {}

func (s *WhileStmt) Pos() Line    { return s.Line }
func (s *ForStmt) Pos() Line      { return s.Line }
func (s *BreakStmt) Pos() Line    { return s.Line }
func (s *ContinueStmt) Pos() Line { return s.Line }
func (s *ReturnStmt) Pos() Line   { return s.Line }

func (s *WhileStmt) String() string    { return unsupportedString(s) }
func (s *ForStmt) String() string      { return unsupportedString(s) }
func (s *BreakStmt) String() string    { return unsupportedString(s) }
func (s *ContinueStmt) String() string { return unsupportedString(s) }
func (s *ReturnStmt) String() string   { return unsupportedString(s) }

// ErrUnsupported is wrapped by every UnsupportedError.
var ErrUnsupported = errors.New("unsupported in this version")

// UnsupportedError reports a node kind that has no implementation yet.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return e.Construct + " is " + ErrUnsupported.Error()
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// Unsupported returns an *UnsupportedError for reserved node kinds and nil
// for nodes the current grammar produces.
func Unsupported(n Node) error {
	if name := reservedName(n); name != "" {
		return &UnsupportedError{Construct: name}
	}
	return nil
}

func reservedName(n Node) string {
	switch n.(type) {
	case *BinaryExpr:
		return "binary operation"
	case *IfExpr:
		return "conditional expression"
	case *MatchExpr:
		return "pattern match"
	case *ChainExpr:
		return "member access or call"
	case *FuncExpr:
		return "function literal"
	case *WhileStmt:
		return "while loop"
	case *ForStmt:
		return "for loop"
	case *BreakStmt:
		return "break statement"
	case *ContinueStmt:
		return "continue statement"
	case *ReturnStmt:
		return "return statement"
	}
	return ""
}

func unsupportedString(n Node) string {
	return "<" + reservedName(n) + ">"
}
