package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Var is a variable reference. The parser only produces VarName; the other
// variants are filled in by name resolution.
type Var interface {
	Node
	varNode()
}

// VarName is an unresolved reference by name.
type VarName struct {
	Name string
}

// LocalVar is a resolved local slot.
type LocalVar struct {
	Basic BasicType
	Slot  uint16
	Depth uint8
}

// StaticVar is a resolved file-level slot.
type StaticVar struct {
	Basic BasicType
	Slot  uint16
}

// TypeRefKind says which table a TypeRef indexes.
type TypeRefKind uint8

const (
	ClassRef TypeRefKind = iota
	EnumRef
	InterfaceRef
	BuiltinTypeRef
)

func (k TypeRefKind) String() string {
	switch k {
	case ClassRef:
		return "class"
	case EnumRef:
		return "enum"
	case InterfaceRef:
		return "interface"
	case BuiltinTypeRef:
		return "builtin"
	default:
		return fmt.Sprintf("typeref(%d)", uint8(k))
	}
}

// TypeRef refers to a declared or builtin type used as a value.
type TypeRef struct {
	Kind  TypeRefKind
	Index uint16
}

// DirectFn refers to a function by its index in the function table.
type DirectFn struct {
	Index uint16
}

func (*VarName) varNode()   {}
func (*LocalVar) varNode()  {}
func (*StaticVar) varNode() {}
func (*TypeRef) varNode()   {}
func (*DirectFn) varNode()  {}

func (v *VarName) String() string   { return v.Name }
func (v *LocalVar) String() string  { return fmt.Sprintf("local_%s(%d, %d)", v.Basic, v.Slot, v.Depth) }
func (v *StaticVar) String() string { return fmt.Sprintf("static_%s(%d)", v.Basic, v.Slot) }
func (v *TypeRef) String() string   { return fmt.Sprintf("%s(%d)", v.Kind, v.Index) }
func (v *DirectFn) String() string  { return fmt.Sprintf("fn(%d)", v.Index) }

// Expression is any value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Literals

type NoneLit struct{}

type IntLit struct {
	Value int64
}

type NumLit struct {
	Value float64
}

type CharLit struct {
	Value rune
}

type BoolLit struct {
	Value bool
}

type StrLit struct {
	Value string
}

// VarExpr reads a variable.
type VarExpr struct {
	Var Var
}

// TupleExpr is a parenthesised, comma-separated list of two or more values,
// or a single value followed by a comma.
type TupleExpr struct {
	Elems []Expression
}

// ArrayExpr is an array or queue literal with a single element type.
type ArrayExpr struct {
	Elems   []Expression
	Elem    BasicType
	IsQueue bool
}

// Field is one initializer in an object construction.
type Field struct {
	Name  string
	Basic BasicType
	Init  Expression
}

// ConstructExpr builds an object of Class from field initializers.
type ConstructExpr struct {
	Class  ExprType
	Fields []Field
}

// CastExpr converts Expr to Target. Resolved is set by analysis.
type CastExpr struct {
	Expr     Expression
	Target   ParsedType
	Resolved DataType
}

// NegExpr is unary minus.
type NegExpr struct {
	Expr Expression
}

// NotExpr is logical negation.
type NotExpr struct {
	Expr Expression
}

func (NoneLit) expressionNode()        {}
func (*IntLit) expressionNode()        {}
func (*NumLit) expressionNode()        {}
func (*CharLit) expressionNode()       {}
func (*BoolLit) expressionNode()       {}
func (*StrLit) expressionNode()        {}
func (*VarExpr) expressionNode()       {}
func (*TupleExpr) expressionNode()     {}
func (*ArrayExpr) expressionNode()     {}
func (*ConstructExpr) expressionNode() {}
func (*CastExpr) expressionNode()      {}
func (*NegExpr) expressionNode()       {}
func (*NotExpr) expressionNode()       {}

func (NoneLit) String() string    { return "none" }
func (e *IntLit) String() string  { return strconv.FormatInt(e.Value, 10) }
func (e *NumLit) String() string  { return strconv.FormatFloat(e.Value, 'g', -1, 64) }
func (e *CharLit) String() string { return strconv.QuoteRune(e.Value) }
func (e *BoolLit) String() string { return strconv.FormatBool(e.Value) }
func (e *StrLit) String() string  { return strconv.Quote(e.Value) }
func (e *VarExpr) String() string { return e.Var.String() }

func (e *TupleExpr) String() string {
	if len(e.Elems) == 1 {
		return "(" + e.Elems[0].String() + ",)"
	}
	return "(" + joinExprs(e.Elems) + ")"
}

func (e *ArrayExpr) String() string {
	lb, rb := "[", "]"
	if e.IsQueue {
		lb, rb = "[<", ">]"
	}
	return fmt.Sprintf("%s%s%s:%s", lb, joinExprs(e.Elems), rb, e.Elem)
}

func (e *ConstructExpr) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s = %s", f.Name, f.Basic, f.Init)
	}
	return fmt.Sprintf("%s { %s }", e.Class, strings.Join(parts, ", "))
}

func (e *CastExpr) String() string {
	return fmt.Sprintf("(%s as %s)", e.Expr, e.Target)
}

func (e *NegExpr) String() string { return "-" + e.Expr.String() }
func (e *NotExpr) String() string { return "!" + e.Expr.String() }

func joinExprs(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
