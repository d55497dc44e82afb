// Package ast defines the cyascript syntax tree: type annotations as written
// in source, expressions, statements and the per-file container produced by
// the parser.
//
// Sum types are sealed interfaces. Variants that exist for later phases
// (resolution, control flow, operators) are declared here but never built by
// the parser; code that switches over a sum type should route them through
// Unsupported instead of leaving the case out.
package ast

import (
	"fmt"
	"strings"
)

// Line is a 1-based source line number.
type Line = int

// Node is implemented by every syntax tree node.
type Node interface {
	String() string
}

// ParsedType is a type annotation before name resolution.
type ParsedType interface {
	Node
	parsedType()
}

// SingleType is a named type with optional generic arguments. A nil Generic
// means the type is not generic; a non-nil empty slice means it was written
// with explicit empty arguments.
type SingleType struct {
	Name    string
	Generic []ParsedType
}

// TupleType is an ordered list of element types.
type TupleType struct {
	Elems []ParsedType
}

// SelfType is the receiver type placeholder.
type SelfType struct{}

func (*SingleType) parsedType() {}
func (*TupleType) parsedType()  {}
func (SelfType) parsedType()    {}

func (t *SingleType) String() string {
	if t.Generic == nil {
		return t.Name
	}
	return t.Name + "<" + joinTypes(t.Generic) + ">"
}

func (t *TupleType) String() string {
	return "(" + joinTypes(t.Elems) + ")"
}

func (SelfType) String() string { return "Self" }

func joinTypes(types []ParsedType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// BasicType is the storage class of a value once types are resolved.
type BasicType uint8

const (
	BasicInt BasicType = iota
	BasicNum
	BasicChar
	BasicBool
	BasicRef
)

func (b BasicType) String() string {
	switch b {
	case BasicInt:
		return "int"
	case BasicNum:
		return "num"
	case BasicChar:
		return "char"
	case BasicBool:
		return "bool"
	case BasicRef:
		return "ref"
	default:
		return fmt.Sprintf("basic(%d)", uint8(b))
	}
}

// DataType is a resolved primitive type. The zero value means the type has
// not been resolved yet.
type DataType uint8

const (
	DataUnresolved DataType = iota
	DataInt
	DataNum
	DataChar
	DataBool
)

func (d DataType) String() string {
	switch d {
	case DataUnresolved:
		return "?"
	case DataInt:
		return "int"
	case DataNum:
		return "num"
	case DataChar:
		return "char"
	case DataBool:
		return "bool"
	default:
		return fmt.Sprintf("data(%d)", uint8(d))
	}
}

// ExprType is the type attached to a construction: the annotation as
// parsed, and the resolved type once analysis has run.
type ExprType struct {
	Parsed   ParsedType
	Analyzed DataType
}

func (t ExprType) String() string {
	if t.Analyzed != DataUnresolved {
		return t.Analyzed.String()
	}
	if t.Parsed == nil {
		return "?"
	}
	return t.Parsed.String()
}
