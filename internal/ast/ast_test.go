package ast

import (
	"errors"
	"strings"
	"testing"
)

func single(name string, generic ...ParsedType) *SingleType {
	return &SingleType{Name: name, Generic: generic}
}

// TestParsedTypeString tests type annotation rendering
func TestParsedTypeString(t *testing.T) {
	tests := []struct {
		name     string
		typ      ParsedType
		expected string
	}{
		{"plain", &SingleType{Name: "Int"}, "Int"},
		{"explicit empty generic", &SingleType{Name: "List", Generic: []ParsedType{}}, "List<>"},
		{"generic", single("Map", single("Int"), &TupleType{Elems: []ParsedType{single("Str"), single("Bool")}}), "Map<Int, (Str, Bool)>"},
		{"empty tuple", &TupleType{}, "()"},
		{"self", SelfType{}, "Self"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestStatementString tests statement rendering
func TestStatementString(t *testing.T) {
	let := &LetStmt{
		Target: &VarName{Name: "x"},
		Type:   &SingleType{Name: "Int"},
		Init:   &StrLit{Value: "hi"},
		Line:   3,
	}
	if got := let.String(); got != `let x: Int = "hi"` {
		t.Errorf("unexpected let rendering %q", got)
	}
	if let.Pos() != 3 {
		t.Errorf("Expected line 3, got %d", let.Pos())
	}

	discard := &DiscardStmt{Expr: &NegExpr{Expr: &IntLit{Value: 4}}, Line: 1}
	if got := discard.String(); got != "-4;" {
		t.Errorf("unexpected discard rendering %q", got)
	}

	tuple := &ExprStmt{Expr: &TupleExpr{Elems: []Expression{&VarExpr{Var: &VarName{Name: "a"}}}}}
	if got := tuple.String(); got != "(a,)" {
		t.Errorf("unexpected tuple rendering %q", got)
	}
}

// TestUnsupported tests that reserved variants are reported
func TestUnsupported(t *testing.T) {
	reserved := []Node{
		&BinaryExpr{},
		&IfExpr{},
		&MatchExpr{},
		&ChainExpr{},
		&FuncExpr{},
		&WhileStmt{},
		&ForStmt{},
		&BreakStmt{},
		&ContinueStmt{},
		&ReturnStmt{},
	}
	for _, n := range reserved {
		err := Unsupported(n)
		if err == nil {
			t.Errorf("%T: expected unsupported error", n)
			continue
		}
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("%T: error does not wrap ErrUnsupported", n)
		}
		if !strings.HasPrefix(n.String(), "<") {
			t.Errorf("%T: unexpected rendering %q", n, n.String())
		}
	}

	supported := []Node{&LetStmt{}, &StrLit{}, NoneLit{}, &SingleType{}}
	for _, n := range supported {
		if err := Unsupported(n); err != nil {
			t.Errorf("%T: unexpected error %v", n, err)
		}
	}
}

// TestEncode tests conversion to generic maps
func TestEncode(t *testing.T) {
	file := &ParsedFile{
		Statements: []Statement{
			&LetStmt{
				Target: &VarName{Name: "m"},
				Type:   single("Map", single("Int")),
				Init:   &NumLit{Value: 1.5},
				Line:   1,
			},
			&DiscardStmt{Expr: &VarExpr{Var: &VarName{Name: "m"}}, Line: 2},
		},
	}

	out, err := Encode(file)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	stmts := out["statements"].([]any)
	if len(stmts) != 2 {
		t.Fatalf("Expected 2 statements, got %d", len(stmts))
	}

	let := stmts[0].(map[string]any)
	if let["kind"] != "let" || let["line"] != 1 {
		t.Errorf("unexpected let encoding %v", let)
	}
	typ := let["type"].(map[string]any)
	args := typ["generic"].([]any)
	if len(args) != 1 {
		t.Fatalf("Expected 1 generic argument, got %d", len(args))
	}
	if _, ok := args[0].(map[string]any)["generic"]; ok {
		t.Errorf("non-generic argument must not carry a generic key")
	}

	if stmts[1].(map[string]any)["kind"] != "discard" {
		t.Errorf("unexpected discard encoding %v", stmts[1])
	}

	file.Statements = append(file.Statements, &ReturnStmt{Line: 3})
	if _, err := Encode(file); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected unsupported error, got %v", err)
	}
}

// TestEncodeEmptyGeneric tests that explicit empty generics survive encoding
func TestEncodeEmptyGeneric(t *testing.T) {
	out := EncodeType(&SingleType{Name: "List", Generic: []ParsedType{}})
	args, ok := out["generic"].([]any)
	if !ok || len(args) != 0 {
		t.Errorf("Expected empty generic list, got %v", out["generic"])
	}
}

// TestInspect tests depth-first traversal
func TestInspect(t *testing.T) {
	file := &ParsedFile{
		Statements: []Statement{
			&LetStmt{
				Target: &VarName{Name: "t"},
				Type:   &TupleType{Elems: []ParsedType{single("Int"), single("Str")}},
				Init: &TupleExpr{Elems: []Expression{
					&IntLit{Value: 1},
					&NegExpr{Expr: &IntLit{Value: 2}},
				}},
				Line: 1,
			},
		},
	}

	var kinds []string
	Inspect(file, func(n Node) bool {
		switch n.(type) {
		case *LetStmt:
			kinds = append(kinds, "let")
		case *IntLit:
			kinds = append(kinds, "int")
		case *NegExpr:
			kinds = append(kinds, "neg")
		}
		return true
	})
	if got := strings.Join(kinds, ","); got != "let,int,neg,int" {
		t.Errorf("unexpected traversal order %q", got)
	}

	// file, let, var, tuple type, 2 single types, tuple expr, int, neg, int
	if n := CountNodes(file); n != 10 {
		t.Errorf("Expected 10 nodes, got %d", n)
	}

	skipped := 0
	Inspect(file, func(n Node) bool {
		skipped++
		_, isLet := n.(*LetStmt)
		return !isLet
	})
	if skipped != 2 {
		t.Errorf("Expected traversal to stop below let, visited %d", skipped)
	}
}

// TestDump tests the debug listing
func TestDump(t *testing.T) {
	file := &ParsedFile{
		Funcs: []FuncDecl{{
			Name:   "id",
			Public: true,
			Func: &ParsedFunc{
				Params:     []Param{{Name: "v", Type: single("Int")}},
				ReturnType: single("Int"),
			},
		}},
		Statements: []Statement{
			&ExprStmt{Expr: &StrLit{Value: "a"}, Line: 7},
		},
	}
	want := "pub fun id(v: Int) Int\n   7  \"a\"\n"
	if got := file.Dump(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
