package ast

import "fmt"

// Encode converts a parsed file to plain maps and slices so it can be
// written with any generic encoder (JSON, YAML). Each node becomes a map
// with a "kind" key. Reserved node kinds produce an *UnsupportedError.
func Encode(f *ParsedFile) (map[string]any, error) {
	stmts := make([]any, 0, len(f.Statements))
	for _, s := range f.Statements {
		v, err := encodeStmt(s)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, v)
	}

	funcs := make([]any, 0, len(f.Funcs))
	for _, fn := range f.Funcs {
		v, err := encodeFunc(fn)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, v)
	}

	return map[string]any{
		"index":      f.Index,
		"funcs":      funcs,
		"statements": stmts,
	}, nil
}

func encodeFunc(fn FuncDecl) (map[string]any, error) {
	params := make([]any, len(fn.Func.Params))
	for i, p := range fn.Func.Params {
		params[i] = map[string]any{"name": p.Name, "type": EncodeType(p.Type)}
	}
	body := make([]any, 0, len(fn.Func.Body))
	for _, s := range fn.Func.Body {
		v, err := encodeStmt(s)
		if err != nil {
			return nil, err
		}
		body = append(body, v)
	}
	out := map[string]any{
		"name":   fn.Name,
		"public": fn.Public,
		"params": params,
		"body":   body,
	}
	if fn.Func.ReturnType != nil {
		out["return"] = EncodeType(fn.Func.ReturnType)
	}
	return out, nil
}

func encodeStmt(s Statement) (map[string]any, error) {
	switch s := s.(type) {
	case *LetStmt:
		init, err := encodeExpr(s.Init)
		if err != nil {
			return nil, err
		}
		out := map[string]any{
			"kind":   "let",
			"line":   s.Line,
			"target": encodeVar(s.Target),
			"init":   init,
		}
		if s.Type != nil {
			out["type"] = EncodeType(s.Type)
		}
		return out, nil
	case *ExprStmt:
		e, err := encodeExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{"kind": "expr", "line": s.Line, "expr": e}, nil
	case *DiscardStmt:
		e, err := encodeExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{"kind": "discard", "line": s.Line, "expr": e}, nil
	case *WhileStmt, *ForStmt, *BreakStmt, *ContinueStmt, *ReturnStmt:
		return nil, Unsupported(s)
	default:
		return nil, fmt.Errorf("unknown statement %T", s)
	}
}

func encodeExpr(e Expression) (map[string]any, error) {
	switch e := e.(type) {
	case NoneLit:
		return map[string]any{"kind": "none"}, nil
	case *IntLit:
		return map[string]any{"kind": "int", "value": e.Value}, nil
	case *NumLit:
		return map[string]any{"kind": "num", "value": e.Value}, nil
	case *CharLit:
		return map[string]any{"kind": "char", "value": string(e.Value)}, nil
	case *BoolLit:
		return map[string]any{"kind": "bool", "value": e.Value}, nil
	case *StrLit:
		return map[string]any{"kind": "str", "value": e.Value}, nil
	case *VarExpr:
		return map[string]any{"kind": "var", "var": encodeVar(e.Var)}, nil
	case *TupleExpr:
		elems, err := encodeExprs(e.Elems)
		if err != nil {
			return nil, err
		}
		return map[string]any{"kind": "tuple", "elems": elems}, nil
	case *ArrayExpr:
		elems, err := encodeExprs(e.Elems)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"kind":  "array",
			"elems": elems,
			"elem":  e.Elem.String(),
			"queue": e.IsQueue,
		}, nil
	case *ConstructExpr:
		fields := make([]any, len(e.Fields))
		for i, fl := range e.Fields {
			init, err := encodeExpr(fl.Init)
			if err != nil {
				return nil, err
			}
			fields[i] = map[string]any{"name": fl.Name, "basic": fl.Basic.String(), "init": init}
		}
		return map[string]any{"kind": "construct", "class": e.Class.String(), "fields": fields}, nil
	case *CastExpr:
		inner, err := encodeExpr(e.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"kind":     "cast",
			"expr":     inner,
			"target":   EncodeType(e.Target),
			"resolved": e.Resolved.String(),
		}, nil
	case *NegExpr:
		inner, err := encodeExpr(e.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{"kind": "neg", "expr": inner}, nil
	case *NotExpr:
		inner, err := encodeExpr(e.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{"kind": "not", "expr": inner}, nil
	case *BinaryExpr, *IfExpr, *MatchExpr, *ChainExpr, *FuncExpr:
		return nil, Unsupported(e)
	default:
		return nil, fmt.Errorf("unknown expression %T", e)
	}
}

func encodeExprs(exprs []Expression) ([]any, error) {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		v, err := encodeExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func encodeVar(v Var) map[string]any {
	switch v := v.(type) {
	case *VarName:
		return map[string]any{"kind": "name", "name": v.Name}
	case *LocalVar:
		return map[string]any{"kind": "local", "basic": v.Basic.String(), "slot": v.Slot, "depth": v.Depth}
	case *StaticVar:
		return map[string]any{"kind": "static", "basic": v.Basic.String(), "slot": v.Slot}
	case *TypeRef:
		return map[string]any{"kind": v.Kind.String(), "index": v.Index}
	case *DirectFn:
		return map[string]any{"kind": "fn", "index": v.Index}
	default:
		return map[string]any{"kind": fmt.Sprintf("%T", v)}
	}
}

// EncodeType converts a parsed type to plain maps. A non-generic SingleType
// has no "generic" key; an explicitly empty argument list encodes as an
// empty slice.
func EncodeType(t ParsedType) map[string]any {
	switch t := t.(type) {
	case *SingleType:
		out := map[string]any{"kind": "single", "name": t.Name}
		if t.Generic != nil {
			args := make([]any, len(t.Generic))
			for i, g := range t.Generic {
				args[i] = EncodeType(g)
			}
			out["generic"] = args
		}
		return out
	case *TupleType:
		elems := make([]any, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = EncodeType(e)
		}
		return map[string]any{"kind": "tuple", "elems": elems}
	case SelfType:
		return map[string]any{"kind": "self"}
	default:
		return map[string]any{"kind": fmt.Sprintf("%T", t)}
	}
}
