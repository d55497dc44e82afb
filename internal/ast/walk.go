package ast

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. If f returns false the children of that node are skipped.
// Parsed types are visited as nodes too.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *ParsedFile:
		for _, fn := range n.Funcs {
			inspectFunc(fn.Func, f)
		}
		for _, s := range n.Statements {
			Inspect(s, f)
		}

	// statements
	case *LetStmt:
		Inspect(n.Target, f)
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		Inspect(n.Init, f)
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *DiscardStmt:
		Inspect(n.Expr, f)
	case *WhileStmt:
		Inspect(n.Cond, f)
		inspectList(n.Body, f)
	case *ForStmt:
		Inspect(n.Var, f)
		Inspect(n.Iter, f)
		inspectList(n.Body, f)
	case *ReturnStmt:
		if n.Value != nil {
			Inspect(n.Value, f)
		}

	// expressions
	case *VarExpr:
		Inspect(n.Var, f)
	case *TupleExpr:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	case *ArrayExpr:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	case *ConstructExpr:
		if n.Class.Parsed != nil {
			Inspect(n.Class.Parsed, f)
		}
		for _, fl := range n.Fields {
			Inspect(fl.Init, f)
		}
	case *CastExpr:
		Inspect(n.Expr, f)
		Inspect(n.Target, f)
	case *NegExpr:
		Inspect(n.Expr, f)
	case *NotExpr:
		Inspect(n.Expr, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		for _, op := range n.Ops {
			Inspect(op.RHS, f)
		}
	case *IfExpr:
		Inspect(n.Cond, f)
		inspectList(n.Then, f)
		inspectList(n.Else, f)
	case *MatchExpr:
		Inspect(n.Subject, f)
		for _, arm := range n.Arms {
			Inspect(arm.Pattern, f)
			inspectList(arm.Body, f)
		}
	case *ChainExpr:
		Inspect(n.Receiver, f)
		for _, link := range n.Links {
			for _, a := range link.Args {
				Inspect(a, f)
			}
		}
	case *FuncExpr:
		inspectFunc(n.Func, f)

	// types
	case *SingleType:
		for _, g := range n.Generic {
			Inspect(g, f)
		}
	case *TupleType:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	}
}

func inspectList(stmts []Statement, f func(Node) bool) {
	for _, s := range stmts {
		Inspect(s, f)
	}
}

func inspectFunc(fn *ParsedFunc, f func(Node) bool) {
	if fn == nil {
		return
	}
	for _, p := range fn.Params {
		Inspect(p.Type, f)
	}
	if fn.ReturnType != nil {
		Inspect(fn.ReturnType, f)
	}
	inspectList(fn.Body, f)
}

// CountNodes returns the number of nodes reachable from n.
func CountNodes(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
