package ast

import "strconv"

// Print renders an expression in its canonical textual form: Var(x) as
// x, BoundVar(k) as k, App(f,a) as (f a) with parens always present, and
// Lam(body) as []body. A bare atom at the top level naturally prints
// without wrapping parens, since nothing here adds any.
func Print(e Expr) string {
	switch v := e.(type) {
	case *Var:
		return string(rune(v.Name))
	case *BoundVar:
		return strconv.Itoa(v.Index)
	case *Lam:
		return "[]" + Print(v.Body)
	case *NamedLam:
		param := ""
		if v.HasParam {
			param = string(rune(v.Param))
		}

		return "[" + param + "]" + Print(v.Body)
	case *App:
		return "(" + Print(v.Fn) + " " + Print(v.Arg) + ")"
	default:
		panic("ast.Print: unknown expression form")
	}
}
