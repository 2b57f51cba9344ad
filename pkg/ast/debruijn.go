package ast

// binder records one enclosing lambda's parameter for the purposes of
// resolving a Var to a De Bruijn index. An empty-parameter lambda still
// occupies a slot (it still counts toward binder depth for any literal
// numeric index inside it) but has nothing a Var can match against.
type binder struct {
	name byte
	has  bool
}

// ToDeBruijn rewrites every NamedLam in e into an anonymous Lam,
// replacing free occurrences of each parameter within its body with the
// corresponding BoundVar. Numeric indices already present in the source
// (parsed directly as BoundVar) are left untouched; they were validated
// against the literal `0` case at parse time and may legitimately refer
// past the number of enclosing binders.
func ToDeBruijn(e Expr) Expr {
	return convert(e, nil)
}

func convert(e Expr, env []binder) Expr {
	switch v := e.(type) {
	case *Var:
		for i := len(env) - 1; i >= 0; i-- {
			if env[i].has && env[i].name == v.Name {
				return &BoundVar{Index: len(env) - i, Sp: v.Sp}
			}
		}

		return v
	case *BoundVar:
		return v
	case *App:
		return &App{Fn: convert(v.Fn, env), Arg: convert(v.Arg, env), Sp: v.Sp}
	case *NamedLam:
		b := binder{}
		if v.HasParam {
			b = binder{name: v.Param, has: true}
		}

		return &Lam{Body: convert(v.Body, append(env, b)), Sp: v.Sp}
	case *Lam:
		return &Lam{Body: convert(v.Body, append(env, binder{})), Sp: v.Sp}
	default:
		panic("ast.ToDeBruijn: unknown expression form")
	}
}
