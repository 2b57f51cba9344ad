// Package ast defines the expression tree produced by pkg/syntax and
// consumed by pkg/types, along with the De Bruijn conversion pass that
// sits between them. It also carries the Span type, so that pkg/syntax
// can depend on pkg/ast in one direction only.
package ast

// Expr is an untyped lambda-calculus expression node. Every concrete
// form below implements it.
type Expr interface {
	// Span reports where in the source buffer this node came from.
	Span() Span
	expr()
}

// Var is a free, single-byte identifier reference.
type Var struct {
	Name byte
	Sp   Span
}

// BoundVar is a positive, 1-based De Bruijn index referring to the k-th
// enclosing lambda binder (or, once out of range, a free numeric slot).
type BoundVar struct {
	Index int
	Sp    Span
}

// NamedLam is a lambda in its parsed, pre-De-Bruijn form: `[p]body` with
// an optional parameter.
type NamedLam struct {
	Param    byte
	HasParam bool
	Body     Expr
	Sp       Span
}

// Lam is an anonymous abstraction in De Bruijn form, the only lambda
// shape the type engine and canonical printer ever see.
type Lam struct {
	Body Expr
	Sp   Span
}

// App is a binary function application.
type App struct {
	Fn, Arg Expr
	Sp      Span
}

func (e *Var) Span() Span      { return e.Sp }
func (e *BoundVar) Span() Span { return e.Sp }
func (e *NamedLam) Span() Span { return e.Sp }
func (e *Lam) Span() Span      { return e.Sp }
func (e *App) Span() Span      { return e.Sp }

func (*Var) expr()      {}
func (*BoundVar) expr() {}
func (*NamedLam) expr() {}
func (*Lam) expr()      {}
func (*App) expr()      {}
