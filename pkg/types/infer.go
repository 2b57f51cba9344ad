package types

import (
	"strconv"
	"strings"

	"github.com/lambdalang/lambda/pkg/ast"
)

// Checker assigns a TV to every free variable and lambda it encounters
// across one or more top-level expressions, sharing free-variable TVs
// between them as spec.md §4.4.4 requires: a free var or a free numeric
// slot referenced by two different top-level expressions resolves to the
// same TV in both. Each lambda gets fresh TVs.
type Checker struct {
	arena *Arena
	free  map[string]ID
}

// NewChecker constructs a checker with a fresh, empty arena.
func NewChecker() *Checker {
	return &Checker{arena: NewArena(), free: make(map[string]ID)}
}

// Arena exposes the underlying arena, chiefly so callers can print it.
func (c *Checker) Arena() *Arena {
	return c.arena
}

// Infer assigns each top-level expression its TV (its free variables
// shared with whatever earlier top-level expressions used them),
// returning one ID per expression in the same order.
func (c *Checker) Infer(prog []ast.Expr) []ID {
	ids := make([]ID, len(prog))
	for i, e := range prog {
		ids[i] = c.infer(e, nil, nil)
	}

	return ids
}

// params holds, innermost-last, the TV of each enclosing lambda's
// parameter, used to resolve a BoundVar within its reach. names holds,
// innermost-last, each enclosing lambda's own TV name, used to derive
// the next nested lambda's parameter name.
func (c *Checker) infer(e ast.Expr, params []ID, names []string) ID {
	switch v := e.(type) {
	case *ast.Var:
		return c.freeSlot(string(rune(v.Name)), strings.ToUpper(string(rune(v.Name))))
	case *ast.BoundVar:
		if v.Index >= 1 && v.Index <= len(params) {
			return params[len(params)-v.Index]
		}

		key := strconv.Itoa(v.Index)
		return c.freeSlot(key, key)
	case *ast.Lam:
		return c.inferLam(v.Body, params, names)
	case *ast.App:
		return c.inferApp(v.Fn, v.Arg, params, names)
	default:
		panic("types.Checker.infer: unknown expression form")
	}
}

func (c *Checker) freeSlot(key, baseName string) ID {
	if id, ok := c.free[key]; ok {
		return id
	}

	id := c.arena.Alloc(baseName)
	c.free[key] = id

	return id
}

func (c *Checker) inferLam(body ast.Expr, params []ID, names []string) ID {
	base := "@"
	if len(names) > 0 {
		base = names[len(names)-1]
	}

	pID := c.arena.Alloc(base)
	lID := c.arena.Alloc(base + "f")

	bodyID := c.infer(body, append(params, pID), append(names, c.arena.NameOf(lID)))

	c.arena.Promote(lID, pID, bodyID)

	return lID
}

// inferApp implements spec.md §4.4.2's function-position rule: the first
// time fn's root is still unbound, it is promoted in place to a function
// shape and a freshly allocated result TV is returned; if it was already
// function-shaped (from an earlier application), the call just unifies
// the existing domain against this argument and reuses the existing
// codomain, allocating nothing new.
func (c *Checker) inferApp(fn, arg ast.Expr, params []ID, names []string) ID {
	fnID := c.infer(fn, params, names)
	argID := c.infer(arg, params, names)

	fnRoot := c.arena.Find(fnID)

	if c.arena.IsUnbound(fnRoot) {
		resultID := c.arena.Alloc(c.arena.NameOf(fnRoot) + "r")
		c.arena.Promote(fnRoot, c.arena.Find(argID), resultID)

		return resultID
	}

	dom, cod := c.arena.Shape(fnRoot)
	c.arena.Unify(dom, argID)

	return cod
}
