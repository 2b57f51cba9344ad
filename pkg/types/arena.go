// Package types implements the type engine: a union-find arena of type
// variables (TVs), unification with no occurs-check, stable name
// assignment, and a cycle-safe printer for the resulting (possibly
// recursive) type graph.
package types

import "strconv"

// ID identifies a type variable within an Arena.
type ID int

type shape struct {
	isFunction bool
	dom, cod   ID
}

// Arena is a dense array of type variables, each either unbound or
// function-shaped, linked by a union-find parent array. It is the only
// piece of mutable state the type engine needs; every TV it ever
// allocates remains reachable from it for the program's lifetime.
type Arena struct {
	parent []ID
	shapes []shape
	names  []string
	used   map[string]bool
	order  []ID
}

// NewArena constructs an empty arena.
func NewArena() *Arena {
	return &Arena{used: make(map[string]bool)}
}

// Alloc allocates a fresh, initially-unbound TV. If base collides with an
// already-assigned name, the smallest unused decimal suffix is appended;
// this only matters for the lambda-parameter naming scheme, since every
// other name in this engine is derived from the program's own structure
// and cannot collide.
func (a *Arena) Alloc(base string) ID {
	name := a.freshName(base)
	id := ID(len(a.parent))
	a.parent = append(a.parent, id)
	a.shapes = append(a.shapes, shape{})
	a.names = append(a.names, name)
	a.order = append(a.order, id)
	a.used[name] = true

	return id
}

func (a *Arena) freshName(base string) string {
	if !a.used[base] {
		return base
	}

	for i := 2; ; i++ {
		cand := base + strconv.Itoa(i)
		if !a.used[cand] {
			return cand
		}
	}
}

// Find returns the root of id, compressing the path it walked.
func (a *Arena) Find(id ID) ID {
	root := id
	for a.parent[root] != root {
		root = a.parent[root]
	}

	for a.parent[id] != root {
		a.parent[id], id = root, a.parent[id]
	}

	return root
}

// NameOf returns the name a TV was given at allocation time. This never
// changes, even once the TV stops being a root: an alias keeps its
// original name for the purposes of the printer's alias check.
func (a *Arena) NameOf(id ID) string {
	return a.names[id]
}

// IsUnbound reports whether id's root currently carries no function
// shape.
func (a *Arena) IsUnbound(id ID) bool {
	return !a.shapes[a.Find(id)].isFunction
}

// Promote binds an unbound root in place to a function shape (dom, cod).
// It must only be called on a TV whose root is still unbound.
func (a *Arena) Promote(id ID, dom, cod ID) {
	root := a.Find(id)
	a.shapes[root] = shape{isFunction: true, dom: dom, cod: cod}
}

// Shape returns the function shape of id's root. The caller must know
// the root is function-shaped (see IsUnbound).
func (a *Arena) Shape(id ID) (dom, cod ID) {
	s := a.shapes[a.Find(id)]
	return s.dom, s.cod
}

// Unify merges a and b, following spec.md §4.4.2: equal roots are a
// no-op; an unbound root always yields to a bound one; two unbound roots
// merge keeping the older (lower ID) as survivor; two function-shaped
// roots merge (older survives) and then recurse structurally on their
// domains and codomains. No occurs-check is performed — a cycle created
// here is a legal equi-recursive type, resolved only at print time.
func (a *Arena) Unify(x, y ID) {
	rx, ry := a.Find(x), a.Find(y)
	if rx == ry {
		return
	}

	xBound := a.shapes[rx].isFunction
	yBound := a.shapes[ry].isFunction

	switch {
	case !xBound && !yBound:
		older, younger := olderYounger(rx, ry)
		a.parent[younger] = older
	case !xBound:
		a.parent[rx] = ry
	case !yBound:
		a.parent[ry] = rx
	default:
		older, younger := olderYounger(rx, ry)
		od, oc := a.shapes[older].dom, a.shapes[older].cod
		yd, yc := a.shapes[younger].dom, a.shapes[younger].cod
		a.parent[younger] = older
		a.Unify(od, yd)
		a.Unify(oc, yc)
	}
}

func olderYounger(x, y ID) (older, younger ID) {
	if x < y {
		return x, y
	}

	return y, x
}
