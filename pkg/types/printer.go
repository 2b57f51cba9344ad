package types

import "strings"

// PrintAll renders one line per distinct named TV, in allocation order,
// skipping any TV whose root has since taken on a different primary
// name (an alias folded into an older or otherwise-surviving TV).
func (a *Arena) PrintAll() []string {
	lines := make([]string, 0, len(a.order))

	for _, id := range a.order {
		root := a.Find(id)
		if a.names[root] != a.names[id] {
			continue
		}

		lines = append(lines, a.renderTop(id))
	}

	return lines
}

func (a *Arena) renderTop(id ID) string {
	return a.render(id, map[ID]bool{})
}

// render expands a single TV reference into text, using a stack that is
// fresh for every top-level call: a TV already on the current line's
// stack is a back-edge (printed bare, no expansion); a TV whose own name
// no longer matches its root's primary name is an alias (also printed
// bare, regardless of back-edge status); anything else expands normally.
func (a *Arena) render(id ID, stack map[ID]bool) string {
	root := a.Find(id)

	if stack[root] {
		return a.names[root]
	}

	if a.names[id] != a.names[root] {
		return a.names[id]
	}

	stack[root] = true

	var out string

	if !a.shapes[root].isFunction {
		out = a.names[root]
	} else {
		var b strings.Builder
		b.WriteString(a.names[root])
		b.WriteString("=(")
		b.WriteString(a.render(a.shapes[root].dom, stack))
		b.WriteByte(' ')
		b.WriteString(a.render(a.shapes[root].cod, stack))
		b.WriteByte(')')
		out = b.String()
	}

	delete(stack, root)

	return out
}
