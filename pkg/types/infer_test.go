package types

import (
	"testing"

	"github.com/lambdalang/lambda/pkg/ast"
	"github.com/lambdalang/lambda/pkg/syntax"
)

func parse(t *testing.T, src string) []ast.Expr {
	t.Helper()

	prog, errs := syntax.ParseProgram([]byte(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}

	for i, e := range prog {
		prog[i] = ast.ToDeBruijn(e)
	}

	return prog
}

func typeLines(t *testing.T, src string) []string {
	t.Helper()

	c := NewChecker()
	c.Infer(parse(t, src))

	return c.Arena().PrintAll()
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}

	return false
}

// Input `(x y)` with --type → `X=(Y Xr)`, `Y`, `Xr`.
func TestTypeOneStepApplication(t *testing.T) {
	lines := typeLines(t, "(x y)")

	want := []string{"X=(Y Xr)", "Y", "Xr"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}

	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

// Input `n (a x) (y a) (y b) (b x)` with --type → B and Br absent;
// A=(X Ar), Y=(A=(X Ar) Yr), and the full nested N line.
func TestTypeReappliedFunctionSuppressesLaterAlias(t *testing.T) {
	lines := typeLines(t, "n (a x) (y a) (y b) (b x)")

	if contains(lines, "B") {
		t.Fatalf("B should be suppressed (aliased into A): %v", lines)
	}

	for _, name := range []string{"Br", "Brr"} {
		if contains(lines, name) {
			t.Fatalf("%s should never be allocated: %v", name, lines)
		}
	}

	if !contains(lines, "A=(X Ar)") {
		t.Fatalf("missing A=(X Ar): %v", lines)
	}

	if !contains(lines, "Y=(A=(X Ar) Yr)") {
		t.Fatalf("missing Y=(A=(X Ar) Yr): %v", lines)
	}

	want := "N=(Ar Nr=(Yr Nrr=(Yr Nrrr=(Ar Nrrrr))))"
	if !contains(lines, want) {
		t.Fatalf("missing %q: %v", want, lines)
	}
}

// Input `n (x a) (x b) (a b)` with --type → A=(A Ar) (self-recursive),
// X=(A=(A Ar) Xr); B absent.
func TestTypeSelfRecursiveFunction(t *testing.T) {
	lines := typeLines(t, "n (x a) (x b) (a b)")

	if contains(lines, "B") {
		t.Fatalf("B should be suppressed: %v", lines)
	}

	if !contains(lines, "A=(A Ar)") {
		t.Fatalf("missing A=(A Ar): %v", lines)
	}

	if !contains(lines, "X=(A=(A Ar) Xr)") {
		t.Fatalf("missing X=(A=(A Ar) Xr): %v", lines)
	}
}

// Input `n (a b) (b c) (c d) (d a)` with --type → a four-step indirect
// recursive loop, rotated to start from each of A, B, C, D in turn.
func TestTypeFourStepIndirectLoop(t *testing.T) {
	lines := typeLines(t, "n (a b) (b c) (c d) (d a)")

	want := "A=(B=(C=(D=(A Dr) Cr) Br) Ar)"
	if !contains(lines, want) {
		t.Fatalf("missing %q: %v", want, lines)
	}

	for _, rotation := range []string{"B", "C", "D"} {
		found := false

		for _, l := range lines {
			if len(l) > len(rotation) && l[:len(rotation)+1] == rotation+"=" {
				found = true
			}
		}

		if !found {
			t.Fatalf("missing rotation starting at %s: %v", rotation, lines)
		}
	}
}

// Free variables are shared across distinct top-level expressions run
// through the same Checker (§4.4.4): this is exercised directly at the
// Checker level, since the grammar's left-associative application means
// two bare, adjacent atoms parse as one applied expression rather than
// two top-level ones.
func TestTypeSharedAcrossTopLevelExpressions(t *testing.T) {
	c := NewChecker()

	prog := []ast.Expr{
		&ast.Var{Name: 'x', Sp: ast.NewSpan(0, 1)},
		&ast.Var{Name: 'x', Sp: ast.NewSpan(2, 3)},
	}

	ids := c.Infer(prog)
	if len(ids) != 2 {
		t.Fatalf("got %d top-level ids, want 2", len(ids))
	}

	if c.Arena().Find(ids[0]) != c.Arena().Find(ids[1]) {
		t.Fatalf("two top-level references to the same free var must share a root")
	}
}

func TestTypeUnboundVarPrintsBareName(t *testing.T) {
	lines := typeLines(t, "x")

	want := []string{"X"}
	if len(lines) != 1 || lines[0] != want[0] {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
}
