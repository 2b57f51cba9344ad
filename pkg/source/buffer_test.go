package source

import (
	"strings"
	"testing"
)

func TestReadSuccess(t *testing.T) {
	buf, err := Read(strings.NewReader("(x y)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", buf.Len())
	}

	if string(buf.Bytes()) != "(x y)" {
		t.Fatalf("Bytes() = %q, want %q", buf.Bytes(), "(x y)")
	}
}

func TestReadUnreadableBangsFault(t *testing.T) {
	t.Setenv("INJECTED_FAULTS", "unreadable-bangs")

	_, err := Read(strings.NewReader("x!y"))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if !strings.HasPrefix(err.Error(), "Error reading") {
		t.Fatalf("error = %q, want prefix %q", err.Error(), "Error reading")
	}
}

func TestReadBangWithoutFaultIsOrdinaryByte(t *testing.T) {
	t.Setenv("INJECTED_FAULTS", "")

	buf, err := Read(strings.NewReader("x!y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(buf.Bytes()) != "x!y" {
		t.Fatalf("Bytes() = %q, want %q", buf.Bytes(), "x!y")
	}
}

func TestReadUnrecognisedFaultIsIgnored(t *testing.T) {
	t.Setenv("INJECTED_FAULTS", "some-other-fault")

	_, err := Read(strings.NewReader("x!y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
