// Package source reads the program's single input (standard input) into
// memory and exposes the fault-injection hook the test harness uses to
// simulate a read failure.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Origin is the fixed name used in every diagnostic that cites a byte
// offset into the program's input.
const Origin = "STDIN"

// faultUnreadableBangs is the only recognised entry in INJECTED_FAULTS:
// it treats any '!' byte read from stdin as an I/O failure.
const faultUnreadableBangs = "unreadable-bangs"

// Buffer is the immutable byte slice read from standard input.
type Buffer struct {
	bytes []byte
}

// Bytes returns the buffer's contents.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// Len returns the number of bytes read.
func (b *Buffer) Len() int {
	return len(b.bytes)
}

// Read consumes all of r, honouring whichever faults are named in the
// INJECTED_FAULTS environment variable. On a simulated or genuine read
// failure it returns an error whose message begins with "Error reading",
// matching spec.md's diagnostic contract.
func Read(r io.Reader) (*Buffer, error) {
	faults := parseFaults(os.Getenv("INJECTED_FAULTS"))

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Error reading %s: %s", Origin, err)
	}

	if faults[faultUnreadableBangs] {
		if i := bytes.IndexByte(data, '!'); i >= 0 {
			return nil, fmt.Errorf("Error reading %s: injected fault %q at byte %d", Origin, faultUnreadableBangs, i)
		}
	}

	return &Buffer{bytes: data}, nil
}

func parseFaults(env string) map[string]bool {
	faults := make(map[string]bool)

	for _, name := range strings.Split(env, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			faults[name] = true
		}
	}

	return faults
}
