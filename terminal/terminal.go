package terminal

import (
	"fmt"
	"os"
)

// Display is the terminal collaborator of the render loop
type Display interface {
	// Init prepares the terminal and clears the screen once
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions, 0,0 if unknown
	Size() (width, height int)

	// Present homes the cursor and writes one frame
	Present(frame []byte) error

	// Done is closed when the user asks to quit, nil if the backend has no input
	Done() <-chan struct{}
}

// Backend names a Display implementation
type Backend string

const (
	BackendANSI  Backend = "ansi"
	BackendTcell Backend = "tcell"
)

// ParseBackend validates a backend name
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendANSI, BackendTcell:
		return Backend(s), nil
	default:
		return "", fmt.Errorf("unknown backend %q (want %s or %s)", s, BackendANSI, BackendTcell)
	}
}

// New creates an uninitialized Display for the backend on stdout
func New(b Backend) (Display, error) {
	switch b {
	case BackendANSI:
		return NewANSI(os.Stdout), nil
	case BackendTcell:
		return NewTcell(nil), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", b)
	}
}
