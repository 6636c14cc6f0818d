//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; tcell restores its own state
func resetTerminalMode() {}
