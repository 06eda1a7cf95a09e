package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	restoreMu sync.Mutex
	restoreFn func()
	crashOut  io.Writer = os.Stderr
	exit                = os.Exit
)

// SetRestore registers the terminal restore hook run before a crash report
func SetRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// Restore runs the registered hook and unregisters it; later calls are no-ops
// Use as the normal-exit teardown so a crash after it does not restore twice
func Restore() {
	restoreMu.Lock()
	fn := restoreFn
	restoreFn = nil
	restoreMu.Unlock()
	if fn != nil {
		fn()
	}
}

// HandleCrash restores the terminal, prints the panic value with its stack and exits
// Use as: defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	Restore()

	// \r\n in case the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mWORDCHIPS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}
