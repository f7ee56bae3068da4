package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
)

// SetCrashScreen registers the screen restored by HandleCrash
func SetCrashScreen(scr tcell.Screen) {
	crashMu.Lock()
	crashScreen = scr
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack and exits.
// Call it from a deferred recover.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	scr := crashScreen
	crashScreen = nil
	crashMu.Unlock()
	if scr != nil {
		scr.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn in a new goroutine whose panics restore the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
