package gesture

import (
	"sync"

	"github.com/lixenwraith/wordchips/core"
)

// Listener receives pointer motion and release from a wide scope
// Attached for the lifetime of one gesture only
type Listener interface {
	PointerMove(p core.Point)
	PointerUp(p core.Point)
}

// Scope attaches listeners at a level wider than the originating chip,
// so a gesture keeps tracking after the pointer leaves the chip
type Scope interface {
	Attach(l Listener) Disposer
}

// Disposer detaches a listener; calling it more than once is a no-op
type Disposer func()

// Once wraps fn so that it runs at most one time
func Once(fn func()) Disposer {
	if fn == nil {
		return func() {}
	}
	var once sync.Once
	return func() { once.Do(fn) }
}
