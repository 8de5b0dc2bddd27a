package app

import (
	"time"

	"github.com/soocke/viewfinder-go/domain/overlay"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// tkScheduler posts callbacks onto Tk's event loop, so renderer timers and
// paints run on the same thread as widget updates.
type tkScheduler struct{}

func (tkScheduler) After(d time.Duration, fn func()) overlay.Cancel {
	id := TclAfter(d, fn)
	return func() { TclAfterCancel(id) }
}
