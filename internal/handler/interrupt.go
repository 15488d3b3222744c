package handler

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/passgen/passgen-go/internal/display"
)

// ExitWindow is how long a first Ctrl+C stays armed.
const ExitWindow = 5 * time.Second

// InterruptGuard requires two Ctrl+C presses within ExitWindow before exiting.
type InterruptGuard struct {
	mu      sync.Mutex
	last    time.Time
	now     func() time.Time
	display *display.Display
}

// NewInterruptGuard creates an InterruptGuard that reports through d.
func NewInterruptGuard(d *display.Display) *InterruptGuard {
	return &InterruptGuard{now: time.Now, display: d}
}

// Interrupt records one Ctrl+C press and reports whether the process should exit.
func (g *InterruptGuard) Interrupt() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) <= ExitWindow {
		g.display.PrintInfo("Exiting...")
		return true
	}

	g.last = now
	g.display.PrintInfo("Press Ctrl+C again within 5 seconds to exit")
	return false
}

// Watch handles signals from sigs until ctx is done, calling exit(1) on a
// confirmed interrupt.
func (g *InterruptGuard) Watch(ctx context.Context, sigs <-chan os.Signal, exit func(code int)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigs:
			if g.Interrupt() {
				exit(1)
				return
			}
		}
	}
}
