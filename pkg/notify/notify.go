// Package notify shows desktop notifications when a display mode could not
// be applied, suppressing repeats for the same mode within a window.
package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/resswitch/pkg/display"
	"github.com/gen2brain/beeep"
)

const (
	// DefaultWindow is how long a failure for the same mode stays quiet.
	DefaultWindow = 30 * time.Second

	appName    = "Resolution Switcher"
	maxTracked = 64
)

// Notifier sends throttled failure notifications. Safe for concurrent use.
type Notifier struct {
	last   map[string]time.Time
	send   func(title, message string) error
	now    func() time.Time
	wg     sync.WaitGroup
	mu     sync.Mutex
	window time.Duration
}

// New creates a Notifier backed by the desktop notification service.
func New(window time.Duration) *Notifier {
	return &Notifier{
		last:   make(map[string]time.Time),
		window: window,
		now:    time.Now,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// ApplyFailed reports that m could not be applied. It returns immediately;
// the notification is delivered on its own goroutine.
func (n *Notifier) ApplyFailed(m display.Mode, err error) {
	key := m.String()
	if !n.shouldSend(key, n.now()) {
		slog.Debug("[NOTIFY] Suppressing repeated failure notification", "mode", key)
		return
	}

	title := appName
	message := fmt.Sprintf("Could not switch to %s: %v", key, err)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.send(title, message); err != nil {
			slog.Warn("[NOTIFY] Failed to send notification", "mode", key, "error", err)
		}
	}()
}

// Wait blocks until in-flight notifications have been handed off.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// shouldSend reports whether key is outside the quiet window and records t.
func (n *Notifier) shouldSend(key string, t time.Time) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if last, ok := n.last[key]; ok && t.Sub(last) < n.window {
		return false
	}
	n.last[key] = t

	if len(n.last) > maxTracked {
		cutoff := t.Add(-n.window)
		for k, ts := range n.last {
			if ts.Before(cutoff) {
				delete(n.last, k)
			}
		}
	}
	return true
}
