package command

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/codeGROOVE-dev/resswitch/pkg/display"
)

// DefaultPollInterval bounds how long the loop sleeps between wakeups.
const DefaultPollInterval = 10 * time.Millisecond

// Loop is the single consumer of a Channel.
type Loop struct {
	applier display.Applier
	recv    <-chan Command

	// OnApplyError, if set, is called after a failed apply. It runs on the
	// loop goroutine and must not block.
	OnApplyError func(m display.Mode, err error)

	// OnApplied, if set, is called after a successful apply.
	OnApplied func(m display.Mode)

	// OnIdle, if set, runs on every poll wakeup without a command.
	OnIdle func()

	poll time.Duration
}

// NewLoop creates a loop reading from recv and applying modes with applier.
// A non-positive poll falls back to DefaultPollInterval.
func NewLoop(recv <-chan Command, applier display.Applier, poll time.Duration) *Loop {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Loop{recv: recv, applier: applier, poll: poll}
}

// Run processes commands until Quit arrives, the channel is closed, or ctx
// is done. It returns nil for the first two and ctx.Err() otherwise.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()
	slog.Info("[LOOP] Control loop started", "poll", l.poll)

	for {
		select {
		case cmd, ok := <-l.recv:
			if !ok {
				slog.Warn("[LOOP] Command channel closed, treating as quit")
				return nil
			}
			if cmd.Kind == KindQuit {
				slog.Info("[LOOP] Quit received")
				return nil
			}
			l.apply(cmd.Mode)
		case <-ticker.C:
			if l.OnIdle != nil {
				l.OnIdle()
			}
		case <-ctx.Done():
			slog.Info("[LOOP] Control loop stopping due to context cancellation")
			return ctx.Err()
		}
	}
}

func (l *Loop) apply(m display.Mode) {
	start := time.Now()
	err := safeApply(l.applier, m)
	if err != nil {
		slog.Warn("[LOOP] Display mode change failed", "mode", m.String(), "error", err, "duration", time.Since(start))
		if l.OnApplyError != nil {
			l.OnApplyError(m, err)
		}
		return
	}
	slog.Info("[LOOP] Display mode applied", "mode", m.String(), "duration", time.Since(start))
	if l.OnApplied != nil {
		l.OnApplied(m)
	}
}

// safeApply turns a panic inside the OS call into an error.
func safeApply(a display.Applier, m display.Mode) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			slog.Error("[LOOP] Panic recovered while applying mode",
				"mode", m.String(),
				"panic", r,
				"stack", string(stack))
			err = fmt.Errorf("panic applying %s: %v", m, r)
		}
	}()
	return a.Apply(m)
}
