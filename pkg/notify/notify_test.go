package notify

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/resswitch/pkg/display"
)

type sent struct {
	title, message string
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestNotifier(window time.Duration) (*Notifier, *fakeClock, func() []sent) {
	var mu sync.Mutex
	var got []sent
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	n := New(window)
	n.now = clock.now
	n.send = func(title, message string) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, sent{title, message})
		return nil
	}
	return n, clock, func() []sent {
		n.Wait()
		mu.Lock()
		defer mu.Unlock()
		return append([]sent(nil), got...)
	}
}

func TestApplyFailedSendsNotification(t *testing.T) {
	n, _, messages := newTestNotifier(DefaultWindow)
	m := display.NewMode(1920, 1080, 60, display.ScalingDefault, nil)

	n.ApplyFailed(m, display.ErrBadMode)

	got := messages()
	if len(got) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(got))
	}
	if got[0].title != appName {
		t.Errorf("title = %q, want %q", got[0].title, appName)
	}
	if !strings.Contains(got[0].message, "1920x1080@60") {
		t.Errorf("message %q missing mode", got[0].message)
	}
	if !strings.Contains(got[0].message, display.ErrBadMode.Error()) {
		t.Errorf("message %q missing error", got[0].message)
	}
}

func TestApplyFailedThrottlesSameMode(t *testing.T) {
	n, clock, messages := newTestNotifier(30 * time.Second)
	a := display.NewMode(1920, 1080, 60, display.ScalingDefault, nil)
	b := display.NewMode(1280, 720, 60, display.ScalingDefault, nil)

	n.ApplyFailed(a, display.ErrBadMode)
	clock.t = clock.t.Add(10 * time.Second)
	n.ApplyFailed(a, display.ErrBadMode) // suppressed
	n.ApplyFailed(b, display.ErrBadMode) // different mode
	clock.t = clock.t.Add(25 * time.Second)
	n.ApplyFailed(a, display.ErrBadMode) // window passed

	if got := len(messages()); got != 3 {
		t.Errorf("sent %d notifications, want 3", got)
	}
}

func TestApplyFailedSendErrorIsLogged(t *testing.T) {
	n := New(DefaultWindow)
	called := make(chan struct{}, 1)
	n.send = func(string, string) error {
		called <- struct{}{}
		return errors.New("no notification daemon")
	}

	n.ApplyFailed(display.NewMode(800, 600, 60, display.ScalingDefault, nil), display.ErrChangeFailed)
	n.Wait()

	select {
	case <-called:
	default:
		t.Fatal("send was not called")
	}
}

func TestShouldSendCleansUpOldEntries(t *testing.T) {
	n := New(time.Minute)
	base := time.Now()

	for i := range maxTracked + 1 {
		n.shouldSend(strings.Repeat("x", i+1), base)
	}
	// All earlier keys are now outside the window and get dropped.
	n.shouldSend("fresh", base.Add(2*time.Minute))

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.last) != 1 {
		t.Errorf("tracked %d keys after cleanup, want 1", len(n.last))
	}
}
