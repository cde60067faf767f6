//go:build linux || freebsd || openbsd || netbsd || dragonfly || solaris || illumos || aix

// Package x11tray makes sure a StatusNotifier tray host is reachable over
// the DBus session bus, starting the snixembed bridge for desktops that only
// offer a legacy XEmbed tray.
package x11tray

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	watcherName   = "org.kde.StatusNotifierWatcher"
	itemPrefix    = "org.kde.StatusNotifierItem-"
	itemPath      = "/StatusNotifierItem"
	proxyBinary   = "snixembed"
	proxySettle   = 100 * time.Millisecond
	proxyDeadline = 2 * time.Second
)

// ErrNoWatcher means nothing on the session bus hosts tray icons.
var ErrNoWatcher = errors.New("no StatusNotifierWatcher on the session bus")

// busNames returns the names currently owned on the session bus.
func busNames() ([]string, *dbus.Conn, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, nil, fmt.Errorf("connect session bus: %w", err)
	}
	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		closeConn(conn)
		return nil, nil, fmt.Errorf("list bus names: %w", err)
	}
	return names, conn, nil
}

func closeConn(conn *dbus.Conn) {
	if err := conn.Close(); err != nil {
		slog.Debug("[TRAY] Failed to close DBus connection", "error", err)
	}
}

// HealthCheck reports whether a tray host is registered on the session bus.
func HealthCheck() error {
	names, conn, err := busNames()
	if err != nil {
		return err
	}
	closeConn(conn)

	if !slices.Contains(names, watcherName) {
		return ErrNoWatcher
	}
	return nil
}

// ProxyProcess is a snixembed process started by TryProxy.
type ProxyProcess struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
}

// Stop kills the proxy. It is safe on a nil or partially built value.
func (p *ProxyProcess) Stop() error {
	if p == nil {
		return nil
	}
	if p.cancel != nil {
		p.cancel()
	}
	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill %s: %w", proxyBinary, err)
	}
	return nil
}

// TryProxy starts snixembed and waits until it has registered as the
// watcher. The caller owns the returned process.
func TryProxy(ctx context.Context) (*ProxyProcess, error) {
	path, err := exec.LookPath(proxyBinary)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH (install it with your package manager): %w", proxyBinary, err)
	}

	proxyCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(proxyCtx, path)
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", proxyBinary, err)
	}
	proxy := &ProxyProcess{cmd: cmd, cancel: cancel}
	slog.Info("[TRAY] Started tray proxy", "path", path, "pid", cmd.Process.Pid)

	if err := waitForWatcher(proxyCtx); err != nil {
		if stopErr := proxy.Stop(); stopErr != nil {
			slog.Debug("[TRAY] Failed to stop tray proxy", "error", stopErr)
		}
		return nil, fmt.Errorf("%s started but no tray appeared: %w", proxyBinary, err)
	}
	return proxy, nil
}

func waitForWatcher(ctx context.Context) error {
	deadline := time.NewTimer(proxyDeadline)
	defer deadline.Stop()
	tick := time.NewTicker(proxySettle)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return HealthCheck()
		case <-tick.C:
			if HealthCheck() == nil {
				return nil
			}
		}
	}
}

// EnsureTray returns nil, nil when a native tray host exists, or a running
// proxy when one had to be started.
func EnsureTray(ctx context.Context) (*ProxyProcess, error) {
	err := HealthCheck()
	if err == nil {
		slog.Debug("[TRAY] Native tray host available")
		return nil, nil //nolint:nilnil // no proxy needed
	}
	slog.Warn("[TRAY] No tray host found, trying proxy", "error", err)

	proxy, err := TryProxy(ctx)
	if err != nil {
		return nil, fmt.Errorf("system tray unavailable: %w", err)
	}
	return proxy, nil
}

// itemName finds the StatusNotifierItem this process registered.
func itemName(names []string, pid int) (string, bool) {
	prefix := itemPrefix + strconv.Itoa(pid) + "-"
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			return name, true
		}
	}
	return "", false
}

// ShowContextMenu asks the tray host to pop up our menu. StatusNotifierItem
// click callbacks carry no menu handle, so this goes through DBus instead.
func ShowContextMenu() {
	names, conn, err := busNames()
	if err != nil {
		slog.Warn("[TRAY] Cannot show menu", "error", err)
		return
	}
	defer closeConn(conn)

	name, ok := itemName(names, os.Getpid())
	if !ok {
		slog.Warn("[TRAY] Tray item not registered", "pid", os.Getpid())
		return
	}

	obj := conn.Object(name, itemPath)
	for _, method := range []string{"ContextMenu", "SecondaryActivate"} {
		call := obj.Call("org.kde.StatusNotifierItem."+method, 0, int32(0), int32(0))
		if call.Err == nil {
			slog.Debug("[TRAY] Menu requested", "method", method)
			return
		}
		slog.Debug("[TRAY] Menu request failed", "method", method, "error", call.Err)
	}
	slog.Warn("[TRAY] Tray host refused to show the menu; right-click the icon instead")
}
