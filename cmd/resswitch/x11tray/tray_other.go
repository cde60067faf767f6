//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris && !illumos && !aix

package x11tray

import "context"

// HealthCheck is always nil; Windows and macOS always have a tray.
func HealthCheck() error {
	return nil
}

// ProxyProcess is never started on this platform.
type ProxyProcess struct{}

// Stop does nothing.
func (*ProxyProcess) Stop() error {
	return nil
}

// TryProxy has nothing to start and returns nil, nil.
func TryProxy(context.Context) (*ProxyProcess, error) {
	return nil, nil //nolint:nilnil // no proxy on this platform
}

// EnsureTray always succeeds without a proxy.
func EnsureTray(context.Context) (*ProxyProcess, error) {
	return nil, nil //nolint:nilnil // no proxy on this platform
}

// ShowContextMenu does nothing; systray opens the menu itself here.
func ShowContextMenu() {}
