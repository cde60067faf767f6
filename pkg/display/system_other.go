//go:build !windows

package display

import "fmt"

// System reports an empty mode table outside Windows so the tray still
// starts with only its Quit item.
type System struct{}

// Mode implements Source.
func (System) Mode(uint32) (Mode, bool) {
	return Mode{}, false
}

// Current implements the Windows API shape; no mode is ever active here.
func (System) Current() (Mode, bool) {
	return Mode{}, false
}

// Apply always fails with ErrUnsupported.
func (System) Apply(m Mode) error {
	return fmt.Errorf("apply %s: %w", m, ErrUnsupported)
}
