// Package display enumerates and applies display modes of the default
// display device.
//
// Modes are snapshots: each carries the exact OS record it was read from,
// so applying a Mode later replays what enumeration returned.
package display

import (
	"errors"
	"strconv"
)

// Scaling describes how a lower resolution is presented on a fixed-output panel.
type Scaling int

const (
	ScalingDefault Scaling = iota
	ScalingStretch
	ScalingCenter
	ScalingUnknown
)

func (s Scaling) String() string {
	switch s {
	case ScalingDefault:
		return "default"
	case ScalingStretch:
		return "stretch"
	case ScalingCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Errors returned by Applier implementations.
var (
	ErrUnsupported     = errors.New("display mode changes not supported on this platform")
	ErrBadMode         = errors.New("display mode not supported by device")
	ErrRestartRequired = errors.New("computer must be restarted for the mode to apply")
	ErrNotUpdated      = errors.New("unable to write display settings")
	ErrChangeFailed    = errors.New("display driver failed the mode change")
)

// Mode is one display mode reported by the OS. It is immutable and
// comparable; copies share nothing mutable.
type Mode struct {
	raw         any
	Width       uint32
	Height      uint32
	RefreshRate uint32
	Scaling     Scaling
}

// NewMode builds a Mode around an OS record. raw must be a comparable value
// type; it is handed back unchanged to the Applier.
func NewMode(width, height, refreshRate uint32, scaling Scaling, raw any) Mode {
	return Mode{
		Width:       width,
		Height:      height,
		RefreshRate: refreshRate,
		Scaling:     scaling,
		raw:         raw,
	}
}

// Raw returns the OS record captured at enumeration time.
func (m Mode) Raw() any {
	return m.raw
}

// String formats the mode as WIDTHxHEIGHT@RATE.
func (m Mode) String() string {
	return strconv.FormatUint(uint64(m.Width), 10) + "x" +
		strconv.FormatUint(uint64(m.Height), 10) + "@" +
		strconv.FormatUint(uint64(m.RefreshRate), 10)
}

// Source reads the mode at a zero-based index. ok is false once the index
// is past the end of the table or the query fails.
type Source interface {
	Mode(index uint32) (m Mode, ok bool)
}

// Applier switches the display to a mode.
type Applier interface {
	Apply(m Mode) error
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(m Mode) error

// Apply calls f(m).
func (f ApplierFunc) Apply(m Mode) error {
	return f(m)
}
