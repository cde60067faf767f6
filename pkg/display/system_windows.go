//go:build windows

package display

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                     = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettingsW   = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettingsW = user32.NewProc("ChangeDisplaySettingsW")
)

const (
	enumCurrentSettings = 0xFFFFFFFF // ENUM_CURRENT_SETTINGS

	dmdfoDefault = 0
	dmdfoStretch = 1
	dmdfoCenter  = 2

	dispChangeSuccessful  = 0
	dispChangeRestart     = 1
	dispChangeFailed      = -1
	dispChangeBadMode     = -2
	dispChangeNotUpdated  = -3
	dispChangeBadFlags    = -4
	dispChangeBadParam    = -5
	dispChangeBadDualView = -6
)

// devMode mirrors DEVMODEW with the display branch of both unions.
// The layout must stay at 220 bytes.
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// System reads and changes modes of the default display device through user32.
type System struct{}

// Mode implements Source. A NULL device name selects the default display device.
func (System) Mode(index uint32) (Mode, bool) {
	return enumSettings(index)
}

// Current returns the mode the default display device is running right now.
func (System) Current() (Mode, bool) {
	return enumSettings(enumCurrentSettings)
}

func enumSettings(index uint32) (Mode, bool) {
	var dm devMode
	dm.Size = uint16(unsafe.Sizeof(dm))
	r1, _, _ := procEnumDisplaySettingsW.Call(0, uintptr(index), uintptr(unsafe.Pointer(&dm)))
	if r1 == 0 {
		return Mode{}, false
	}
	return NewMode(dm.PelsWidth, dm.PelsHeight, dm.DisplayFrequency, scalingOf(dm.DisplayFixedOutput), dm), true
}

func scalingOf(fixedOutput uint32) Scaling {
	switch fixedOutput {
	case dmdfoDefault:
		return ScalingDefault
	case dmdfoStretch:
		return ScalingStretch
	case dmdfoCenter:
		return ScalingCenter
	default:
		return ScalingUnknown
	}
}

// Apply issues a single ChangeDisplaySettingsW call with flags 0: change the
// mode only, without touching the registry or the desktop topology.
func (System) Apply(m Mode) error {
	dm, ok := m.raw.(devMode)
	if !ok {
		return fmt.Errorf("apply %s: mode was not enumerated from this system", m)
	}
	r1, _, _ := procChangeDisplaySettingsW.Call(uintptr(unsafe.Pointer(&dm)), 0)
	status := int32(r1)
	slog.Debug("[DISPLAY] ChangeDisplaySettingsW returned", "mode", m.String(), "status", status)
	if err := statusError(status); err != nil {
		return fmt.Errorf("apply %s: %w", m, err)
	}
	return nil
}

func statusError(status int32) error {
	switch status {
	case dispChangeSuccessful:
		return nil
	case dispChangeRestart:
		return ErrRestartRequired
	case dispChangeBadMode:
		return ErrBadMode
	case dispChangeNotUpdated:
		return ErrNotUpdated
	case dispChangeFailed, dispChangeBadFlags, dispChangeBadParam, dispChangeBadDualView:
		return fmt.Errorf("%w (status %d)", ErrChangeFailed, status)
	default:
		return fmt.Errorf("%w (unexpected status %d)", ErrChangeFailed, status)
	}
}
