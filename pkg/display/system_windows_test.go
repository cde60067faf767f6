//go:build windows

package display

import (
	"errors"
	"testing"
	"unsafe"
)

func TestDevModeLayout(t *testing.T) {
	if got := unsafe.Sizeof(devMode{}); got != 220 {
		t.Fatalf("sizeof(devMode) = %d, want 220", got)
	}
	if got := unsafe.Offsetof(devMode{}.DisplayFixedOutput); got != 88 {
		t.Errorf("offset of DisplayFixedOutput = %d, want 88", got)
	}
	if got := unsafe.Offsetof(devMode{}.PelsWidth); got != 172 {
		t.Errorf("offset of PelsWidth = %d, want 172", got)
	}
	if got := unsafe.Offsetof(devMode{}.DisplayFrequency); got != 184 {
		t.Errorf("offset of DisplayFrequency = %d, want 184", got)
	}
}

func TestScalingOf(t *testing.T) {
	tests := []struct {
		in   uint32
		want Scaling
	}{
		{dmdfoDefault, ScalingDefault},
		{dmdfoStretch, ScalingStretch},
		{dmdfoCenter, ScalingCenter},
		{7, ScalingUnknown},
	}
	for _, tt := range tests {
		if got := scalingOf(tt.in); got != tt.want {
			t.Errorf("scalingOf(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		status int32
		want   error
	}{
		{dispChangeSuccessful, nil},
		{dispChangeRestart, ErrRestartRequired},
		{dispChangeBadMode, ErrBadMode},
		{dispChangeNotUpdated, ErrNotUpdated},
		{dispChangeFailed, ErrChangeFailed},
		{dispChangeBadParam, ErrChangeFailed},
		{42, ErrChangeFailed},
	}
	for _, tt := range tests {
		err := statusError(tt.status)
		if tt.want == nil {
			if err != nil {
				t.Errorf("statusError(%d) = %v, want nil", tt.status, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("statusError(%d) = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestApplyRejectsForeignMode(t *testing.T) {
	if err := (System{}).Apply(NewMode(1920, 1080, 60, ScalingDefault, "not a devmode")); err == nil {
		t.Error("Apply() should reject modes without a DEVMODE record")
	}
}
