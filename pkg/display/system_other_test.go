//go:build !windows

package display

import (
	"errors"
	"testing"
)

func TestSystemOtherIsEmpty(t *testing.T) {
	var sys System
	if _, ok := sys.Mode(0); ok {
		t.Error("Mode(0) should report no mode")
	}
	if _, ok := sys.Current(); ok {
		t.Error("Current() should report no mode")
	}
	err := sys.Apply(NewMode(1920, 1080, 60, ScalingDefault, nil))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Apply() error = %v, want ErrUnsupported", err)
	}
}
