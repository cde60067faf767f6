//go:build windows

package main

import "github.com/codeGROOVE-dev/resswitch/pkg/icon"

// The Windows tray loads icons with LoadImage, which needs ICO data.
func encodeIcon() ([]byte, error) {
	return icon.ICO()
}
