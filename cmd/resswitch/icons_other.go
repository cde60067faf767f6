//go:build !windows

package main

import "github.com/codeGROOVE-dev/resswitch/pkg/icon"

func encodeIcon() ([]byte, error) {
	return icon.PNG()
}
