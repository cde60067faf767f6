// Package modes narrows the raw display mode table to the modes offered in
// the tray and splits them into favorites and everything else.
package modes

import (
	"iter"

	"github.com/codeGROOVE-dev/resswitch/pkg/display"
)

// Rate is the only refresh rate offered.
const Rate = 60

// Triple identifies a mode by its visible properties.
type Triple struct {
	Width       uint32 `json:"width"`
	Height      uint32 `json:"height"`
	RefreshRate uint32 `json:"refresh_rate"`
}

// DefaultFavorites are the common 16:9 resolutions at 60Hz.
var DefaultFavorites = []Triple{
	{1280, 720, 60},
	{1920, 1080, 60},
	{2560, 1440, 60},
	{3840, 2160, 60},
}

// TripleOf returns the triple of m.
func TripleOf(m display.Mode) Triple {
	return Triple{Width: m.Width, Height: m.Height, RefreshRate: m.RefreshRate}
}

// Candidate reports whether m may be offered: 60Hz with default scaling.
// Stretched and centered variants of a resolution are never offered.
func Candidate(m display.Mode) bool {
	return m.RefreshRate == Rate && m.Scaling == display.ScalingDefault
}

// Filter yields the candidate modes of seq in order.
func Filter(seq iter.Seq[display.Mode]) iter.Seq[display.Mode] {
	return func(yield func(display.Mode) bool) {
		for m := range seq {
			if !Candidate(m) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Classify filters seq and partitions the candidates by membership of their
// triple in favorites. Both results keep enumeration order; the order of
// favorites itself does not matter.
func Classify(seq iter.Seq[display.Mode], favorites []Triple) (fav, other []display.Mode) {
	set := make(map[Triple]struct{}, len(favorites))
	for _, f := range favorites {
		set[f] = struct{}{}
	}

	for m := range Filter(seq) {
		if _, ok := set[TripleOf(m)]; ok {
			fav = append(fav, m)
		} else {
			other = append(other, m)
		}
	}
	return fav, other
}
