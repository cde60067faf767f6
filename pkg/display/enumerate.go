package display

import "iter"

// Enumerate walks src from index 0 until it reports no mode. Every range
// over the returned sequence queries src again from the start.
func Enumerate(src Source) iter.Seq[Mode] {
	return func(yield func(Mode) bool) {
		for i := uint32(0); ; i++ {
			m, ok := src.Mode(i)
			if !ok {
				return
			}
			if !yield(m) {
				return
			}
		}
	}
}
