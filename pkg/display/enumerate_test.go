package display

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	id    int
	flags uint32
}

type tableSource struct {
	modes   []Mode
	queries []uint32
}

func (s *tableSource) Mode(index uint32) (Mode, bool) {
	s.queries = append(s.queries, index)
	if int(index) >= len(s.modes) {
		return Mode{}, false
	}
	return s.modes[index], true
}

func table(n int) *tableSource {
	src := &tableSource{}
	for i := range n {
		src.modes = append(src.modes, NewMode(uint32(640+i), 480, 60, ScalingDefault, fakeRecord{id: i}))
	}
	return src
}

func TestEnumerateWalksFromZeroUntilMiss(t *testing.T) {
	src := table(3)

	got := slices.Collect(Enumerate(src))

	require.Equal(t, src.modes, got)
	require.Equal(t, []uint32{0, 1, 2, 3}, src.queries)
}

func TestEnumerateEmptyTable(t *testing.T) {
	src := table(0)

	got := slices.Collect(Enumerate(src))

	require.Empty(t, got)
	require.Equal(t, []uint32{0}, src.queries)
}

func TestEnumerateIsRestartable(t *testing.T) {
	src := table(2)
	seq := Enumerate(src)

	first := slices.Collect(seq)
	// The table changes between passes; the second pass must see it.
	src.modes = append(src.modes, NewMode(1920, 1080, 60, ScalingDefault, fakeRecord{id: 99}))
	second := slices.Collect(seq)

	require.Len(t, first, 2)
	require.Len(t, second, 3)
	require.Equal(t, []uint32{0, 1, 2, 0, 1, 2, 3}, src.queries)
}

func TestEnumerateStopsEarly(t *testing.T) {
	src := table(5)

	for m := range Enumerate(src) {
		if m.Width == 641 {
			break
		}
	}

	require.Equal(t, []uint32{0, 1}, src.queries)
}

// A failing index ends the sequence even if later indexes would succeed.
type holeSource map[uint32]Mode

func (h holeSource) Mode(index uint32) (Mode, bool) {
	m, ok := h[index]
	return m, ok
}

func TestEnumerateStopsAtFirstFailure(t *testing.T) {
	src := holeSource{
		0: NewMode(800, 600, 60, ScalingDefault, fakeRecord{id: 0}),
		2: NewMode(1024, 768, 60, ScalingDefault, fakeRecord{id: 2}),
	}

	got := slices.Collect(Enumerate(src))

	require.Len(t, got, 1)
	require.Equal(t, uint32(800), got[0].Width)
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{NewMode(1920, 1080, 60, ScalingDefault, nil), "1920x1080@60"},
		{NewMode(3840, 2160, 144, ScalingStretch, nil), "3840x2160@144"},
		{NewMode(0, 0, 0, ScalingDefault, nil), "0x0@0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestModeKeepsRawRecord(t *testing.T) {
	rec := fakeRecord{id: 7, flags: 0xbeef}
	m := NewMode(1280, 720, 60, ScalingDefault, rec)
	cp := m

	require.Equal(t, rec, cp.Raw())
	require.True(t, m == cp)
	require.False(t, m == NewMode(1280, 720, 60, ScalingDefault, fakeRecord{id: 8}))
}

func TestApplierFunc(t *testing.T) {
	var got Mode
	a := ApplierFunc(func(m Mode) error {
		got = m
		return nil
	})
	want := NewMode(2560, 1440, 60, ScalingDefault, fakeRecord{id: 1})

	require.NoError(t, a.Apply(want))
	require.Equal(t, want, got)
}
