package icon

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func TestRender(t *testing.T) {
	img := Render()

	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Fatalf("wrong dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), Size, Size)
	}

	// Corners stay transparent; the middle of the screen is painted.
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("top-left corner alpha = %d, want 0", a)
	}
	if _, _, _, a := img.At(Size/2, Size/3).RGBA(); a == 0 {
		t.Error("screen center is transparent")
	}
}

func TestPNG(t *testing.T) {
	data, err := PNG()
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Errorf("wrong dimensions: got %dx%d", b.Dx(), b.Dy())
	}
}

func TestICO(t *testing.T) {
	data, err := ICO()
	if err != nil {
		t.Fatalf("ICO() error = %v", err)
	}

	// ICONDIR header: reserved 0, type 1.
	if len(data) < 6 || data[0] != 0 || data[1] != 0 || data[2] != 1 || data[3] != 0 {
		t.Fatalf("missing ICO header: % x", data[:min(len(data), 6)])
	}

	img, err := ico.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid ICO: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Errorf("wrong dimensions: got %dx%d", b.Dx(), b.Dy())
	}
}

func TestInsideRounded(t *testing.T) {
	r := image.Rect(0, 0, 20, 20)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{19, 19, false},
		{10, 10, true},
		{0, 10, true},
		{5, 0, true},
	}
	for _, tt := range tests {
		if got := insideRounded(tt.x, tt.y, r, 5); got != tt.want {
			t.Errorf("insideRounded(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
