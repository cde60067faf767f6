// Package icon renders the tray icon: a monitor whose screen shows a
// checkerboard, the usual test pattern for checking scaling.
//
// The icon is drawn at 4x and downsampled so edges stay smooth at 48×48.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// Size is the edge length of the generated icon in pixels.
const Size = 48

const (
	scale    = 4
	canvas   = Size * scale
	checkers = 4 // squares per row on the screen
)

var (
	bezel = color.RGBA{52, 58, 64, 255}
	light = color.RGBA{248, 249, 250, 255}
	dark  = color.RGBA{13, 110, 253, 255}
)

// Render draws the icon at Size×Size.
func Render() *image.RGBA {
	big := image.NewRGBA(image.Rect(0, 0, canvas, canvas))

	// Monitor body: a 16:10 frame in the upper part of the canvas.
	frame := image.Rect(2*scale, 6*scale, canvas-2*scale, 36*scale)
	fillRounded(big, frame, 3*scale, bezel)

	screen := frame.Inset(3 * scale)
	drawCheckerboard(big, screen)

	// Stand: neck and foot.
	neck := image.Rect(canvas/2-3*scale, frame.Max.Y, canvas/2+3*scale, 41*scale)
	draw.Draw(big, neck, image.NewUniform(bezel), image.Point{}, draw.Src)
	foot := image.Rect(canvas/2-11*scale, 41*scale, canvas/2+11*scale, 44*scale)
	fillRounded(big, foot, scale, bezel)

	dst := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Over, nil)
	return dst
}

// PNG returns the icon encoded as PNG, the format macOS and Linux trays take.
func PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ICO returns the icon encoded as a Windows icon file.
func ICO() ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, Render()); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCheckerboard(img *image.RGBA, r image.Rectangle) {
	cw := r.Dx() / checkers
	ch := r.Dy() / checkers
	for row := range checkers {
		for col := range checkers {
			c := light
			if (row+col)%2 == 1 {
				c = dark
			}
			cell := image.Rect(
				r.Min.X+col*cw, r.Min.Y+row*ch,
				r.Min.X+(col+1)*cw, r.Min.Y+(row+1)*ch)
			if col == checkers-1 {
				cell.Max.X = r.Max.X
			}
			if row == checkers-1 {
				cell.Max.Y = r.Max.Y
			}
			draw.Draw(img, cell, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
}

// fillRounded fills r with corners cut to the given radius.
func fillRounded(img *image.RGBA, r image.Rectangle, radius int, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if insideRounded(x, y, r, radius) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func insideRounded(x, y int, r image.Rectangle, radius int) bool {
	cx, cy := x, y
	switch {
	case x < r.Min.X+radius:
		cx = r.Min.X + radius
	case x >= r.Max.X-radius:
		cx = r.Max.X - radius - 1
	}
	switch {
	case y < r.Min.Y+radius:
		cy = r.Min.Y + radius
	case y >= r.Max.Y-radius:
		cy = r.Max.Y - radius - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}
