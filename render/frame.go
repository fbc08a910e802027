// Package render draws the application state into the screen's back
// buffer. All drawing goes through Frame, a clipped rectangular view
// of the screen, so widgets never write outside their bounds. The
// screen diffs the buffer against the last shown frame on flush, so
// redrawing an unchanged state costs nothing on the wire.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tui-template/terminal"
)

// Frame is a rectangular drawing area on a screen. Coordinates are
// relative to the frame's origin; writes outside the bounds are
// dropped.
type Frame struct {
	screen terminal.Screen
	X, Y   int
	W, H   int
}

// NewFrame returns a frame covering the whole screen.
func NewFrame(sc terminal.Screen) Frame {
	w, h := sc.Size()
	return Frame{screen: sc, W: w, H: h}
}

// Sub returns a nested frame with coordinates relative to the parent,
// clipped to the parent bounds.
func (f Frame) Sub(x, y, w, h int) Frame {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > f.W {
		w = f.W - x
	}
	if y+h > f.H {
		h = f.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Frame{screen: f.screen, X: f.X + x, Y: f.Y + y, W: w, H: h}
}

// Inset returns a frame shrunk by n cells on all sides.
func (f Frame) Inset(n int) Frame {
	return f.Sub(n, n, f.W-2*n, f.H-2*n)
}

// Size returns the frame dimensions.
func (f Frame) Size() (int, int) {
	return f.W, f.H
}

// SetCell writes a single cell with bounds checking.
func (f Frame) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.screen.SetContent(f.X+x, f.Y+y, ch, nil, style)
}

// Fill covers the frame with a single rune.
func (f Frame) Fill(ch rune, style tcell.Style) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			f.SetCell(x, y, ch, style)
		}
	}
}

// Clear fills the frame with spaces.
func (f Frame) Clear(style tcell.Style) {
	f.Fill(' ', style)
}

// Text writes a string starting at x, y, advancing by display width so
// wide runes keep their two columns. Returns the x position after the
// last rune written.
func (f Frame) Text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= f.W {
			break
		}
		f.SetCell(x, y, ch, style)
		x += w
	}
	return x
}

// TextCentered writes a string centered on row y.
func (f Frame) TextCentered(y int, s string, style tcell.Style) {
	s = Truncate(s, f.W)
	f.Text((f.W-runewidth.StringWidth(s))/2, y, s, style)
}
