package render

import "github.com/gdamore/tcell/v2"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineRounded                 // ╭─╮│╰╯
	LineDouble                  // ╔═╗║╚╝
	LineHeavy                   // ┏━┓┃┗┛
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a border around the frame edge.
func (f Frame) Box(line LineType, style tcell.Style) {
	if f.W < 2 || f.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	f.SetCell(0, 0, chars[boxTL], style)
	f.SetCell(f.W-1, 0, chars[boxTR], style)
	f.SetCell(0, f.H-1, chars[boxBL], style)
	f.SetCell(f.W-1, f.H-1, chars[boxBR], style)

	for x := 1; x < f.W-1; x++ {
		f.SetCell(x, 0, chars[boxH], style)
		f.SetCell(x, f.H-1, chars[boxH], style)
	}
	for y := 1; y < f.H-1; y++ {
		f.SetCell(0, y, chars[boxV], style)
		f.SetCell(f.W-1, y, chars[boxV], style)
	}
}

// Panel clears the frame, draws a border with an optional title on the
// top edge, and returns the content frame inside the border.
func (f Frame) Panel(title string, line LineType, border, bg tcell.Style) Frame {
	if f.W < 3 || f.H < 3 {
		return f.Sub(1, 1, 0, 0)
	}
	f.Clear(bg)
	f.Box(line, border)

	if title != "" {
		f.Text(2, 0, Truncate(" "+title+" ", f.W-4), border.Bold(true))
	}
	return f.Inset(1)
}
