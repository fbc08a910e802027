package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// counterRampSteps is the number of blend steps from the neutral
// counter color to each ramp endpoint. The color saturates past that
// magnitude.
const counterRampSteps = 10

// Theme holds the semantic styles the renderer draws with.
type Theme struct {
	Base      tcell.Style
	Border    tcell.Style
	Title     tcell.Style
	Hint      tcell.Style
	StatusBar tcell.Style
	Accent    tcell.Style
	Warn      tcell.Style

	ModeNormal     tcell.Style
	ModeInsert     tcell.Style
	ModeProcessing tcell.Style

	counterPos [counterRampSteps + 1]tcell.Color
	counterNeg [counterRampSteps + 1]tcell.Color
}

// DefaultTheme builds the stock dark theme. The counter readout ramps
// from a neutral blue toward green as the value climbs and toward red
// as it falls, saturating at ±10.
func DefaultTheme() Theme {
	var (
		bg       = hexColor("#14141e")
		fg       = hexColor("#c8c8c8")
		border   = hexColor("#3c5064")
		hint     = hexColor("#64b4c8")
		statusBg = hexColor("#28283c")
		statusFg = hexColor("#9c9cac")
		accent   = hexColor("#87d7ff")
		warn     = hexColor("#ffd75f")
		insert   = hexColor("#5fff87")
	)

	base := tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(fg))
	badge := func(c colorful.Color) tcell.Style {
		return tcell.StyleDefault.Background(toTcell(c)).Foreground(tcell.ColorBlack).Bold(true)
	}

	t := Theme{
		Base:      base,
		Border:    base.Foreground(toTcell(border)),
		Title:     base.Foreground(tcell.ColorWhite).Bold(true),
		Hint:      base.Foreground(toTcell(hint)),
		StatusBar: tcell.StyleDefault.Background(toTcell(statusBg)).Foreground(toTcell(statusFg)),
		Accent:    base.Foreground(toTcell(accent)),
		Warn:      base.Foreground(toTcell(warn)).Bold(true),

		ModeNormal:     badge(accent),
		ModeInsert:     badge(insert),
		ModeProcessing: badge(warn),
	}

	neutral := accent
	up := hexColor("#5fff87")
	down := hexColor("#ff5f5f")
	for i := 0; i <= counterRampSteps; i++ {
		blend := float64(i) / counterRampSteps
		t.counterPos[i] = toTcell(neutral.BlendHcl(up, blend).Clamped())
		t.counterNeg[i] = toTcell(neutral.BlendHcl(down, blend).Clamped())
	}
	return t
}

// CounterStyle returns the style for the counter readout at value v.
func (t Theme) CounterStyle(v int) tcell.Style {
	n := v
	if n < 0 {
		n = -n
	}
	if n > counterRampSteps {
		n = counterRampSteps
	}
	c := t.counterPos[n]
	if v < 0 {
		c = t.counterNeg[n]
	}
	return t.Base.Foreground(c).Bold(true)
}

// hexColor parses a #rrggbb literal, panicking on malformed input.
func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
