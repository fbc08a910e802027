package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tui-template/app"
	"github.com/lixenwraith/tui-template/logging"
	"github.com/lixenwraith/tui-template/terminal"
)

// Screens smaller than this get a placeholder instead of the layout.
const (
	minWidth  = 24
	minHeight = 8
)

// Counter panel dimensions, clipped to the screen when it is smaller.
const (
	panelWidth  = 44
	panelHeight = 8
)

// helpEntries feed the help overlay, key first.
var helpEntries = [][2]string{
	{"q, Ctrl+C, Esc", "quit"},
	{"+, =", "increment the counter"},
	{"-", "decrement the counter"},
	{"s / S", "schedule +1 / -1 after a delay"},
	{"wheel", "increment / decrement"},
	{"/", "enter insert mode"},
	{"Esc, Enter", "leave insert mode"},
	{"L", "toggle the log overlay"},
	{"?", "toggle this help"},
}

// AppRenderer draws the whole screen from the application state. It
// writes only to the back buffer; the loop decides when to flush.
// Output depends on nothing but the state and the log ring, so drawing
// the same state twice produces identical frames.
type AppRenderer struct {
	theme Theme
	logs  *logging.Ring
}

// NewAppRenderer builds a renderer. logs may be nil; the log overlay
// then shows a placeholder line.
func NewAppRenderer(theme Theme, logs *logging.Ring) *AppRenderer {
	return &AppRenderer{theme: theme, logs: logs}
}

// Draw renders one frame of st into the back buffer.
func (r *AppRenderer) Draw(st *app.State, sc terminal.Screen) {
	f := NewFrame(sc)
	f.Clear(r.theme.Base)

	w, h := f.Size()
	if w < minWidth || h < minHeight {
		f.TextCentered(h/2, "terminal too small", r.theme.Warn)
		return
	}

	r.drawCounterPanel(f.Sub(0, 0, w, h-1), st)
	r.drawStatusBar(f.Sub(0, h-1, w, 1), st)

	if st.ShowLogs {
		r.drawLogOverlay(f)
	}
	if st.ShowHelp {
		r.drawHelpOverlay(f)
	}
}

// drawCounterPanel draws the centered panel with the counter readout
// and the insert buffer.
func (r *AppRenderer) drawCounterPanel(f Frame, st *app.State) {
	w, h := f.Size()
	pw, ph := panelWidth, panelHeight
	if pw > w {
		pw = w
	}
	if ph > h {
		ph = h
	}
	panel := f.Sub((w-pw)/2, (h-ph)/2, pw, ph)
	content := panel.Panel("counter", LineRounded, r.theme.Border, r.theme.Base)

	content.TextCentered(1, fmt.Sprintf("%d", st.Counter), r.theme.CounterStyle(st.Counter))
	content.TextCentered(3, "press + or - to change, s to schedule", r.theme.Hint)

	if st.Mode == app.ModeProcessing {
		content.TextCentered(4, "[ working ]", r.theme.Warn)
	}

	if st.Mode == app.ModeInsert || len(st.Input) > 0 {
		cw, ch := content.Size()
		prompt := "> " + st.InputText()
		if st.Mode == app.ModeInsert {
			prompt += "_"
		}
		content.Text(1, ch-1, Truncate(prompt, cw-2), r.theme.Accent)
	}
}

// drawStatusBar draws the bottom bar: mode badge on the left, key
// hints in the middle, counter and dimensions right-aligned.
func (r *AppRenderer) drawStatusBar(f Frame, st *app.State) {
	f.Clear(r.theme.StatusBar)

	badge, badgeStyle := r.modeBadge(st.Mode)
	x := f.Text(0, 0, badge, badgeStyle)
	x = f.Text(x+1, 0, "q quit", r.theme.StatusBar)
	x = f.Text(x+2, 0, "? help", r.theme.StatusBar)

	counterSeg := fmt.Sprintf(" %d ", st.Counter)
	dimSeg := fmt.Sprintf(" %dx%d ", st.Width, st.Height)
	startX := f.W - runewidth.StringWidth(counterSeg) - runewidth.StringWidth(dimSeg)
	if startX < x {
		startX = x
	}
	startX = f.Text(startX, 0, counterSeg, r.theme.CounterStyle(st.Counter).Background(bgOf(r.theme.StatusBar)))
	f.Text(startX, 0, dimSeg, r.theme.StatusBar)
}

// modeBadge returns the status bar badge text and style for a mode.
func (r *AppRenderer) modeBadge(m app.Mode) (string, tcell.Style) {
	switch m {
	case app.ModeInsert:
		return " INSERT ", r.theme.ModeInsert
	case app.ModeProcessing:
		return " WORKING ", r.theme.ModeProcessing
	default:
		return " NORMAL ", r.theme.ModeNormal
	}
}

// drawLogOverlay draws the tail of the log ring in a centered panel.
func (r *AppRenderer) drawLogOverlay(f Frame) {
	w, h := f.Size()
	ow := w - 8
	if ow > 72 {
		ow = 72
	}
	oh := h - 6
	if oh > 14 {
		oh = 14
	}
	content := f.Sub((w-ow)/2, (h-oh)/2, ow, oh).
		Panel("logs", LineSingle, r.theme.Border, r.theme.Base)

	cw, ch := content.Size()
	if r.logs == nil {
		content.Text(1, 0, "log ring not attached", r.theme.Hint)
		return
	}
	for i, line := range r.logs.Tail(ch) {
		content.Text(1, i, Truncate(line, cw-2), r.theme.Base)
	}
}

// drawHelpOverlay draws the key binding reference in a centered panel.
func (r *AppRenderer) drawHelpOverlay(f Frame) {
	keyW := 0
	descW := 0
	for _, e := range helpEntries {
		if n := runewidth.StringWidth(e[0]); n > keyW {
			keyW = n
		}
		if n := runewidth.StringWidth(e[1]); n > descW {
			descW = n
		}
	}

	w, h := f.Size()
	ow := keyW + descW + 7
	oh := len(helpEntries) + 2
	if ow > w {
		ow = w
	}
	if oh > h {
		oh = h
	}
	content := f.Sub((w-ow)/2, (h-oh)/2, ow, oh).
		Panel("help", LineRounded, r.theme.Border, r.theme.Base)

	for i, e := range helpEntries {
		x := content.Text(1, i, PadRight(e[0], keyW), r.theme.Accent)
		content.Text(x+2, i, e[1], r.theme.Base)
	}
}

// bgOf extracts the background color of a style.
func bgOf(s tcell.Style) tcell.Color {
	_, bg, _ := s.Decompose()
	return bg
}
