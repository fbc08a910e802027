package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func runeAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestFrameSubClipping(t *testing.T) {
	sim := newSimScreen(t, 20, 10)
	f := NewFrame(sim)

	sub := f.Sub(5, 2, 10, 4)
	if sub.X != 5 || sub.Y != 2 || sub.W != 10 || sub.H != 4 {
		t.Errorf("Expected sub frame 5,2 10x4, got %d,%d %dx%d", sub.X, sub.Y, sub.W, sub.H)
	}

	clipped := f.Sub(-3, -2, 8, 6)
	if clipped.X != 0 || clipped.Y != 0 || clipped.W != 5 || clipped.H != 4 {
		t.Errorf("Expected negative origin clipped to 0,0 5x4, got %d,%d %dx%d",
			clipped.X, clipped.Y, clipped.W, clipped.H)
	}

	over := f.Sub(15, 8, 10, 10)
	if over.W != 5 || over.H != 2 {
		t.Errorf("Expected overflow clipped to 5x2, got %dx%d", over.W, over.H)
	}

	empty := f.Sub(25, 0, 5, 5)
	if empty.W != 0 {
		t.Errorf("Expected out-of-bounds sub to be empty, got width %d", empty.W)
	}
}

func TestFrameSetCellMapsToAbsolute(t *testing.T) {
	sim := newSimScreen(t, 20, 10)
	f := NewFrame(sim).Sub(4, 3, 10, 5)

	f.SetCell(0, 0, 'A', tcell.StyleDefault)
	f.SetCell(2, 1, 'B', tcell.StyleDefault)
	// Out of bounds, dropped
	f.SetCell(-1, 0, 'X', tcell.StyleDefault)
	f.SetCell(10, 0, 'X', tcell.StyleDefault)
	sim.Show()

	if got := runeAt(t, sim, 4, 3); got != 'A' {
		t.Errorf("Expected 'A' at 4,3, got %q", got)
	}
	if got := runeAt(t, sim, 6, 4); got != 'B' {
		t.Errorf("Expected 'B' at 6,4, got %q", got)
	}
	if got := runeAt(t, sim, 3, 3); got != ' ' {
		t.Errorf("Expected out-of-bounds write dropped, got %q at 3,3", got)
	}
}

func TestFrameTextAdvancesByDisplayWidth(t *testing.T) {
	sim := newSimScreen(t, 20, 5)
	f := NewFrame(sim)

	end := f.Text(0, 0, "日本", tcell.StyleDefault)
	if end != 4 {
		t.Errorf("Expected text to end at column 4, got %d", end)
	}
	sim.Show()

	if got := runeAt(t, sim, 0, 0); got != '日' {
		t.Errorf("Expected wide rune at column 0, got %q", got)
	}
	if got := runeAt(t, sim, 2, 0); got != '本' {
		t.Errorf("Expected second wide rune at column 2, got %q", got)
	}
}

func TestFrameBox(t *testing.T) {
	sim := newSimScreen(t, 10, 5)
	NewFrame(sim).Box(LineSingle, tcell.StyleDefault)
	sim.Show()

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{9, 0, '┐'},
		{0, 4, '└'},
		{9, 4, '┘'},
		{4, 0, '─'},
		{0, 2, '│'},
	}
	for _, c := range corners {
		if got := runeAt(t, sim, c.x, c.y); got != c.want {
			t.Errorf("Expected %q at %d,%d, got %q", c.want, c.x, c.y, got)
		}
	}
}

func TestFramePanelReturnsContent(t *testing.T) {
	sim := newSimScreen(t, 20, 10)
	content := NewFrame(sim).Panel("title", LineRounded, tcell.StyleDefault, tcell.StyleDefault)

	if content.X != 1 || content.Y != 1 || content.W != 18 || content.H != 8 {
		t.Errorf("Expected content frame 1,1 18x8, got %d,%d %dx%d",
			content.X, content.Y, content.W, content.H)
	}
	sim.Show()
	if got := runeAt(t, sim, 0, 0); got != '╭' {
		t.Errorf("Expected rounded corner, got %q", got)
	}
	if got := runeAt(t, sim, 3, 0); got != 't' {
		t.Errorf("Expected title on top edge, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "…"},
		{"abcdef", 0, ""},
		{"日本語", 4, "日…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.s, tt.width, tt.want, got)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 3, "ab…"},
		{"ab", 0, ""},
	}
	for _, tt := range tests {
		if got := PadRight(tt.s, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d): expected %q, got %q", tt.s, tt.width, tt.want, got)
		}
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abc", 3, "abc"},
	}
	for _, tt := range tests {
		if got := PadCenter(tt.s, tt.width); got != tt.want {
			t.Errorf("PadCenter(%q, %d): expected %q, got %q", tt.s, tt.width, tt.want, got)
		}
	}
}
