package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "cyan", core.ColorCyan)
	s.SetColored(0, 1, '█', core.ColorRed)
	s.SetColored(1, 1, '█', core.ColorRed)

	out := RenderScreen(s)

	for _, want := range []string{"plain", "cyan", "██"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("got %d newlines, want 1", got)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorOrange,
		core.ColorGray, core.ColorBrightWhite, core.ColorBrightYellow,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
