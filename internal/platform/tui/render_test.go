package tui

import (
	"testing"

	"github.com/vovakirdan/fruit-gravity/internal/core"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    core.Color
		want string
	}{
		{core.ColorOrange, "#ff8700"},
		{core.ColorBrightWhite, "#ffffff"},
		{core.ColorGray, "#8a8a8a"},
	}
	for _, tt := range tests {
		if got := colorHex(tt.c); got != tt.want {
			t.Errorf("colorHex(%v) = %q, expected %q", tt.c, got, tt.want)
		}
	}
}

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.SetColored(2, 0, 'o', core.ColorOrange)
	s.SetColored(4, 0, 'o', core.ColorOrange)
	s.SetColored(6, 0, '@', core.ColorRed)

	runs := rowRuns(s, 0)
	want := []run{
		{"  ", core.ColorDefault},
		{"o o ", core.ColorOrange},
		{"@   ", core.ColorRed},
	}
	if len(runs) != len(want) {
		t.Fatalf("rowRuns() = %+v, expected %+v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], want[i])
		}
	}
}

func TestRowRunsBlankRow(t *testing.T) {
	s := core.NewScreen(5, 1)
	runs := rowRuns(s, 0)
	if len(runs) != 1 || runs[0].text != "     " || runs[0].color != core.ColorDefault {
		t.Errorf("rowRuns() on blank row = %+v, expected one default run", runs)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(1, 0, "Score", core.ColorBrightWhite)
	s.SetColored(3, 1, 'x', core.ColorRed)

	// Tests run without a TTY, so lipgloss renders no escape codes.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}
