package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-gravity/internal/core"
)

// cellStyles caches one style per cell color. Colors come from core.Color.RGB
// so fruit looks the same in the terminal and in the window; lipgloss
// degrades them to 256 or 16 colors on simpler terminals.
var (
	cellStylesMu sync.Mutex
	cellStyles   = map[core.Color]lipgloss.Style{}
)

func cellStyle(c core.Color) lipgloss.Style {
	cellStylesMu.Lock()
	defer cellStylesMu.Unlock()
	if st, ok := cellStyles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(colorHex(c)))
	}
	cellStyles[c] = st
	return st
}

// colorHex formats a cell color as #rrggbb.
func colorHex(c core.Color) string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// run is a stretch of one row drawn in a single color.
type run struct {
	text  string
	color core.Color
}

// rowRuns splits row y into runs of equal color. Blank cells take the color
// of the run they sit in, so empty sky between fruit does not start new
// escape sequences.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	var sb strings.Builder
	cur := core.ColorDefault
	open := false

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Rune != ' ' && (!open || cell.Color != cur) {
			if sb.Len() > 0 {
				runs = append(runs, run{text: sb.String(), color: cur})
				sb.Reset()
			}
			cur, open = cell.Color, true
		}
		sb.WriteRune(cell.Rune)
	}
	if sb.Len() > 0 {
		runs = append(runs, run{text: sb.String(), color: cur})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			if r.color == core.ColorDefault || strings.TrimSpace(r.text) == "" {
				sb.WriteString(r.text)
				continue
			}
			sb.WriteString(cellStyle(r.color).Render(r.text))
		}
	}
	return sb.String()
}
