package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-gravity/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"unbound key", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	const w, h = 80, 24

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
		want core.Pointer
	}{
		{
			name: "left press at top-left cell",
			msg:  tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			ok:   true,
			want: core.Pointer{X: -1 + 1.0/80, Y: 1 - 1.0/24},
		},
		{
			name: "left press at center-right cell",
			msg:  tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			ok:   true,
			want: core.Pointer{X: 1.0 / 80, Y: -1.0 / 24},
		},
		{
			name: "release ignored",
			msg:  tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
		{
			name: "motion ignored",
			msg:  tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		},
		{
			name: "right button ignored",
			msg:  tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "outside surface ignored",
			msg:  tea.MouseMsg{X: 80, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := km.MapMouse(tt.msg, w, h)
			if ok != tt.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if math.Abs(p.X-tt.want.X) > 1e-9 || math.Abs(p.Y-tt.want.Y) > 1e-9 {
				t.Errorf("MapMouse() = %+v, expected %+v", p, tt.want)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	if !km.MapMouseToFrame(press, 80, 24, &frame) {
		t.Error("MapMouseToFrame(press) = false, expected true")
	}
	if km.MapMouseToFrame(release, 80, 24, &frame) {
		t.Error("MapMouseToFrame(release) = true, expected false")
	}
	if len(frame.Pointers) != 1 {
		t.Errorf("len(Pointers) = %d, expected 1", len(frame.Pointers))
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
