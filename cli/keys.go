package cli

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gridchess/gridchess/session"
)

// KeyInput reads intents from a terminal screen: arrows select and
// cycle, space toggles, enter commits, tab passes, and escape or q
// quits.
type KeyInput struct {
	screen   tcell.Screen
	debounce *Debouncer
}

func NewKeyInput(s tcell.Screen, d *Debouncer) *KeyInput {
	return &KeyInput{screen: s, debounce: d}
}

func (k *KeyInput) Next() (session.Intents, error) {
	for {
		switch ev := k.screen.PollEvent().(type) {
		case nil:
			return session.Intents{}, ErrQuit
		case *tcell.EventResize:
			k.screen.Sync()
			return session.Intents{}, nil
		case *tcell.EventKey:
			in, quit := KeyIntents(ev)
			if quit {
				return session.Intents{}, ErrQuit
			}
			return k.debounce.Filter(ev.When(), in), nil
		}
	}
}

// KeyIntents maps one key event to intents. The second result
// reports a request to quit.
func KeyIntents(ev *tcell.EventKey) (session.Intents, bool) {
	var in session.Intents
	switch ev.Key() {
	case tcell.KeyLeft:
		in.SelectPrev = true
	case tcell.KeyRight:
		in.SelectNext = true
	case tcell.KeyDown:
		in.CyclePrev = true
	case tcell.KeyUp:
		in.CycleNext = true
	case tcell.KeyEnter:
		in.CommitMove = true
	case tcell.KeyTab:
		in.SwitchActivePlayer = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return in, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.ToggleMode = true
		case 'q':
			return in, true
		default:
			in = LineKeys[ev.Rune()]
		}
	}
	return in, false
}

// ScreenDisplay draws frames onto a terminal screen.
type ScreenDisplay struct {
	Screen tcell.Screen
	Style  tcell.Style
}

func (d *ScreenDisplay) Show(frame string) {
	d.Screen.Clear()
	for y, line := range strings.Split(frame, "\n") {
		x := 0
		for _, r := range line {
			d.Screen.SetContent(x, y, r, nil, d.Style)
			x += runewidth.RuneWidth(r)
		}
	}
	d.Screen.Show()
}
