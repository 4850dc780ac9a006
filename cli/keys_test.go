package cli

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridchess/gridchess/session"
)

func TestKeyIntents(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		in   session.Intents
		quit bool
	}{
		{tcell.KeyLeft, 0, session.Intents{SelectPrev: true}, false},
		{tcell.KeyRight, 0, session.Intents{SelectNext: true}, false},
		{tcell.KeyUp, 0, session.Intents{CycleNext: true}, false},
		{tcell.KeyDown, 0, session.Intents{CyclePrev: true}, false},
		{tcell.KeyEnter, 0, session.Intents{CommitMove: true}, false},
		{tcell.KeyTab, 0, session.Intents{SwitchActivePlayer: true}, false},
		{tcell.KeyRune, ' ', session.Intents{ToggleMode: true}, false},
		{tcell.KeyRune, 'm', session.Intents{ToggleMode: true}, false},
		{tcell.KeyRune, 'z', session.Intents{}, false},
		{tcell.KeyRune, 'q', session.Intents{}, true},
		{tcell.KeyEscape, 0, session.Intents{}, true},
	}
	for _, tc := range cases {
		in, quit := KeyIntents(tcell.NewEventKey(tc.key, tc.r, tcell.ModNone))
		assert.Equal(t, tc.in, in, "key=%v rune=%q", tc.key, tc.r)
		assert.Equal(t, tc.quit, quit, "key=%v rune=%q", tc.key, tc.r)
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounce, d.Interval)

	t0 := time.Unix(1000, 0)
	next := session.Intents{SelectNext: true}
	assert.Equal(t, next, d.Filter(t0, next))
	assert.Equal(t, session.Intents{}, d.Filter(t0.Add(100*time.Millisecond), next))
	// Other intents are tracked separately.
	both := session.Intents{SelectNext: true, CommitMove: true}
	assert.Equal(t, session.Intents{CommitMove: true}, d.Filter(t0.Add(120*time.Millisecond), both))
	assert.Equal(t, next, d.Filter(t0.Add(200*time.Millisecond), next))

	var none *Debouncer
	assert.Equal(t, next, none.Filter(t0, next))
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)
	sim.SetSize(40, 10)
	return sim
}

func TestKeyInput(t *testing.T) {
	sim := newScreen(t)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	k := NewKeyInput(sim, nil)
	var got session.Intents
	for !got.Any() {
		var err error
		got, err = k.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, session.Intents{SelectNext: true}, got)

	_, err := k.Next()
	assert.ErrorIs(t, err, ErrQuit)
}

func TestScreenDisplay(t *testing.T) {
	sim := newScreen(t)
	d := &ScreenDisplay{Screen: sim}
	d.Show("ab\n世c")

	cells, w, _ := sim.GetContents()
	assert.Equal(t, 'a', cells[0].Runes[0])
	assert.Equal(t, 'b', cells[1].Runes[0])
	assert.Equal(t, '世', cells[w].Runes[0])
	assert.Equal(t, 'c', cells[w+2].Runes[0])
}
