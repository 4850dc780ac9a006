package cli

import (
	"time"

	"github.com/gridchess/gridchess/session"
)

const DefaultDebounce = 150 * time.Millisecond

// Debouncer drops repeats of an intent that arrive within Interval
// of the last accepted one. A nil Debouncer passes everything.
type Debouncer struct {
	Interval time.Duration

	last [7]time.Time
}

func NewDebouncer(interval time.Duration) *Debouncer {
	if interval == 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{Interval: interval}
}

func fields(in *session.Intents) [7]*bool {
	return [7]*bool{
		&in.SelectPrev, &in.SelectNext,
		&in.CyclePrev, &in.CycleNext,
		&in.ToggleMode, &in.CommitMove,
		&in.SwitchActivePlayer,
	}
}

func (d *Debouncer) Filter(now time.Time, in session.Intents) session.Intents {
	if d == nil {
		return in
	}
	for i, f := range fields(&in) {
		if !*f {
			continue
		}
		if !d.last[i].IsZero() && now.Sub(d.last[i]) < d.Interval {
			*f = false
			continue
		}
		d.last[i] = now
	}
	return in
}
