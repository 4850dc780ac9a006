// Package session drives a two-player game on a chess.Position: it
// routes per-tick intents to the active player's selection state and
// commits moves into the position.
package session

import (
	"errors"

	"github.com/gridchess/gridchess/chess"
)

var (
	ErrNoCandidates = errors.New("no candidate moves")
	ErrNotMoving    = errors.New("not choosing a move")
	ErrNotSelecting = errors.New("a move is in progress")
	ErrNoPiece      = errors.New("no piece selected")
	ErrGameOver     = errors.New("game over")
)

// Intents are the discrete inputs sampled for a single tick.
type Intents struct {
	SelectPrev, SelectNext bool
	CyclePrev, CycleNext   bool
	ToggleMode             bool
	CommitMove             bool
	SwitchActivePlayer     bool
}

func (in Intents) Any() bool {
	return in != Intents{}
}

// Event describes a committed move.
type Event struct {
	Ply      int
	Color    chess.Color
	Piece    chess.PieceID
	Kind     chess.Kind
	From, To int
	Capture  *chess.Capture
	// Captured is only meaningful when Capture is set. Its zero
	// value is Pawn.
	Captured chess.Kind
}

type Observer interface {
	Committed(s *Session, ev Event)
}

type ObserverFunc func(s *Session, ev Event)

func (f ObserverFunc) Committed(s *Session, ev Event) { f(s, ev) }

// A TerminalFunc is consulted whenever a player receives the turn:
// at New, after every commit and after every pass. Returning true
// ends the game, leaving that player in Checkmate.
type TerminalFunc func(p *chess.Position, toMove chess.Color) bool

// NoLegalMoves ends the game when the player to move has no
// candidate for any piece.
func NoLegalMoves(p *chess.Position, toMove chess.Color) bool {
	return !p.HasAnyMove(toMove)
}

type Config struct {
	// First is the player who moves first. Defaults to White.
	First    chess.Color
	Terminal TerminalFunc
}

type Session struct {
	pos       *chess.Position
	players   [2]*Player
	active    chess.Color
	ply       int
	over      bool
	terminal  TerminalFunc
	observers []Observer
}

func New(pos *chess.Position, cfg Config) *Session {
	if cfg.First == chess.NoColor {
		cfg.First = chess.White
	}
	s := &Session{
		pos:      pos,
		active:   cfg.First,
		terminal: cfg.Terminal,
	}
	for _, c := range []chess.Color{chess.White, chess.Black} {
		s.players[c.Index()] = newPlayer(c, pos.Registry(c))
	}
	s.checkTerminal()
	return s
}

// checkTerminal ends the game if the active player is stuck.
func (s *Session) checkTerminal() {
	if s.terminal != nil && s.terminal(s.pos, s.active) {
		s.over = true
		s.current().mode = Checkmate
	}
}

func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) Position() *chess.Position { return s.pos }
func (s *Session) Active() chess.Color       { return s.active }
func (s *Session) Ply() int                  { return s.ply }
func (s *Session) Over() bool                { return s.over }

func (s *Session) Player(c chess.Color) *Player {
	return s.players[c.Index()]
}

func (s *Session) current() *Player {
	pl := s.players[s.active.Index()]
	pl.rehome(s.pos.Registry(s.active))
	return pl
}

// Candidates returns the destinations on offer for the active
// player: the frozen list while Moving, or a fresh list for the
// highlighted piece while Selecting.
func (s *Session) Candidates() []chess.Candidate {
	pl := s.current()
	if pl.mode == Moving {
		return pl.candidates
	}
	if pl.selected == chess.NoPiece {
		return nil
	}
	return s.pos.Candidates(s.active, pl.selected)
}

// Pending is the destination under the cursor while Moving.
func (s *Session) Pending() (chess.Candidate, bool) {
	pl := s.current()
	if pl.mode != Moving {
		return chess.Candidate{}, false
	}
	return pl.candidates[pl.cursor], true
}

// Select moves the highlight to the next alive piece in direction
// dir, stopping at either end of the registry.
func (s *Session) Select(dir int) error {
	if s.over {
		return ErrGameOver
	}
	pl := s.current()
	if pl.mode != Selecting {
		return ErrNotSelecting
	}
	if pl.selected == chess.NoPiece {
		return ErrNoPiece
	}
	pl.selected = s.pos.Registry(s.active).NextAlive(pl.selected, dir)
	return nil
}

// Cycle moves the cursor through the frozen candidate list. It
// clamps at both ends.
func (s *Session) Cycle(dir int) error {
	if s.over {
		return ErrGameOver
	}
	pl := s.current()
	if pl.mode != Moving {
		return ErrNotMoving
	}
	switch {
	case dir > 0 && pl.cursor < len(pl.candidates)-1:
		pl.cursor++
	case dir < 0 && pl.cursor > 0:
		pl.cursor--
	}
	return nil
}

// Toggle enters Moving for the highlighted piece, or cancels back to
// Selecting without touching the position.
func (s *Session) Toggle() error {
	if s.over {
		return ErrGameOver
	}
	pl := s.current()
	if pl.mode == Moving {
		pl.reset()
		return nil
	}
	if pl.selected == chess.NoPiece {
		return ErrNoPiece
	}
	cs := s.pos.Candidates(s.active, pl.selected)
	if len(cs) == 0 {
		return ErrNoCandidates
	}
	pl.mode = Moving
	pl.cursor = 0
	pl.candidates = cs
	return nil
}

// Commit plays the pending destination and hands the turn to the
// other player.
func (s *Session) Commit() (Event, error) {
	if s.over {
		return Event{}, ErrGameOver
	}
	pl := s.current()
	if pl.mode != Moving {
		return Event{}, ErrNotMoving
	}
	if len(pl.candidates) == 0 {
		return Event{}, ErrNoCandidates
	}
	dest := pl.candidates[pl.cursor]
	mover := s.pos.Piece(s.active, pl.selected)
	ev := Event{
		Ply:   s.ply + 1,
		Color: s.active,
		Piece: pl.selected,
		Kind:  mover.Kind,
		From:  mover.Cell,
		To:    dest.Cell,
	}
	if dest.Capture {
		q := s.pos.Ledger().Query(dest.Cell)
		ev.Captured = s.pos.Piece(q.Owner, q.Piece).Kind
	}
	capt, err := s.pos.Move(s.active, pl.selected, dest.Cell)
	if err != nil {
		return Event{}, err
	}
	ev.Capture = capt
	if capt != nil {
		pl.score++
	}
	pl.last = dest.Cell
	pl.reset()

	s.ply++
	s.active = s.active.Flip()
	s.checkTerminal()
	for _, o := range s.observers {
		o.Committed(s, ev)
	}
	return ev, nil
}

// Pass hands the turn to the other player without moving.
func (s *Session) Pass() error {
	if s.over {
		return ErrGameOver
	}
	if s.current().mode != Selecting {
		return ErrNotSelecting
	}
	s.active = s.active.Flip()
	s.checkTerminal()
	return nil
}

// Tick applies one tick's intents to the active player in a fixed
// order: select, cycle, toggle, commit, switch. Rejected intents
// leave the state unchanged. It reports the committed move, if any.
func (s *Session) Tick(in Intents) (Event, bool) {
	if s.over {
		return Event{}, false
	}
	if in.SelectPrev {
		s.Select(-1)
	}
	if in.SelectNext {
		s.Select(1)
	}
	if in.CyclePrev {
		s.Cycle(-1)
	}
	if in.CycleNext {
		s.Cycle(1)
	}
	if in.ToggleMode {
		s.Toggle()
	}
	if in.CommitMove {
		if ev, err := s.Commit(); err == nil {
			return ev, true
		}
	}
	if in.SwitchActivePlayer {
		s.Pass()
	}
	return Event{}, false
}
