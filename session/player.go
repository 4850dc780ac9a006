package session

import (
	"fmt"

	"github.com/gridchess/gridchess/chess"
)

type Mode byte

const (
	Selecting Mode = iota
	Moving
	Checkmate
)

func (m Mode) String() string {
	switch m {
	case Selecting:
		return "selecting"
	case Moving:
		return "moving"
	case Checkmate:
		return "checkmate"
	default:
		panic(fmt.Sprintf("bad mode: %d", m))
	}
}

// Player is one side's interaction state: which piece is
// highlighted, and while Moving, the frozen candidate list and the
// cursor into it.
type Player struct {
	color    chess.Color
	score    int
	mode     Mode
	selected chess.PieceID

	cursor     int
	candidates []chess.Candidate
	last       int
}

func newPlayer(c chess.Color, reg *chess.Registry) *Player {
	return &Player{
		color:    c,
		selected: reg.FirstAlive(),
		last:     -1,
	}
}

func (p *Player) Color() chess.Color      { return p.color }
func (p *Player) Score() int              { return p.score }
func (p *Player) Mode() Mode              { return p.mode }
func (p *Player) Selected() chess.PieceID { return p.selected }

// Cursor is the index of the pending destination while Moving.
func (p *Player) Cursor() int { return p.cursor }

// LastDestination is the cell this player last moved a piece to.
func (p *Player) LastDestination() (int, bool) {
	return p.last, p.last >= 0
}

// rehome moves the selection off a dead piece, scanning forward and
// then backward. It leaves NoPiece when the player has nothing left.
func (p *Player) rehome(reg *chess.Registry) {
	if p.selected == chess.NoPiece {
		p.selected = reg.FirstAlive()
		return
	}
	if reg.Get(p.selected).Alive {
		return
	}
	if n := reg.NextAlive(p.selected, 1); n != p.selected {
		p.selected = n
		return
	}
	if n := reg.NextAlive(p.selected, -1); n != p.selected {
		p.selected = n
		return
	}
	p.selected = chess.NoPiece
}

func (p *Player) reset() {
	p.mode = Selecting
	p.cursor = 0
	p.candidates = nil
}
