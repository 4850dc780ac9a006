package chess

import (
	"fmt"

	"github.com/gridchess/gridchess/geom"
)

// Piece is one entry in a Registry.
type Piece struct {
	Kind         Kind
	Coord        geom.Coord
	World        geom.Vec3
	Alive        bool
	ActionPoints int
	// Cell is the ledger cell this piece stands on. It is stale once
	// the piece has been captured.
	Cell int
}

// Registry is a fixed-capacity arena of one player's pieces. Dead
// pieces keep their slot so that PieceIDs stay valid for the
// lifetime of a session.
type Registry struct {
	color  Color
	pieces []Piece
	live   int
}

func NewRegistry(c Color, capacity int) *Registry {
	return &Registry{
		color:  c,
		pieces: make([]Piece, 0, capacity),
	}
}

func (r *Registry) Color() Color {
	return r.color
}

func (r *Registry) Len() int {
	return len(r.pieces)
}

func (r *Registry) Cap() int {
	return cap(r.pieces)
}

// Live is the number of pieces not yet captured.
func (r *Registry) Live() int {
	return r.live
}

func (r *Registry) check(id PieceID) {
	if id < 0 || int(id) >= len(r.pieces) {
		panic(fmt.Sprintf("%s piece out of range: %d (of %d)", r.color, id, len(r.pieces)))
	}
}

func (r *Registry) Get(id PieceID) Piece {
	r.check(id)
	return r.pieces[id]
}

func (r *Registry) add(p Piece) PieceID {
	if len(r.pieces) == cap(r.pieces) {
		panic(fmt.Sprintf("%s registry full (%d pieces)", r.color, cap(r.pieces)))
	}
	if p.ActionPoints <= 0 {
		panic(fmt.Sprintf("bad action points: %d", p.ActionPoints))
	}
	p.Alive = true
	r.pieces = append(r.pieces, p)
	r.live++
	return PieceID(len(r.pieces) - 1)
}

func (r *Registry) MarkDead(id PieceID) {
	r.check(id)
	if !r.pieces[id].Alive {
		return
	}
	r.pieces[id].Alive = false
	r.live--
}

func (r *Registry) relocate(id PieceID, cell int, c geom.Coord, w geom.Vec3) {
	r.check(id)
	p := &r.pieces[id]
	p.Cell = cell
	p.Coord = c
	p.World = w
}

// NextAlive scans from id in direction dir (positive or negative)
// for the nearest alive piece. It never wraps, and returns id
// unchanged if there is no alive piece that way.
func (r *Registry) NextAlive(id PieceID, dir int) PieceID {
	r.check(id)
	step := PieceID(1)
	switch {
	case dir < 0:
		step = -1
	case dir == 0:
		return id
	}
	for i := id + step; i >= 0 && int(i) < len(r.pieces); i += step {
		if r.pieces[i].Alive {
			return i
		}
	}
	return id
}

// FirstAlive returns the lowest alive PieceID, or NoPiece.
func (r *Registry) FirstAlive() PieceID {
	for i, p := range r.pieces {
		if p.Alive {
			return PieceID(i)
		}
	}
	return NoPiece
}
