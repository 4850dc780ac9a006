package chess

import (
	"fmt"
	"log"
)

// Cell is the occupancy record of one board cell.
type Cell struct {
	Occupied bool
	Owner    Color
	Piece    PieceID
}

// Capture names a piece displaced by a relocation. The caller is
// responsible for marking it dead in its owner's Registry.
type Capture struct {
	Color Color
	Piece PieceID
	Cell  int
}

// Ledger is the authoritative record of what occupies each cell. It
// stores occupancy, owner and piece reference as parallel slices
// indexed by cell.
type Ledger struct {
	occupied []bool
	owner    []Color
	piece    []PieceID
}

func NewLedger(cells int) *Ledger {
	l := &Ledger{
		occupied: make([]bool, cells),
		owner:    make([]Color, cells),
		piece:    make([]PieceID, cells),
	}
	for i := range l.piece {
		l.piece[i] = NoPiece
	}
	return l
}

func (l *Ledger) Len() int {
	return len(l.occupied)
}

func (l *Ledger) check(cell int) {
	if cell < 0 || cell >= len(l.occupied) {
		panic(fmt.Sprintf("cell out of range: %d (of %d)", cell, len(l.occupied)))
	}
}

func (l *Ledger) Query(cell int) Cell {
	l.check(cell)
	return Cell{
		Occupied: l.occupied[cell],
		Owner:    l.owner[cell],
		Piece:    l.piece[cell],
	}
}

// Place records piece id of color c on an empty cell.
func (l *Ledger) Place(cell int, c Color, id PieceID) error {
	l.check(cell)
	if c != White && c != Black {
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
	if l.occupied[cell] {
		return ErrOccupied
	}
	l.occupied[cell] = true
	l.owner[cell] = c
	l.piece[cell] = id
	return nil
}

func (l *Ledger) Vacate(cell int) {
	l.check(cell)
	l.occupied[cell] = false
	l.owner[cell] = NoColor
	l.piece[cell] = NoPiece
}

// Relocate moves piece id of color c from one cell to another. If
// the destination holds an enemy piece it is displaced and returned
// as a Capture. Moving onto one's own piece is refused without
// touching the ledger.
func (l *Ledger) Relocate(from, to int, c Color, id PieceID) (*Capture, error) {
	l.check(from)
	l.check(to)
	dst := l.Query(to)
	var capt *Capture
	if dst.Occupied {
		if dst.Owner == c {
			log.Printf("error: relocate %s piece %d %d->%d: destination holds own piece %d",
				c, id, from, to, dst.Piece)
			return nil, ErrOwnPiece
		}
		capt = &Capture{Color: dst.Owner, Piece: dst.Piece, Cell: to}
		l.Vacate(to)
	}
	l.Vacate(from)
	if err := l.Place(to, c, id); err != nil {
		panic(fmt.Sprintf("relocate: place after vacate: %v", err))
	}
	return capt, nil
}
