package chesstest

import (
	"fmt"
	"strings"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/notation"
)

func Position(diagram string) (*chess.Position, chess.Color) {
	p, toMove, e := notation.ParseBoard(chess.Config{}, diagram)
	if e != nil {
		panic(e)
	}
	return p, toMove
}

func Cell(p *chess.Position, name string) int {
	c, e := notation.ParseCell(p.Geometry(), name)
	if e != nil {
		panic(e)
	}
	return c
}

// PieceAt returns the owner and id of the piece on the named cell.
func PieceAt(p *chess.Position, name string) (chess.Color, chess.PieceID) {
	q := p.Ledger().Query(Cell(p, name))
	if !q.Occupied {
		panic(fmt.Sprintf("no piece on %s", name))
	}
	return q.Owner, q.Piece
}

// Play applies space-separated moves, alternating colors starting
// with toMove, and returns the color to move afterwards.
func Play(p *chess.Position, toMove chess.Color, ms string) chess.Color {
	if ms == "" {
		return toMove
	}
	for _, s := range strings.Split(ms, " ") {
		m, e := notation.ParseMove(p.Geometry(), s)
		if e != nil {
			panic(e)
		}
		q := p.Ledger().Query(m.From)
		if !q.Occupied || q.Owner != toMove {
			panic(fmt.Sprintf("%s: no %s piece on the source cell", s, toMove))
		}
		if k := p.Piece(q.Owner, q.Piece).Kind; k != m.Kind {
			panic(fmt.Sprintf("%s: source holds a %s", s, k))
		}
		capt, e := p.Move(toMove, q.Piece, m.To)
		if e != nil {
			panic(fmt.Sprintf("%s: %v", s, e))
		}
		if (capt != nil) != m.Capture {
			panic(fmt.Sprintf("%s: capture mismatch", s))
		}
		toMove = toMove.Flip()
	}
	return toMove
}
