package chess

import (
	"fmt"

	"github.com/gridchess/gridchess/geom"
)

// Candidate is a legal destination for the piece being moved.
type Candidate struct {
	Cell    int
	Coord   geom.Coord
	Capture bool
}

// Candidates returns the legal destinations of piece id of color c.
func (p *Position) Candidates(c Color, id PieceID) []Candidate {
	return p.AppendCandidates(c, id, nil)
}

// AppendCandidates appends the legal destinations of piece id of
// color c to out. Offsets are walked in table order, each for up to
// the piece's action points, nearest cell first. A walk ends at the
// board edge, before an own piece, or on an enemy piece, which is
// emitted as a capture.
//
// Passing a dead piece, or one without action points, is a caller
// bug and panics.
func (p *Position) AppendCandidates(c Color, id PieceID, out []Candidate) []Candidate {
	pc := p.Registry(c).Get(id)
	if !pc.Alive {
		panic(fmt.Sprintf("move generation for dead %s piece %d", c, id))
	}
	if pc.ActionPoints <= 0 {
		panic(fmt.Sprintf("%s piece %d has %d action points", c, id, pc.ActionPoints))
	}
	sign := SideOf(c).Sign()
	for _, off := range p.cfg.Kinds.Info(pc.Kind).Offsets {
		dx, dy := off.DX*sign, off.DY*sign
		at := pc.Coord
		for step := 0; step < pc.ActionPoints; step++ {
			at = at.Add(dx, dy)
			cell, ok := p.geom.Index(at)
			if !ok {
				break
			}
			if cell == pc.Cell {
				continue
			}
			q := p.ledger.Query(cell)
			if !q.Occupied {
				out = append(out, Candidate{Cell: cell, Coord: at})
				continue
			}
			if q.Owner != c {
				out = append(out, Candidate{Cell: cell, Coord: at, Capture: true})
			}
			break
		}
	}
	return out
}

// HasAnyMove reports whether any alive piece of c has a candidate.
func (p *Position) HasAnyMove(c Color) bool {
	reg := p.Registry(c)
	var buf []Candidate
	for i := 0; i < reg.Len(); i++ {
		if !reg.Get(PieceID(i)).Alive {
			continue
		}
		buf = p.AppendCandidates(c, PieceID(i), buf[:0])
		if len(buf) > 0 {
			return true
		}
	}
	return false
}
