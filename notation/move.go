package notation

import (
	"errors"
	"regexp"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/geom"
)

// Move is a committed move in text form: kind letter, source cell,
// "-" or "x" for a capture, destination cell. "Nb1-c3", "Ra1xa5".
type Move struct {
	Kind     chess.Kind
	From, To int
	Capture  bool
}

var moveRE = regexp.MustCompile(`^([PNBRQK])([a-z][0-9]+)([-x])([a-z][0-9]+)$`)

var ErrBadMove = errors.New("malformed move")

func FormatMove(g geom.Geometry, m Move) string {
	sep := "-"
	if m.Capture {
		sep = "x"
	}
	return string(m.Kind.Letter()) + CellName(g, m.From) + sep + CellName(g, m.To)
}

func ParseMove(g geom.Geometry, s string) (Move, error) {
	groups := moveRE.FindStringSubmatch(s)
	if groups == nil {
		return Move{}, ErrBadMove
	}
	k, ok := chess.KindByLetter(groups[1][0])
	if !ok {
		panic("parser error")
	}
	from, err := ParseCell(g, groups[2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseCell(g, groups[4])
	if err != nil {
		return Move{}, err
	}
	return Move{Kind: k, From: from, To: to, Capture: groups[3] == "x"}, nil
}
