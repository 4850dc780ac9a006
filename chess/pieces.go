package chess

import "fmt"

type Color byte
type Kind byte
type Side byte

// PieceID indexes a piece within its owner's Registry.
type PieceID int

const NoPiece PieceID = -1

const (
	NoColor Color = iota
	White
	Black
)

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King

	NumKinds = int(King) + 1
)

const (
	Bottom Side = iota
	Top
)

var kindNames = [NumKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}
var kindLetters = [NumKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		panic(fmt.Sprintf("bad kind: %d", int(k)))
	}
	return kindNames[k]
}

// Letter is the upper-case notation letter for k.
func (k Kind) Letter() byte {
	if !k.Valid() {
		panic(fmt.Sprintf("bad kind: %d", int(k)))
	}
	return kindLetters[k]
}

func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

func KindByLetter(b byte) (Kind, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	for i, l := range kindLetters {
		if l == b {
			return Kind(i), true
		}
	}
	return 0, false
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// Index maps White and Black to 0 and 1.
func (c Color) Index() int {
	switch c {
	case White:
		return 0
	case Black:
		return 1
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// SideOf returns the side of the board a color starts on. White
// starts at the bottom and moves first.
func SideOf(c Color) Side {
	if c == White {
		return Bottom
	}
	return Top
}

// Sign orients the offset tables, which are written from the bottom
// side's point of view.
func (s Side) Sign() int {
	if s == Bottom {
		return 1
	}
	return -1
}

func (s Side) String() string {
	if s == Bottom {
		return "bottom"
	}
	return "top"
}
