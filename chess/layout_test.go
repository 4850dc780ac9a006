package chess

import (
	"errors"
	"testing"

	"github.com/gridchess/gridchess/geom"
)

func TestBackRow(t *testing.T) {
	want := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	got := BackRow(8)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("BackRow(8)=%v", got)
		}
	}
	if got := BackRow(6); got[2] != Queen || got[3] != King || got[0] != Rook || got[5] != Rook {
		t.Errorf("BackRow(6)=%v", got)
	}
}

func TestStartingLayout(t *testing.T) {
	p, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	g := p.Geometry()
	_ = g
	for _, c := range []Color{White, Black} {
		reg := p.Registry(c)
		if reg.Len() != 16 || reg.Cap() != 16 || reg.Live() != 16 {
			t.Fatalf("%s: len=%d cap=%d live=%d", c, reg.Len(), reg.Cap(), reg.Live())
		}
		for i := 0; i < 8; i++ {
			if k := reg.Get(PieceID(i)).Kind; k != Pawn {
				t.Errorf("%s piece %d: %s", c, i, k)
			}
		}
		back := BackRow(8)
		for i := 8; i < 16; i++ {
			if k := reg.Get(PieceID(i)).Kind; k != back[i-8] {
				t.Errorf("%s piece %d: %s", c, i, k)
			}
		}
	}

	t.Log("White fills the first 16 cells, black the last 16")
	for cell := 0; cell < 64; cell++ {
		q := p.Ledger().Query(cell)
		switch {
		case cell < 16:
			if q.Owner != White {
				t.Errorf("cell %d: %+v", cell, q)
			}
		case cell >= 48:
			if q.Owner != Black {
				t.Errorf("cell %d: %+v", cell, q)
			}
		default:
			if q.Occupied {
				t.Errorf("cell %d: %+v", cell, q)
			}
		}
	}

	t.Log("Black's layout is the row-reverse of white's")
	for row := 0; row < 2; row++ {
		for col := 0; col < 8; col++ {
			w := p.ledger.Query(col + row*8)
			b := p.ledger.Query(col + (7-row)*8)
			wk := p.Piece(White, w.Piece).Kind
			bk := p.Piece(Black, b.Piece).Kind
			if wk != bk {
				t.Errorf("row %d col %d: white %s black %s", row, col, wk, bk)
			}
		}
	}

	pawn := p.Piece(White, 0)
	if pawn.Coord != (geom.Coord{X: -2, Y: -3}) || pawn.Cell != 8 || pawn.ActionPoints != 1 {
		t.Errorf("white pawn 0: %+v", pawn)
	}
	queen := p.Piece(White, 11)
	if queen.Kind != Queen || queen.ActionPoints != 7 || queen.Cell != 3 {
		t.Errorf("white queen: %+v", queen)
	}
	if w := p.Piece(Black, 12); w.Kind != King || w.Cell != 60 {
		t.Errorf("black king: %+v", w)
	}
}

func TestNewRejects(t *testing.T) {
	if _, err := New(Config{Rows: 3, Cols: 8}); err == nil {
		t.Errorf("3 rows accepted")
	}
	if _, err := New(Config{Rows: 40}); err == nil {
		t.Errorf("40 rows accepted")
	}
	kinds := DefaultKinds()
	kinds[Knight] = nil
	if _, err := New(Config{Kinds: kinds}); err == nil {
		t.Errorf("missing kind accepted")
	}
}

func TestSmallBoardLayout(t *testing.T) {
	p, err := New(Config{Rows: 4, Cols: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
	for cell := 0; cell < 16; cell++ {
		if !p.Ledger().Query(cell).Occupied {
			t.Errorf("cell %d empty on a full 4x4 board", cell)
		}
	}
}

func TestLayoutTwice(t *testing.T) {
	p, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.SetStartingLayout(White, Bottom); !errors.Is(err, ErrOccupied) {
		t.Fatalf("second layout: %v", err)
	}
	if n := p.Registry(White).Len(); n != 16 {
		t.Fatalf("white has %d pieces after a refused layout", n)
	}
}
