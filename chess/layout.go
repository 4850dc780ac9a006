package chess

import "github.com/gridchess/gridchess/geom"

// StartingPieces is the number of pieces each player starts with:
// a back row and a pawn row.
func StartingPieces(g geom.Geometry) int {
	return 2 * g.Cols
}

// BackRow returns the kinds on a player's back row, from column 0.
// On eight columns this is the familiar R N B Q K B N R.
func BackRow(cols int) []Kind {
	row := make([]Kind, cols)
	outer := []Kind{Rook, Knight, Bishop}
	for i := 0; i < cols/2; i++ {
		row[i] = outer[i%len(outer)]
		row[cols-1-i] = outer[i%len(outer)]
	}
	mid := cols / 2
	row[mid-1], row[mid] = Queen, King
	return row
}

// SetStartingLayout places c's pieces. A bottom player fills the
// first StartingPieces cells in row-major order and a top player the
// last; the top layout is the row-reverse of the bottom one. Pawns
// take the first PieceIDs, then the back row from column 0. Laying
// out a color twice fails with ErrOccupied.
func (p *Position) SetStartingLayout(c Color, side Side) error {
	g := p.geom
	pawnRow, backRow := 1, 0
	if side == Top {
		pawnRow, backRow = g.Rows-2, g.Rows-1
	}
	for col := 0; col < g.Cols; col++ {
		if err := p.put(Placement{Color: c, Kind: Pawn, Coord: g.At(pawnRow, col)}); err != nil {
			return err
		}
	}
	for col, k := range BackRow(g.Cols) {
		if err := p.put(Placement{Color: c, Kind: k, Coord: g.At(backRow, col)}); err != nil {
			return err
		}
	}
	return nil
}
