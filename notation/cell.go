package notation

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/geom"
)

var title = cases.Title(language.English)

// CellName names a cell by column letter and 1-based row, e.g. "a1"
// for cell 0.
func CellName(g geom.Geometry, cell int) string {
	if cell < 0 || cell >= g.Cells() {
		panic(fmt.Sprintf("cell out of range: %d", cell))
	}
	row, col := cell/g.Cols, cell%g.Cols
	return string(rune('a'+col)) + strconv.Itoa(row+1)
}

func ParseCell(g geom.Geometry, s string) (int, error) {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return -1, fmt.Errorf("bad cell: %q", s)
	}
	col := int(s[0] - 'a')
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return -1, fmt.Errorf("bad cell: %q", s)
	}
	row--
	if row >= g.Rows || col >= g.Cols {
		return -1, fmt.Errorf("cell off the board: %q", s)
	}
	return col + row*g.Cols, nil
}

// KindName is the display name of a kind, e.g. "Knight".
func KindName(k chess.Kind) string {
	return title.String(k.String())
}
