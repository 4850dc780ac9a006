package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/geom"
)

// A board diagram lists rows from the top of the board down,
// separated by "/". Within a row, white pieces are upper-case kind
// letters, black pieces lower-case, and a number stands for that
// many empty cells. The diagram ends with the color to move, "w" or
// "b".
const Start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

var ErrBadBoard = errors.New("malformed board diagram")

func FormatBoard(p *chess.Position, toMove chess.Color) string {
	g := p.Geometry()
	rows := make([]string, 0, g.Rows)
	for row := g.Rows - 1; row >= 0; row-- {
		var b strings.Builder
		empty := 0
		for col := 0; col < g.Cols; col++ {
			q := p.Ledger().Query(col + row*g.Cols)
			if !q.Occupied {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(pieceLetter(q.Owner, p.Piece(q.Owner, q.Piece).Kind))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		rows = append(rows, b.String())
	}
	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	return strings.Join(rows, "/") + " " + side
}

func pieceLetter(c chess.Color, k chess.Kind) byte {
	l := k.Letter()
	if c == chess.Black {
		l += 'a' - 'A'
	}
	return l
}

// ParseBoard builds a position from a diagram. The board dimensions
// come from the diagram; cfg supplies the rest. PieceIDs are handed
// out in cell order, starting from the bottom row.
func ParseBoard(cfg chess.Config, diagram string) (*chess.Position, chess.Color, error) {
	words := strings.Fields(diagram)
	if len(words) != 2 {
		return nil, chess.NoColor, fmt.Errorf("%w: want board and side to move", ErrBadBoard)
	}
	var toMove chess.Color
	switch words[1] {
	case "w":
		toMove = chess.White
	case "b":
		toMove = chess.Black
	default:
		return nil, chess.NoColor, fmt.Errorf("%w: bad side to move %q", ErrBadBoard, words[1])
	}

	var rows [][]byte
	for _, r := range strings.Split(words[0], "/") {
		row, err := parseRow(r)
		if err != nil {
			return nil, chess.NoColor, err
		}
		rows = append([][]byte{row}, rows...)
	}
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, chess.NoColor, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrBadBoard, i+1, len(r), len(rows[0]))
		}
	}
	cfg.Rows, cfg.Cols = len(rows), len(rows[0])
	g := geom.Geometry{Rows: cfg.Rows, Cols: cfg.Cols, TileSize: 1}
	if err := g.Validate(); err != nil {
		return nil, chess.NoColor, fmt.Errorf("%w: %w", ErrBadBoard, err)
	}

	var ps []chess.Placement
	for row, r := range rows {
		for col, b := range r {
			if b == 0 {
				continue
			}
			k, _ := chess.KindByLetter(b)
			c := chess.White
			if b >= 'a' {
				c = chess.Black
			}
			ps = append(ps, chess.Placement{Color: c, Kind: k, Coord: g.At(row, col)})
		}
	}
	p, err := chess.FromPlacements(cfg, ps)
	if err != nil {
		return nil, chess.NoColor, err
	}
	return p, toMove, nil
}

// parseRow returns one byte per cell: a piece letter, or 0 if empty.
func parseRow(row string) ([]byte, error) {
	var out []byte
	for i := 0; i < len(row); {
		b := row[i]
		if b >= '0' && b <= '9' {
			j := i
			for j < len(row) && row[j] >= '0' && row[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(row[i:j])
			if err != nil || b == '0' || len(out)+n > geom.MaxDim {
				return nil, fmt.Errorf("%w: bad gap %q in %q", ErrBadBoard, row[i:j], row)
			}
			out = append(out, make([]byte, n)...)
			i = j
			continue
		}
		if _, ok := chess.KindByLetter(b); !ok {
			return nil, fmt.Errorf("%w: bad piece %q in %q", ErrBadBoard, b, row)
		}
		if len(out) == geom.MaxDim {
			return nil, fmt.Errorf("%w: row too long: %q", ErrBadBoard, row)
		}
		out = append(out, b)
		i++
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrBadBoard)
	}
	return out, nil
}
