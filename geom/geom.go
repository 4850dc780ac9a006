// Package geom converts between the centered logical coordinates
// used by the game and the zero-based row/column indices used to
// address board cells.
package geom

import (
	"errors"
	"fmt"
)

// MaxDim is the largest supported row or column count. Cell names
// use a single letter per column.
const MaxDim = 26

// PieceHeight is the fixed vertical offset of a piece's world
// position above the board plane.
const PieceHeight = 1.5

var (
	ErrBadDims = errors.New("board dimensions out of range")
	ErrBadTile = errors.New("tile size must be positive")
)

// Coord is a centered logical coordinate. X runs along the rows (the
// forward axis of the offset tables) and Y along the columns.
type Coord struct {
	X, Y int
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

type Vec3 struct {
	X, Y, Z float64
}

// Geometry describes a rows × cols board laid out on tiles of
// TileSize world units.
type Geometry struct {
	Rows, Cols int
	TileSize   float64
}

func (g Geometry) Validate() error {
	if g.Rows < 2 || g.Cols < 2 || g.Rows > MaxDim || g.Cols > MaxDim {
		return fmt.Errorf("%w: %dx%d", ErrBadDims, g.Rows, g.Cols)
	}
	if g.TileSize <= 0 {
		return ErrBadTile
	}
	return nil
}

func (g Geometry) Cells() int {
	return g.Rows * g.Cols
}

// Span is the longest straight walk across the board, in steps.
func (g Geometry) Span() int {
	if g.Rows > g.Cols {
		return g.Rows - 1
	}
	return g.Cols - 1
}

func origin(n int) int {
	return n/2 - 1
}

// Min and Max return the inclusive range of centered coordinates.
func (g Geometry) Min() Coord {
	return Coord{-origin(g.Rows), -origin(g.Cols)}
}

func (g Geometry) Max() Coord {
	return Coord{g.Rows - 1 - origin(g.Rows), g.Cols - 1 - origin(g.Cols)}
}

func (g Geometry) RowCol(c Coord) (row, col int) {
	return c.X + origin(g.Rows), c.Y + origin(g.Cols)
}

func (g Geometry) InBounds(c Coord) bool {
	row, col := g.RowCol(c)
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index returns the cell index of c, or false if c is off the board.
func (g Geometry) Index(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return -1, false
	}
	row, col := g.RowCol(c)
	return col + row*g.Cols, true
}

// MustIndex is Index for coordinates known to be on the board.
func (g Geometry) MustIndex(c Coord) int {
	i, ok := g.Index(c)
	if !ok {
		panic(fmt.Sprintf("coordinate off board: %v", c))
	}
	return i
}

func (g Geometry) At(row, col int) Coord {
	return Coord{row - origin(g.Rows), col - origin(g.Cols)}
}

func (g Geometry) CoordOf(cell int) Coord {
	if cell < 0 || cell >= g.Cells() {
		panic(fmt.Sprintf("cell out of range: %d", cell))
	}
	return g.At(cell/g.Cols, cell%g.Cols)
}

// World returns the display position of a piece standing on c.
func (g Geometry) World(c Coord) Vec3 {
	return Vec3{
		X: g.TileSize*float64(c.X) - g.TileSize/2,
		Y: PieceHeight,
		Z: g.TileSize*float64(c.Y) - g.TileSize/2,
	}
}
