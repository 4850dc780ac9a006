package chess

import (
	"errors"
	"fmt"

	"github.com/gridchess/gridchess/geom"
	"github.com/gridchess/gridchess/quadtree"
)

var (
	ErrOccupied    = errors.New("cell is occupied")
	ErrOwnPiece    = errors.New("destination holds own piece")
	ErrIllegalMove = errors.New("illegal move")
	ErrBadConfig   = errors.New("bad board configuration")
)

type Config struct {
	Rows     int
	Cols     int
	TileSize float64
	Kinds    *KindTable
}

const (
	defaultDim  = 8
	defaultTile = 5.0
)

func (c *Config) fill() {
	if c.Rows == 0 {
		c.Rows = defaultDim
	}
	if c.Cols == 0 {
		c.Cols = defaultDim
	}
	if c.TileSize == 0 {
		c.TileSize = defaultTile
	}
	if c.Kinds == nil {
		c.Kinds = DefaultKinds()
	}
}

func (c *Config) Geometry() geom.Geometry {
	return geom.Geometry{Rows: c.Rows, Cols: c.Cols, TileSize: c.TileSize}
}

func (c *Config) validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return c.Kinds.Validate()
}

// PieceRef identifies a piece across both registries.
type PieceRef struct {
	Color Color
	ID    PieceID
}

// Position is the complete board state of a session: the cell
// ledger, one registry per player, and a spatial index of the alive
// pieces. All mutation after setup goes through Move.
type Position struct {
	cfg     Config
	geom    geom.Geometry
	ledger  *Ledger
	players [2]*Registry
	index   *quadtree.Tree[PieceRef]
}

func newPosition(cfg Config) (*Position, error) {
	cfg.fill()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := cfg.Geometry()
	return &Position{
		cfg:    cfg,
		geom:   g,
		ledger: NewLedger(g.Cells()),
		index:  quadtree.New[PieceRef](g.Rows, g.Cols),
	}, nil
}

// New returns a position with both players in the starting layout.
func New(cfg Config) (*Position, error) {
	p, err := newPosition(cfg)
	if err != nil {
		return nil, err
	}
	if p.geom.Rows < 4 {
		return nil, fmt.Errorf("%w: starting layout needs at least 4 rows, have %d",
			ErrBadConfig, p.geom.Rows)
	}
	for _, c := range []Color{White, Black} {
		p.players[c.Index()] = NewRegistry(c, StartingPieces(p.geom))
		if err := p.SetStartingLayout(c, SideOf(c)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Placement puts one piece on the board when building a position
// piecemeal. A zero ActionPoints takes the kind's default.
type Placement struct {
	Color        Color
	Kind         Kind
	Coord        geom.Coord
	ActionPoints int
}

// FromPlacements builds a position holding exactly the given pieces.
// Each registry's capacity is the number of pieces placed for that
// color, and PieceIDs follow the order of ps.
func FromPlacements(cfg Config, ps []Placement) (*Position, error) {
	p, err := newPosition(cfg)
	if err != nil {
		return nil, err
	}
	var counts [2]int
	for _, pl := range ps {
		if pl.Color != White && pl.Color != Black {
			return nil, fmt.Errorf("%w: placement with no color", ErrBadConfig)
		}
		if !pl.Kind.Valid() {
			return nil, fmt.Errorf("%w: bad kind %d", ErrBadConfig, int(pl.Kind))
		}
		counts[pl.Color.Index()]++
	}
	p.players[0] = NewRegistry(White, counts[0])
	p.players[1] = NewRegistry(Black, counts[1])
	for _, pl := range ps {
		if pl.ActionPoints < 0 {
			return nil, fmt.Errorf("%w: negative action points", ErrBadConfig)
		}
		if err := p.put(pl); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Position) put(pl Placement) error {
	cell, ok := p.geom.Index(pl.Coord)
	if !ok {
		return fmt.Errorf("%w: %v is off the board", ErrBadConfig, pl.Coord)
	}
	ap := pl.ActionPoints
	if ap == 0 {
		ap = p.DefaultActionPoints(pl.Kind)
	}
	reg := p.players[pl.Color.Index()]
	if p.ledger.Query(cell).Occupied {
		return fmt.Errorf("%w: %v", ErrOccupied, pl.Coord)
	}
	id := reg.add(Piece{
		Kind:         pl.Kind,
		Coord:        pl.Coord,
		World:        p.geom.World(pl.Coord),
		ActionPoints: ap,
		Cell:         cell,
	})
	if err := p.ledger.Place(cell, pl.Color, id); err != nil {
		return err
	}
	row, col := p.geom.RowCol(pl.Coord)
	return p.index.Insert(PieceRef{pl.Color, id}, row, col)
}

// DefaultActionPoints is the step budget a freshly placed piece of
// kind k receives.
func (p *Position) DefaultActionPoints(k Kind) int {
	if p.cfg.Kinds.Info(k).Sliding {
		return p.geom.Span()
	}
	return 1
}

func (p *Position) Geometry() geom.Geometry {
	return p.geom
}

func (p *Position) Kinds() *KindTable {
	return p.cfg.Kinds
}

// Ledger exposes the cell ledger for reading. Writing to it directly
// bypasses the registries and the spatial index.
func (p *Position) Ledger() *Ledger {
	return p.ledger
}

func (p *Position) Registry(c Color) *Registry {
	return p.players[c.Index()]
}

func (p *Position) Piece(c Color, id PieceID) Piece {
	return p.Registry(c).Get(id)
}

// At returns the occupancy of the cell at c, and false if c is off
// the board.
func (p *Position) At(c geom.Coord) (Cell, bool) {
	cell, ok := p.geom.Index(c)
	if !ok {
		return Cell{Piece: NoPiece}, false
	}
	return p.ledger.Query(cell), true
}

// PiecesIn returns the alive pieces whose cells fall inside r, which
// is given in zero-based rows and columns.
func (p *Position) PiecesIn(r quadtree.Rect) []PieceRef {
	return p.index.Query(r)
}

// Move commits piece id of color c to the destination cell. The
// destination must be one of the piece's current candidates. Capture
// of an enemy, the ledger update, the piece's own bookkeeping and
// the spatial index are applied together; on error nothing changes.
func (p *Position) Move(c Color, id PieceID, to int) (*Capture, error) {
	reg := p.Registry(c)
	pc := reg.Get(id)
	if !pc.Alive {
		panic(fmt.Sprintf("move of dead %s piece %d", c, id))
	}
	if dst := p.ledger.Query(to); dst.Occupied && dst.Owner == c {
		return nil, ErrOwnPiece
	}
	legal := false
	for _, cand := range p.Candidates(c, id) {
		if cand.Cell == to {
			legal = true
			break
		}
	}
	if !legal {
		return nil, ErrIllegalMove
	}

	capt, err := p.ledger.Relocate(pc.Cell, to, c, id)
	if err != nil {
		return nil, err
	}
	if capt != nil {
		p.Registry(capt.Color).MarkDead(capt.Piece)
		p.index.Remove(PieceRef{capt.Color, capt.Piece})
	}
	dest := p.geom.CoordOf(to)
	reg.relocate(id, to, dest, p.geom.World(dest))
	row, col := p.geom.RowCol(dest)
	if err := p.index.Move(PieceRef{c, id}, row, col); err != nil {
		panic(fmt.Sprintf("spatial index out of sync: %v", err))
	}
	return capt, nil
}

// CheckInvariants cross-checks the ledger, both registries and the
// spatial index, returning the first inconsistency found.
func (p *Position) CheckInvariants() error {
	refs := make(map[PieceRef]int)
	for cell := 0; cell < p.ledger.Len(); cell++ {
		q := p.ledger.Query(cell)
		if q.Occupied != (q.Owner != NoColor) {
			return fmt.Errorf("cell %d: occupied=%v owner=%s", cell, q.Occupied, q.Owner)
		}
		if !q.Occupied {
			if q.Piece != NoPiece {
				return fmt.Errorf("cell %d: empty but references piece %d", cell, q.Piece)
			}
			continue
		}
		reg := p.Registry(q.Owner)
		if q.Piece < 0 || int(q.Piece) >= reg.Len() {
			return fmt.Errorf("cell %d: bad piece reference %s/%d", cell, q.Owner, q.Piece)
		}
		pc := reg.Get(q.Piece)
		if !pc.Alive {
			return fmt.Errorf("cell %d: references dead %s piece %d", cell, q.Owner, q.Piece)
		}
		if at, _ := p.geom.Index(pc.Coord); at != cell || pc.Cell != cell {
			return fmt.Errorf("cell %d: %s piece %d thinks it is at %v (cell %d)",
				cell, q.Owner, q.Piece, pc.Coord, pc.Cell)
		}
		refs[PieceRef{q.Owner, q.Piece}]++
	}
	indexed := 0
	for _, reg := range p.players {
		live := 0
		for i := 0; i < reg.Len(); i++ {
			pc := reg.Get(PieceID(i))
			ref := PieceRef{reg.Color(), PieceID(i)}
			row, col, ok := p.index.Find(ref)
			if !pc.Alive {
				if refs[ref] != 0 || ok {
					return fmt.Errorf("dead %s piece %d is still on the board", ref.Color, ref.ID)
				}
				continue
			}
			live++
			if refs[ref] != 1 {
				return fmt.Errorf("%s piece %d is referenced by %d cells", ref.Color, ref.ID, refs[ref])
			}
			if r, c := p.geom.RowCol(pc.Coord); !ok || r != row || c != col {
				return fmt.Errorf("%s piece %d: spatial index disagrees", ref.Color, ref.ID)
			}
			indexed++
		}
		if live != reg.Live() {
			return fmt.Errorf("%s: live count %d, counted %d", reg.Color(), reg.Live(), live)
		}
	}
	if indexed != p.index.Len() {
		return fmt.Errorf("spatial index holds %d pieces, %d alive", p.index.Len(), indexed)
	}
	return nil
}
