// Package quadtree implements a fixed-depth region quadtree over a
// grid of cells. The root covers a power-of-two square; every item
// lives in the unit quadrant of its cell, and interior quadrants are
// only materialized while something beneath them is occupied.
package quadtree

import "errors"

var (
	ErrOutOfBounds = errors.New("cell outside tree bounds")
	ErrDuplicate   = errors.New("key already present")
	ErrCellTaken   = errors.New("cell already holds an item")
)

// Rect is a half-open rectangle of cells.
type Rect struct {
	Row, Col   int
	Rows, Cols int
}

func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Rows &&
		col >= r.Col && col < r.Col+r.Cols
}

func (r Rect) Intersects(o Rect) bool {
	return r.Row < o.Row+o.Rows && o.Row < r.Row+r.Rows &&
		r.Col < o.Col+o.Cols && o.Col < r.Col+r.Cols
}

func (r Rect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}

type point struct {
	row, col int
}

type node[K comparable] struct {
	bounds Rect
	count  int
	kids   [4]*node[K]

	key K
	has bool
}

func (n *node[K]) quadrant(row, col int) int {
	half := n.bounds.Rows / 2
	q := 0
	if row >= n.bounds.Row+half {
		q |= 2
	}
	if col >= n.bounds.Col+half {
		q |= 1
	}
	return q
}

func (n *node[K]) child(row, col int) *node[K] {
	q := n.quadrant(row, col)
	if n.kids[q] == nil {
		half := n.bounds.Rows / 2
		b := Rect{Row: n.bounds.Row, Col: n.bounds.Col, Rows: half, Cols: half}
		if q&2 != 0 {
			b.Row += half
		}
		if q&1 != 0 {
			b.Col += half
		}
		n.kids[q] = &node[K]{bounds: b}
	}
	return n.kids[q]
}

// Tree indexes keys by the cell they occupy. At most one key may
// occupy a cell.
type Tree[K comparable] struct {
	root  *node[K]
	where map[K]point
}

// New returns a tree able to hold every cell of a rows × cols grid.
func New[K comparable](rows, cols int) *Tree[K] {
	size := 1
	for size < rows || size < cols {
		size <<= 1
	}
	return &Tree[K]{
		root:  &node[K]{bounds: Rect{Rows: size, Cols: size}},
		where: make(map[K]point),
	}
}

// Bounds is the square covered by the root quadrant.
func (t *Tree[K]) Bounds() Rect {
	return t.root.bounds
}

func (t *Tree[K]) Len() int {
	return t.root.count
}

func (t *Tree[K]) Find(key K) (row, col int, ok bool) {
	p, ok := t.where[key]
	return p.row, p.col, ok
}

func (t *Tree[K]) Insert(key K, row, col int) error {
	if !t.root.bounds.Contains(row, col) {
		return ErrOutOfBounds
	}
	if _, ok := t.where[key]; ok {
		return ErrDuplicate
	}
	if t.occupied(row, col) {
		return ErrCellTaken
	}
	n := t.root
	for {
		n.count++
		if n.bounds.Rows == 1 {
			break
		}
		n = n.child(row, col)
	}
	n.key = key
	n.has = true
	t.where[key] = point{row, col}
	return nil
}

func (t *Tree[K]) occupied(row, col int) bool {
	n := t.root
	for n != nil && n.count > 0 {
		if n.bounds.Rows == 1 {
			return n.has
		}
		n = n.kids[n.quadrant(row, col)]
	}
	return false
}

// Remove deletes key, pruning quadrants left empty. It reports
// whether key was present.
func (t *Tree[K]) Remove(key K) bool {
	p, ok := t.where[key]
	if !ok {
		return false
	}
	delete(t.where, key)
	n := t.root
	for {
		n.count--
		if n.bounds.Rows == 1 {
			var zero K
			n.key = zero
			n.has = false
			return true
		}
		q := n.quadrant(p.row, p.col)
		next := n.kids[q]
		if next.count == 1 {
			n.kids[q] = nil
			return true
		}
		n = next
	}
}

// Move relocates key to a new cell.
func (t *Tree[K]) Move(key K, row, col int) error {
	old, ok := t.where[key]
	if !ok {
		return t.Insert(key, row, col)
	}
	if old.row == row && old.col == col {
		return nil
	}
	if !t.root.bounds.Contains(row, col) {
		return ErrOutOfBounds
	}
	if t.occupied(row, col) {
		return ErrCellTaken
	}
	t.Remove(key)
	return t.Insert(key, row, col)
}

// Query returns the keys whose cells fall inside r, in quadrant
// order (top-left, top-right, bottom-left, bottom-right at every
// level).
func (t *Tree[K]) Query(r Rect) []K {
	var out []K
	if r.Empty() {
		return out
	}
	return query(t.root, r, out)
}

func query[K comparable](n *node[K], r Rect, out []K) []K {
	if n == nil || n.count == 0 || !n.bounds.Intersects(r) {
		return out
	}
	if n.bounds.Rows == 1 {
		if n.has {
			out = append(out, n.key)
		}
		return out
	}
	for _, k := range n.kids {
		out = query(k, r, out)
	}
	return out
}
