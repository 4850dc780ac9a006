package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry(n int) *Registry {
	r := NewRegistry(White, n)
	for i := 0; i < n; i++ {
		r.add(Piece{Kind: Pawn, ActionPoints: 1, Cell: i})
	}
	return r
}

func TestRegistryMarkDead(t *testing.T) {
	r := newTestRegistry(4)
	assert.Equal(t, 4, r.Live())
	r.MarkDead(2)
	r.MarkDead(2)
	assert.Equal(t, 3, r.Live())
	assert.Equal(t, 4, r.Len())
	assert.False(t, r.Get(2).Alive)
	assert.True(t, r.Get(3).Alive)
}

func TestRegistryNextAlive(t *testing.T) {
	r := newTestRegistry(6)
	r.MarkDead(1)
	r.MarkDead(2)
	r.MarkDead(5)

	cases := []struct {
		from PieceID
		dir  int
		want PieceID
	}{
		{0, 1, 3},
		{3, -1, 0},
		{3, 1, 4},
		{4, 1, 4},
		{0, -1, 0},
		{2, 1, 3},
		{2, -1, 0},
		{5, 1, 5},
		{5, -1, 4},
		{3, 0, 3},
	}
	for _, tc := range cases {
		got := r.NextAlive(tc.from, tc.dir)
		assert.Equal(t, tc.want, got, "NextAlive(%d, %d)", tc.from, tc.dir)
		if got != tc.from {
			assert.True(t, r.Get(got).Alive, "NextAlive(%d, %d) returned dead piece", tc.from, tc.dir)
		}
	}
	assert.Equal(t, PieceID(0), r.FirstAlive())
	r.MarkDead(0)
	assert.Equal(t, PieceID(3), r.FirstAlive())
}

func TestRegistryBounds(t *testing.T) {
	r := newTestRegistry(2)
	assert.Panics(t, func() { r.Get(2) })
	assert.Panics(t, func() { r.Get(NoPiece) })
	assert.Panics(t, func() { r.NextAlive(7, 1) })
	assert.Panics(t, func() { r.add(Piece{Kind: Pawn, ActionPoints: 1}) })
	assert.Panics(t, func() { NewRegistry(Black, 1).add(Piece{Kind: Rook}) })
}
