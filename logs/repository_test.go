package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridchess/gridchess/chesstest"
	"github.com/gridchess/gridchess/session"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSessionRoundTrip(t *testing.T) {
	repo := openTemp(t)
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.InsertSession(&Session{
		ID: "s1", Started: started, Rows: 8, Cols: 8, First: "white",
	}))
	require.NoError(t, repo.FinishSession("s1", "quit", 3))

	s, err := repo.Session("s1")
	require.NoError(t, err)
	assert.Equal(t, "quit", s.Result)
	assert.Equal(t, 3, s.Plies)
	assert.True(t, started.Equal(s.Started), "started=%v", s.Started)

	_, err = repo.Session("nope")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, repo.FinishSession("nope", "quit", 0), ErrNoSession)

	ss, err := repo.Sessions()
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "s1", ss[0].ID)
}

func TestMovesOrdered(t *testing.T) {
	repo := openTemp(t)
	require.NoError(t, repo.InsertSession(&Session{ID: "s1", Started: time.Now()}))
	require.NoError(t, repo.InsertMoves([]*Move{
		{Session: "s1", Ply: 2, Color: "black", Kind: "pawn", From: 48, To: 40, Notation: "Pa7-a6"},
		{Session: "s1", Ply: 1, Color: "white", Kind: "pawn", From: 8, To: 16, Notation: "Pa2-a3"},
	}))
	require.NoError(t, repo.InsertMove(&Move{
		Session: "s1", Ply: 3, Color: "white", Kind: "rook", From: 0, To: 48,
		Notation: "Ra1xa7", Captured: "pawn",
	}))

	ms, err := repo.Moves("s1")
	require.NoError(t, err)
	require.Len(t, ms, 3)
	for i, m := range ms {
		assert.Equal(t, i+1, m.Ply)
	}
	assert.Equal(t, "Ra1xa7", ms[2].Notation)

	// A duplicate ply aborts the whole batch.
	err = repo.InsertMoves([]*Move{
		{Session: "s1", Ply: 4, Color: "black"},
		{Session: "s1", Ply: 1, Color: "white"},
	})
	assert.Error(t, err)
	ms, err = repo.Moves("s1")
	require.NoError(t, err)
	assert.Len(t, ms, 3)

	caps, err := repo.Captures("s1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"white": 1}, caps)
}

func play(t *testing.T, s *session.Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, ok := s.Tick(session.Intents{ToggleMode: true, CommitMove: true})
		require.True(t, ok, "ply %d", i+1)
	}
}

func TestRecorder(t *testing.T) {
	for _, batch := range []bool{false, true} {
		repo := openTemp(t)
		p, toMove := chesstest.Position("4k3/8/8/8/r7/8/8/R3K3 w")
		s := session.New(p, session.Config{First: toMove})
		rec, err := StartSession(repo, s, batch)
		require.NoError(t, err)

		// The rook's seventh candidate is the capture on a5.
		require.NoError(t, s.Toggle())
		for i := 0; i < 6; i++ {
			require.NoError(t, s.Cycle(1))
		}
		_, err = s.Commit()
		require.NoError(t, err)
		play(t, s, 1)

		if batch {
			ms, err := repo.Moves(rec.ID())
			require.NoError(t, err)
			assert.Empty(t, ms, "batched moves written early")
		}
		require.NoError(t, rec.Finish(s, "quit"))
		assert.Equal(t, 0, rec.Errors())

		ms, err := repo.Moves(rec.ID())
		require.NoError(t, err)
		require.Len(t, ms, 2)
		assert.Equal(t, "Ra1xa5", ms[0].Notation)
		assert.Equal(t, "rook", ms[0].Captured)
		assert.Equal(t, "black", ms[1].Color)
		assert.Equal(t, "", ms[1].Captured)

		row, err := repo.Session(rec.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, row.Plies)
		assert.Equal(t, "quit", row.Result)
		assert.Equal(t, "white", row.First)
	}
}
