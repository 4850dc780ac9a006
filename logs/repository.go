// Package logs is an append-only journal of played sessions and
// their committed moves, kept in SQLite for later inspection.
package logs

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

var ErrNoSession = errors.New("no such session")

type Repository struct {
	db *sqlx.DB
}

type Session struct {
	ID      string    `db:"id"`
	Started time.Time `db:"started"`
	Rows    int       `db:"board_rows"`
	Cols    int       `db:"board_cols"`
	First   string    `db:"first"`
	Result  string    `db:"result"`
	Plies   int       `db:"plies"`
}

type Move struct {
	Session  string `db:"session"`
	Ply      int    `db:"ply"`
	Color    string `db:"color"`
	Piece    int    `db:"piece"`
	Kind     string `db:"kind"`
	From     int    `db:"src"`
	To       int    `db:"dst"`
	Notation string `db:"notation"`
	Captured string `db:"captured"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// Concurrent writers share one connection.
	db.SetMaxOpenConns(1)
	for _, s := range []struct {
		what, stmt string
	}{
		{"sessions table", createSessionTable},
		{"moves table", createMoveTable},
		{"session_scores view", createScoreView},
	} {
		if _, err := db.Exec(s.stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create %s: %w", s.what, err)
		}
	}
	return &Repository{db: db}, nil
}

func (r *Repository) InsertSession(s *Session) error {
	_, err := r.db.NamedExec(insertSession, s)
	return err
}

func (r *Repository) FinishSession(id, result string, plies int) error {
	res, err := r.db.Exec(finishSession, result, plies, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	return nil
}

func (r *Repository) InsertMove(m *Move) error {
	_, err := r.db.NamedExec(insertMove, m)
	return err
}

// InsertMoves writes a batch of moves in one transaction.
func (r *Repository) InsertMoves(ms []*Move) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	for _, m := range ms {
		if _, e := txn.NamedExec(insertMove, m); e != nil {
			return fmt.Errorf("insert ply %d: %w", m.Ply, e)
		}
	}
	return txn.Commit()
}

func (r *Repository) Sessions() ([]Session, error) {
	var out []Session
	if err := r.db.Select(&out, selectSessions); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Session(id string) (*Session, error) {
	var s Session
	err := r.db.Get(&s, selectSession, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Moves(id string) ([]Move, error) {
	var out []Move
	if err := r.db.Select(&out, selectMoves, id); err != nil {
		return nil, err
	}
	return out, nil
}

// Captures returns the number of captures per color in a session.
func (r *Repository) Captures(id string) (map[string]int, error) {
	rows, err := r.db.Queryx(selectScores, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var color string
		var n int
		if err := rows.Scan(&color, &n); err != nil {
			return nil, err
		}
		out[color] = n
	}
	return out, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
