package logs

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gridchess/gridchess/notation"
	"github.com/gridchess/gridchess/session"
)

// Recorder journals one session. It registers itself as an observer
// and writes each committed move, either immediately or, if Batch is
// set, in one transaction when the session finishes.
type Recorder struct {
	repo  *Repository
	id    string
	batch bool

	pending []*Move
	errors  int
}

// StartSession records a new session row and begins observing s.
func StartSession(repo *Repository, s *session.Session, batch bool) (*Recorder, error) {
	g := s.Position().Geometry()
	row := &Session{
		ID:      uuid.NewString(),
		Started: time.Now().UTC(),
		Rows:    g.Rows,
		Cols:    g.Cols,
		First:   s.Active().String(),
	}
	if err := repo.InsertSession(row); err != nil {
		return nil, err
	}
	rec := &Recorder{repo: repo, id: row.ID, batch: batch}
	s.Observe(rec)
	return rec, nil
}

func (r *Recorder) ID() string { return r.id }

// Errors is the number of moves that could not be written.
func (r *Recorder) Errors() int { return r.errors }

func (r *Recorder) Committed(s *session.Session, ev session.Event) {
	m := MoveFromEvent(r.id, s, ev)
	if r.batch {
		r.pending = append(r.pending, m)
		return
	}
	if err := r.repo.InsertMove(m); err != nil {
		log.Printf("journal: session=%s ply=%d: %v", r.id, ev.Ply, err)
		r.errors++
	}
}

// Finish flushes any batched moves and stamps the session's result.
func (r *Recorder) Finish(s *session.Session, result string) error {
	if len(r.pending) > 0 {
		if err := r.repo.InsertMoves(r.pending); err != nil {
			r.errors += len(r.pending)
			return err
		}
		r.pending = nil
	}
	return r.repo.FinishSession(r.id, result, s.Ply())
}

func MoveFromEvent(id string, s *session.Session, ev session.Event) *Move {
	text := notation.FormatMove(s.Position().Geometry(), notation.Move{
		Kind:    ev.Kind,
		From:    ev.From,
		To:      ev.To,
		Capture: ev.Capture != nil,
	})
	m := &Move{
		Session:  id,
		Ply:      ev.Ply,
		Color:    ev.Color.String(),
		Piece:    int(ev.Piece),
		Kind:     ev.Kind.String(),
		From:     ev.From,
		To:       ev.To,
		Notation: text,
	}
	if ev.Capture != nil {
		m.Captured = ev.Captured.String()
	}
	return m
}
