package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/logs"
	"github.com/gridchess/gridchess/session"
)

type Config struct {
	Board   chess.Config
	Games   int
	Threads int
	Seed    int64
	// Cutoff is the number of ticks after which a game is abandoned.
	Cutoff int
	Mate   bool

	Repo *logs.Repository
}

type Result struct {
	Game     int
	Ticks    int
	Plies    int
	Captures [2]int
	Over     bool
	// Stuck is the player left without a move when Over is set.
	Stuck   chess.Color
	Session string
}

type Stats struct {
	Games []Result

	Plies      int
	Captures   [2]int
	Checkmates int
	Cutoff     int
}

const prime = 1099511628211

// Simulate plays cfg.Games sessions of random intents on
// cfg.Threads workers, checking the position's invariants after
// every tick. Each game's intents depend only on the seed and the
// game number.
func Simulate(ctx context.Context, cfg *Config) (*Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	results := make([]Result, cfg.Games)
	next := int64(-1)

	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Threads; i++ {
		grp.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				g := int(atomic.AddInt64(&next, 1))
				if g >= cfg.Games {
					return nil
				}
				r, err := playOne(cfg, g)
				if err != nil {
					return err
				}
				results[g] = r
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	st := &Stats{Games: results}
	for _, r := range results {
		st.Plies += r.Plies
		st.Captures[0] += r.Captures[0]
		st.Captures[1] += r.Captures[1]
		if r.Over {
			st.Checkmates++
		} else {
			st.Cutoff++
		}
	}
	return st, nil
}

func randomIntents(rng *rand.Rand) session.Intents {
	return session.Intents{
		SelectPrev:         rng.Intn(5) == 0,
		SelectNext:         rng.Intn(3) == 0,
		CyclePrev:          rng.Intn(5) == 0,
		CycleNext:          rng.Intn(3) == 0,
		ToggleMode:         rng.Intn(3) == 0,
		CommitMove:         rng.Intn(3) == 0,
		SwitchActivePlayer: rng.Intn(50) == 0,
	}
}

func playOne(cfg *Config, game int) (Result, error) {
	rng := rand.New(rand.NewSource(prime*cfg.Seed + int64(game)))
	pos, err := chess.New(cfg.Board)
	if err != nil {
		return Result{}, err
	}
	var scfg session.Config
	if cfg.Mate {
		scfg.Terminal = session.NoLegalMoves
	}
	s := session.New(pos, scfg)

	var rec *logs.Recorder
	if cfg.Repo != nil {
		if rec, err = logs.StartSession(cfg.Repo, s, true); err != nil {
			return Result{}, fmt.Errorf("game %d: %w", game, err)
		}
	}

	r := Result{Game: game}
	for r.Ticks < cfg.Cutoff && !s.Over() {
		r.Ticks++
		s.Tick(randomIntents(rng))
		if err := check(s); err != nil {
			return r, fmt.Errorf("game %d tick %d: %w", game, r.Ticks, err)
		}
	}
	r.Plies = s.Ply()
	r.Over = s.Over()
	if r.Over {
		r.Stuck = s.Active()
	}
	for _, c := range []chess.Color{chess.White, chess.Black} {
		r.Captures[c.Index()] = s.Player(c).Score()
	}

	if rec != nil {
		result := "cutoff"
		if r.Over {
			result = "checkmate"
		}
		if err := rec.Finish(s, result); err != nil {
			return r, fmt.Errorf("game %d: %w", game, err)
		}
		r.Session = rec.ID()
	}
	return r, nil
}

func check(s *session.Session) error {
	p := s.Position()
	if err := p.CheckInvariants(); err != nil {
		return err
	}
	for _, c := range []chess.Color{chess.White, chess.Black} {
		opp := p.Registry(c.Flip())
		if lost := opp.Cap() - opp.Live(); s.Player(c).Score() != lost {
			return fmt.Errorf("%s score %d, but %s lost %d pieces",
				c, s.Player(c).Score(), c.Flip(), lost)
		}
	}
	if !s.Over() && s.Player(s.Active().Flip()).Mode() != session.Selecting {
		return fmt.Errorf("inactive %s is %s", s.Active().Flip(), s.Player(s.Active().Flip()).Mode())
	}
	return nil
}
