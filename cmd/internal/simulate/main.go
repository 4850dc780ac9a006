package simulate

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/cmd/internal/opt"
	"github.com/gridchess/gridchess/logs"
)

type Command struct {
	board opt.Board

	games   int
	threads int
	seed    int64
	cutoff  int
	mate    bool
	db      string
	verbose bool
}

func (*Command) Name() string     { return "simulate" }
func (*Command) Synopsis() string { return "Play random sessions and check board invariants" }
func (*Command) Usage() string {
	return `simulate [flags]

Feed random intents into many independent sessions in parallel,
verifying the board after every tick.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	flags.IntVar(&c.games, "games", 100, "number of games to play")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel threads")
	flags.Int64Var(&c.seed, "seed", 0, "random seed")
	flags.IntVar(&c.cutoff, "cutoff", 2000, "abandon games after this many ticks")
	flags.BoolVar(&c.mate, "mate", true, "end a game when the player to move is stuck")
	flags.StringVar(&c.db, "db", "", "journal every game to this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "log every game")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	board, err := c.board.BuildConfig()
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	if board.Kinds == nil {
		// one table shared read-only by every worker
		board.Kinds = chess.DefaultKinds()
	}
	cfg := &Config{
		Board:   board,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Mate:    c.mate,
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer repo.Close()
		cfg.Repo = repo
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Printf("simulate: %v", err)
		return subcommands.ExitFailure
	}
	if c.verbose {
		for _, r := range st.Games {
			log.Printf("game=%d ticks=%d plies=%d over=%v captures=%d/%d session=%s",
				r.Game, r.Ticks, r.Plies, r.Over, r.Captures[0], r.Captures[1], r.Session)
		}
	}

	log.Printf("done games=%d seed=%d plies=%d checkmates=%d cutoff=%d elapsed=%s",
		len(st.Games), c.seed, st.Plies, st.Checkmates, st.Cutoff, time.Since(start))
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tcaptures\tstuck\n")
	for _, col := range []chess.Color{chess.White, chess.Black} {
		stuck := 0
		for _, r := range st.Games {
			if r.Over && r.Stuck == col {
				stuck++
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", col, st.Captures[col.Index()], stuck)
	}
	fmt.Fprintf(tw, "sum\t%d\t%d\n", st.Captures[0]+st.Captures[1], st.Checkmates)
	tw.Flush()

	return subcommands.ExitSuccess
}
