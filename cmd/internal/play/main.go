package play

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/subcommands"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/cli"
	"github.com/gridchess/gridchess/cmd/internal/opt"
	"github.com/gridchess/gridchess/logs"
	"github.com/gridchess/gridchess/session"
)

type Command struct {
	board opt.Board

	keys     bool
	debounce time.Duration
	unicode  bool
	mate     bool
	db       string
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play a two-player game from the terminal" }
func (*Command) Usage() string {
	return `play [flags]

Play on the command line, two humans sharing one keyboard.

Line mode reads characters, one tick each:
  a d   select previous/next piece
  j l   cycle previous/next destination
  m     toggle between selecting and moving
  c     commit the move
  t     pass the turn
  q     quit

With -keys: left/right select, down/up cycle, space toggles, enter
commits, tab passes, escape quits.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	flags.BoolVar(&c.keys, "keys", false, "read arrow keys from a full-screen terminal")
	flags.DurationVar(&c.debounce, "debounce", cli.DefaultDebounce, "ignore repeated keys within this interval")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.mate, "mate", false, "end the game when the player to move is stuck")
	flags.StringVar(&c.db, "db", "", "journal the game to this sqlite database")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.board.BuildConfig()
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	pos, err := chess.New(cfg)
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	scfg := session.Config{}
	if c.mate {
		scfg.Terminal = session.NoLegalMoves
	}
	s := session.New(pos, scfg)

	var rec *logs.Recorder
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer repo.Close()
		rec, err = logs.StartSession(repo, s, false)
		if err != nil {
			log.Fatalf("start session: %v", err)
		}
	}

	st := &cli.CLI{
		Session: s,
		Glyphs:  glyphs(c.unicode),
	}
	if c.keys {
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("screen: %v", err)
		}
		st.Display = &cli.ScreenDisplay{Screen: screen}
		st.In = cli.NewKeyInput(screen, cli.NewDebouncer(c.debounce))
		err = st.Play()
		screen.Fini()
		if err != nil {
			log.Printf("input: %v", err)
		}
	} else {
		st.Display = &cli.WriterDisplay{Out: os.Stdout}
		st.In = cli.NewLineInput(os.Stdin)
		if err := st.Play(); err != nil {
			log.Printf("input: %v", err)
		}
	}

	for _, m := range st.Moves() {
		fmt.Println(m)
	}
	if rec != nil {
		result := "quit"
		if s.Over() {
			result = "checkmate"
		}
		if err := rec.Finish(s, result); err != nil {
			log.Printf("finish session: %v", err)
			return subcommands.ExitFailure
		}
		log.Printf("journaled session=%s plies=%d", rec.ID(), s.Ply())
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}
