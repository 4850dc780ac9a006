package moves

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/cmd/internal/opt"
	"github.com/gridchess/gridchess/notation"
)

type Command struct {
	board opt.Board

	diagram string
	cell    string
}

func (*Command) Name() string     { return "moves" }
func (*Command) Synopsis() string { return "Print the candidate moves in a position" }
func (*Command) Usage() string {
	return `moves [-diagram DIAGRAM] [-cell a1]

Print the candidate destinations of the piece on -cell, or of every
piece of the side to move.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	flags.StringVar(&c.diagram, "diagram", notation.Start, "board diagram")
	flags.StringVar(&c.cell, "cell", "", "only list the piece on this cell")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.board.BuildConfig()
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	p, toMove, err := notation.ParseBoard(cfg, c.diagram)
	if err != nil {
		log.Fatalf("diagram: %v", err)
	}
	if err := list(os.Stdout, p, toMove, c.cell); err != nil {
		log.Printf("moves: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func list(out io.Writer, p *chess.Position, toMove chess.Color, cell string) error {
	g := p.Geometry()
	var refs []chess.PieceRef
	if cell != "" {
		at, err := notation.ParseCell(g, cell)
		if err != nil {
			return err
		}
		q := p.Ledger().Query(at)
		if !q.Occupied {
			return fmt.Errorf("no piece on %s", cell)
		}
		refs = append(refs, chess.PieceRef{Color: q.Owner, ID: q.Piece})
	} else {
		reg := p.Registry(toMove)
		for id := chess.PieceID(0); int(id) < reg.Len(); id++ {
			if reg.Get(id).Alive {
				refs = append(refs, chess.PieceRef{Color: toMove, ID: id})
			}
		}
	}

	for _, ref := range refs {
		pc := p.Piece(ref.Color, ref.ID)
		var moves []string
		for _, c := range p.Candidates(ref.Color, ref.ID) {
			moves = append(moves, notation.FormatMove(g, notation.Move{
				Kind: pc.Kind, From: pc.Cell, To: c.Cell, Capture: c.Capture,
			}))
		}
		fmt.Fprintf(out, "%s %s %s (ap=%d): %s\n",
			ref.Color, notation.KindName(pc.Kind), notation.CellName(g, pc.Cell),
			pc.ActionPoints, strings.Join(moves, " "))
	}
	return nil
}
