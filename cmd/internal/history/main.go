package history

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/gridchess/gridchess/logs"
)

type Command struct {
	db      string
	session string
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "List journaled sessions and their moves" }
func (*Command) Usage() string {
	return `history -db JOURNAL.db [-session ID]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "journal database")
	flags.StringVar(&c.session, "session", "", "print the moves of one session")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Println("Must supply a journal database")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Fatal("open: ", err)
	}
	defer repo.Close()

	if c.session == "" {
		err = listSessions(os.Stdout, repo)
	} else {
		err = listMoves(os.Stdout, repo, c.session)
	}
	if err != nil {
		log.Printf("history: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func listSessions(out io.Writer, repo *logs.Repository) error {
	ss, err := repo.Sessions()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\tstarted\tboard\tplies\tresult\n")
	for _, s := range ss {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\n",
			s.ID, s.Started.Format("2006-01-02 15:04:05"), s.Rows, s.Cols, s.Plies, s.Result)
	}
	return w.Flush()
}

func listMoves(out io.Writer, repo *logs.Repository, id string) error {
	s, err := repo.Session(id)
	if err != nil {
		return err
	}
	ms, err := repo.Moves(id)
	if err != nil {
		return err
	}
	caps, err := repo.Captures(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "session %s: %dx%d, %s moved first, %s after %d plies\n",
		s.ID, s.Rows, s.Cols, s.First, s.Result, s.Plies)
	for _, m := range ms {
		if m.Color == s.First {
			fmt.Fprintf(out, "%d. %s\n", (m.Ply+1)/2, m.Notation)
		} else {
			fmt.Fprintf(out, "%d. ... %s\n", (m.Ply+1)/2, m.Notation)
		}
	}
	fmt.Fprintf(out, "captures: white=%d black=%d\n", caps["white"], caps["black"])
	return nil
}
