package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/gridchess/gridchess/cmd/internal/history"
	"github.com/gridchess/gridchess/cmd/internal/moves"
	"github.com/gridchess/gridchess/cmd/internal/play"
	"github.com/gridchess/gridchess/cmd/internal/simulate"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&simulate.Command{}, "")
	subcommands.Register(&history.Command{}, "")
	subcommands.Register(&moves.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
