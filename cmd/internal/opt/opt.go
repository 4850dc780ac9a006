package opt

import (
	"flag"
	"fmt"
	"os"

	"github.com/gridchess/gridchess/chess"
)

type Board struct {
	Rows     int
	Cols     int
	TileSize float64
	Kinds    string
}

func (o *Board) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Rows, "rows", 8, "board rows")
	flags.IntVar(&o.Cols, "cols", 8, "board columns")
	flags.Float64Var(&o.TileSize, "tile", 5, "world size of one cell")
	flags.StringVar(&o.Kinds, "kinds", "", "JSON file of piece kinds")
}

func (o *Board) BuildConfig() (chess.Config, error) {
	cfg := chess.Config{
		Rows:     o.Rows,
		Cols:     o.Cols,
		TileSize: o.TileSize,
	}
	if o.Kinds != "" {
		f, err := os.Open(o.Kinds)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		cfg.Kinds, err = chess.LoadKinds(f)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", o.Kinds, err)
		}
	}
	return cfg, nil
}
