package opt

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridchess/gridchess/chess"
)

func TestBuildConfig(t *testing.T) {
	var o Board
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(flags)
	require.NoError(t, flags.Parse([]string{"-rows", "6", "-cols", "10"}))

	cfg, err := o.BuildConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 10, cfg.Cols)
	assert.Equal(t, 5.0, cfg.TileSize)
	assert.Nil(t, cfg.Kinds)

	p, err := chess.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Registry(chess.White).Len())
}

func TestBuildConfigKinds(t *testing.T) {
	bs, err := chess.DefaultKinds().MarshalJSON()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "kinds.json")
	require.NoError(t, os.WriteFile(path, bs, 0644))

	o := Board{Rows: 8, Cols: 8, TileSize: 5, Kinds: path}
	cfg, err := o.BuildConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Kinds)
	assert.True(t, cfg.Kinds.Info(chess.Queen).Sliding)

	require.NoError(t, os.WriteFile(path, []byte(`{"pawn": {"offsets": [[1, 0]]}}`), 0644))
	_, err = o.BuildConfig()
	assert.ErrorIs(t, err, chess.ErrMissingKind)

	o.Kinds = filepath.Join(t.TempDir(), "missing.json")
	_, err = o.BuildConfig()
	assert.Error(t, err)
}
