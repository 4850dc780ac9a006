package moves

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridchess/gridchess/chess"
	"github.com/gridchess/gridchess/notation"
)

func TestListCell(t *testing.T) {
	p, toMove, err := notation.ParseBoard(chess.Config{}, notation.Start)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, list(&buf, p, toMove, "b1"))
	assert.Equal(t, "white Knight b1 (ap=1): Nb1-c3 Nb1-a3\n", buf.String())

	buf.Reset()
	require.NoError(t, list(&buf, p, toMove, "a8"))
	assert.Equal(t, "black Rook a8 (ap=7): \n", buf.String())

	assert.Error(t, list(&buf, p, toMove, "e4"))
	assert.Error(t, list(&buf, p, toMove, "z9"))
}

func TestListSide(t *testing.T) {
	p, toMove, err := notation.ParseBoard(chess.Config{}, "8/8/8/3p4/8/8/8/R3K3 w")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, list(&buf, p, toMove, ""))
	assert.Equal(t,
		"white Rook a1 (ap=7): Ra1-b1 Ra1-c1 Ra1-d1 Ra1-a2 Ra1-a3 Ra1-a4 Ra1-a5 Ra1-a6 Ra1-a7 Ra1-a8\n"+
			"white King e1 (ap=1): Ke1-f1 Ke1-d1 Ke1-e2 Ke1-f2 Ke1-d2\n",
		buf.String())
}
