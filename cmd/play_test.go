package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minesweepah/game"
)

// constSource draws the same value for every cell
type constSource float64

func (source constSource) Float64() float64 {
	return float64(source)
}

func newGame(t *testing.T, width, height int, draw float64) *game.Game {
	t.Helper()

	logger, _ := test.NewNullLogger()
	g, err := game.NewGame(game.GameConfig{
		Width:     width,
		Height:    height,
		Mineiness: 0.5,
		Random:    constSource(draw),
		Logger:    logger,
	})
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestPlayUntilWin(t *testing.T) {
	g := newGame(t, 3, 2, 0.9)

	var out bytes.Buffer
	in := strings.NewReader("f 0 0\nf 0 0\ns 1 1\ns 0 0\n")
	require.NoError(t, play(g, in, &out))

	assert.Equal(t, game.Won, g.State())
	assert.True(t, strings.HasSuffix(out.String(), "You WIN!  000  0:00\n[ ][ ][ ]\n[ ][ ][ ]\n"), out.String())
	assert.Contains(t, out.String(), "[⛳️][ ][ ]\n")
}

func TestPlayUntilLoss(t *testing.T) {
	g := newGame(t, 2, 1, 0)

	var out bytes.Buffer
	require.NoError(t, play(g, strings.NewReader("s 0 1\nf 0 0\n"), &out))

	assert.Equal(t, game.Lost, g.State())
	assert.True(t, strings.HasSuffix(out.String(), "You Lose.  002  0:00\n[ ][💣]\n"), out.String())
}

func TestPlayReportsBadCommands(t *testing.T) {
	g := newGame(t, 2, 2, 0.9)

	var out bytes.Buffer
	require.NoError(t, play(g, strings.NewReader("x 1 1\ns 1\ns a 1\n\nq\ns 0 0\n"), &out))

	assert.Contains(t, out.String(), `unknown command "x"`)
	assert.Contains(t, out.String(), "usage: s ROW COL")
	assert.Contains(t, out.String(), "parsing row")
	assert.Equal(t, game.Ongoing, g.State())
}
