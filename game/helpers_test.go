package game

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// layoutSource replays a board drawn as rows of '*' (mine) and '.' (safe),
// for use with a mineiness of 0.5
type layoutSource struct {
	draws []float64
}

func newLayoutSource(rows ...string) *layoutSource {
	source := &layoutSource{}
	for _, row := range rows {
		for _, c := range row {
			if c == '*' {
				source.draws = append(source.draws, 0)
			} else {
				source.draws = append(source.draws, 0.99)
			}
		}
	}
	return source
}

func (source *layoutSource) Float64() float64 {
	draw := source.draws[0]
	source.draws = source.draws[1:]
	return draw
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 3, 10, 22, 27, 45, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(d)
}

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func newLayoutGame(t *testing.T, clock *fakeClock, rows ...string) *Game {
	t.Helper()

	game, err := NewGame(GameConfig{
		Width:     len(rows[0]),
		Height:    len(rows),
		Mineiness: 0.5,
		Random:    newLayoutSource(rows...),
		Now:       clock.Now,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(game.Close)
	return game
}

// revealedMap draws the board as rows of 'R' (revealed) and '#' (covered)
func revealedMap(game *Game) []string {
	var rows []string
	for _, row := range game.Cells() {
		var line strings.Builder
		for _, cell := range row {
			if cell.Revealed {
				line.WriteByte('R')
			} else {
				line.WriteByte('#')
			}
		}
		rows = append(rows, line.String())
	}
	return rows
}
