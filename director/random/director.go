package random

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/they4kman/minesweepah/game"
	"github.com/they4kman/minesweepah/util/collections"
)

// Director sweeps a random cell that is neither revealed nor flagged
type Director struct {
	Interval time.Duration
	Rand     *rand.Rand

	game    *game.Game
	covered collections.Set[game.Coord]

	mu      sync.Mutex
	done    chan struct{}
	endOnce sync.Once
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.done = make(chan struct{})
	director.endOnce = sync.Once{}
	if director.Rand == nil {
		director.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if director.Interval <= 0 {
		director.Interval = 500 * time.Millisecond
	}

	director.covered = make(collections.Set[game.Coord])
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			director.covered.Add(game.Coord{Row: row, Col: col})
		}
	}
}

func (director *Director) Act() {
	director.TryAct()
}

// TryAct sweeps one cell, returning false when nothing was left to sweep
func (director *Director) TryAct() bool {
	director.mu.Lock()
	defer director.mu.Unlock()

	cells := director.game.Cells()
	for coord := range director.covered {
		if cells[coord.Row][coord.Col].Revealed {
			director.covered.Remove(coord)
		}
	}

	candidates := make([]game.Coord, 0, len(director.covered))
	for coord := range director.covered {
		if !cells[coord.Row][coord.Col].Flagged {
			candidates = append(candidates, coord)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	// Map order is random; sort so a seeded Rand replays the same game
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Row != candidates[j].Row {
			return candidates[i].Row < candidates[j].Row
		}
		return candidates[i].Col < candidates[j].Col
	})

	coord := candidates[director.Rand.Intn(len(candidates))]
	director.game.Sweep(coord.Row, coord.Col)
	return true
}

func (director *Director) ActContinuously() {
	go func() {
		ticker := time.NewTicker(director.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-director.done:
				return
			case <-ticker.C:
				if !director.TryAct() {
					return
				}
			}
		}
	}()
}

func (director *Director) End() {
	director.endOnce.Do(func() {
		close(director.done)
	})
}
