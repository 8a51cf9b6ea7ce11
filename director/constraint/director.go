package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/they4kman/minesweepah/director/random"
	"github.com/they4kman/minesweepah/game"
	"github.com/they4kman/minesweepah/util/collections"
)

// Director plays from what the revealed numbers say: it flags cells that must
// be mines, sweeps cells that must be safe, and otherwise guesses at the
// cell least likely to be a mine. With nothing revealed, it sweeps at random.
type Director struct {
	Interval time.Duration
	Rand     *rand.Rand

	game     *game.Game
	fallback random.Director

	mu      sync.Mutex
	done    chan struct{}
	endOnce sync.Once
}

// Observation is what one revealed number says about its covered neighbors:
// exactly numMines of cells are mines
type Observation struct {
	origin   game.Coord
	numMines int
	cells    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	coords := make([]string, 0, len(observation.cells))
	for _, coord := range sortedCoords(observation.cells) {
		coords = append(coords, fmt.Sprintf("(%d, %d)", coord.Row, coord.Col))
	}

	return fmt.Sprintf("Obs[(%d, %d), %d ε %s]",
		observation.origin.Row, observation.origin.Col,
		observation.numMines, strings.Join(coords, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
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

	director.fallback = random.Director{Interval: director.Interval, Rand: director.Rand}
	director.fallback.Init(g)
}

func (director *Director) Act() {
	director.act()
}

// act performs the first kind of move that applies, returning false when no
// move was possible
func (director *Director) act() bool {
	director.mu.Lock()
	defer director.mu.Unlock()

	observations := observe(director.game.Cells())

	if director.actDeliberate(observations) {
		return true
	}
	if director.actLowestProbability(observations) {
		return true
	}
	return director.fallback.TryAct()
}

func (director *Director) actDeliberate(observations []Observation) bool {
	acted := false
	for _, observation := range observations {
		switch observation.numMines {
		case len(observation.cells):
			for _, coord := range sortedCoords(observation.cells) {
				acted = director.game.Flag(coord.Row, coord.Col) || acted
			}
		case 0:
			for _, coord := range sortedCoords(observation.cells) {
				acted = director.game.Sweep(coord.Row, coord.Col) || acted
			}
		}

		if acted {
			return true
		}
	}
	return false
}

func (director *Director) actLowestProbability(observations []Observation) bool {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Coord]float64)

	for _, observation := range observations {
		probability := observation.MineProbability()
		for coord := range observation.cells {
			if past, seen := cellProbabilities[coord]; !seen || probability > past {
				// A cell is only as safe as its most pessimistic observation
				cellProbabilities[coord] = probability
			}
		}
	}
	for _, probability := range cellProbabilities {
		lowestProbability = math.Min(lowestProbability, probability)
	}

	lowest := make(collections.Set[game.Coord])
	for coord, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowest.Add(coord)
		}
	}
	if len(lowest) == 0 {
		return false
	}

	candidates := sortedCoords(lowest)
	coord := candidates[director.Rand.Intn(len(candidates))]
	return director.game.Sweep(coord.Row, coord.Col)
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
				if !director.act() {
					return
				}
			}
		}
	}()
}

func (director *Director) End() {
	director.endOnce.Do(func() {
		close(director.done)
		director.fallback.End()
	})
}

// observe gathers one Observation per revealed number that still borders
// covered, unflagged cells. Flagged neighbors are taken to be mines.
func observe(cells [][]game.CellView) []Observation {
	var observations []Observation

	for row := range cells {
		for col, cell := range cells[row] {
			if cell.Count <= 0 {
				continue
			}

			observation := Observation{
				origin:   game.Coord{Row: row, Col: col},
				numMines: cell.Count,
				cells:    make(collections.Set[game.Coord]),
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					r, c := row+dr, col+dc
					if (dr == 0 && dc == 0) || r < 0 || c < 0 || r >= len(cells) || c >= len(cells[r]) {
						continue
					}

					switch neighbor := cells[r][c]; {
					case neighbor.Revealed:
					case neighbor.Flagged:
						observation.numMines--
					default:
						observation.cells.Add(game.Coord{Row: r, Col: c})
					}
				}
			}

			if len(observation.cells) > 0 && observation.numMines >= 0 {
				observations = append(observations, observation)
			}
		}
	}

	return observations
}

func sortedCoords(set collections.Set[game.Coord]) []game.Coord {
	coords := make([]game.Coord, 0, len(set))
	for coord := range set {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
