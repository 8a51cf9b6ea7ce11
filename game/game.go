package game

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

type GameConfig struct {
	Width, Height int
	// Chance of any single cell being a mine
	Mineiness float64

	// Seed for the default random source; 0 seeds from the current time
	Seed int64
	// Overrides the seeded random source when set
	Random RandomSource

	// How often the clock advances while the game is ongoing; 0 disables the
	// background ticker, leaving Tick to the caller
	TickInterval time.Duration
	Now          func() time.Time

	Director Director
	Logger   logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Mineiness:    DefaultMineiness,
		TickInterval: time.Second,
	}
}

// Coord addresses a cell by (row, col)
type Coord struct {
	Row, Col int
}

// Game is a single minefield session. All methods are safe for concurrent
// use; every mutation runs under one lock.
type Game struct {
	mu sync.Mutex

	board *Board
	state BoardState
	clock *Clock

	director Director
	log      logrus.FieldLogger
}

func NewGame(config GameConfig) (*Game, error) {
	random := config.Random
	if random == nil {
		random = NewSeededSource(config.Seed)
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	logger := config.Logger
	if logger == nil {
		logger = log
	}

	board, err := generateBoard(config.Width, config.Height, config.Mineiness, random)
	if err != nil {
		return nil, err
	}

	game := &Game{
		board:    board,
		state:    Ongoing,
		clock:    newClock(now),
		director: config.Director,
		log:      logger,
	}

	game.log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
	}).Debug("generated board")

	if config.TickInterval > 0 {
		game.clock.run(config.TickInterval, game.Tick)
	}
	if game.director != nil {
		game.director.Init(game)
	}

	return game, nil
}

// Sweep reveals the cell at (row, col). Sweeping a mine loses the game;
// anything else cascades outward. Returns whether the board changed.
func (game *Game) Sweep(row, col int) bool {
	game.mu.Lock()
	defer game.mu.Unlock()

	if !game.canPlay() {
		return false
	}
	cell := game.board.CellAt(row, col)
	if cell == nil {
		return false
	}

	if cell.content.isMine {
		cell.isRevealed = true
		game.lose(cell)
		return true
	}

	// The target stays covered while the cascade runs; an orthogonal
	// neighbor may reach back and expand from it mid-fill.
	revealed := game.board.cascadeClear(cell)
	if !cell.isRevealed {
		cell.isRevealed = true
		revealed++
	}

	game.log.WithFields(logrus.Fields{
		"cell":     cell,
		"revealed": revealed,
	}).Debug("swept")

	game.checkWin()
	return revealed > 0
}

// Flag toggles the flag on (row, col), revealed or not, then checks for a win.
// Returns whether the flag was toggled.
func (game *Game) Flag(row, col int) bool {
	game.mu.Lock()
	defer game.mu.Unlock()

	if !game.canPlay() {
		return false
	}
	cell := game.board.CellAt(row, col)
	if cell == nil {
		return false
	}

	cell.toggleFlagged()
	game.checkWin()
	return true
}

// Tick advances the clock's end timestamp while the game is ongoing
func (game *Game) Tick() {
	game.mu.Lock()
	defer game.mu.Unlock()

	if game.canPlay() {
		game.clock.tick()
	}
}

// Close stops the ticker and director of an abandoned game. The state is left
// as it is.
func (game *Game) Close() {
	game.mu.Lock()
	defer game.mu.Unlock()

	game.clock.stop()
	game.endDirector()
}

func (game *Game) canPlay() bool {
	return game.state == Ongoing
}

func (game *Game) checkWin() {
	if game.board.allCleared() {
		game.win()
	}
}

func (game *Game) win() {
	game.state = Won
	game.endGame()
}

func (game *Game) lose(cell *Cell) {
	game.state = Lost
	game.log.WithField("cell", cell).Debug("swept a mine")
	game.endGame()
}

func (game *Game) endGame() {
	game.clock.stop()
	game.endDirector()

	game.log.WithFields(logrus.Fields{
		"state":   game.state,
		"elapsed": game.clock.ElapsedSeconds(),
	}).Info("game over")
}

func (game *Game) endDirector() {
	if game.director != nil {
		game.director.End()
	}
}

func (game *Game) State() BoardState {
	game.mu.Lock()
	defer game.mu.Unlock()

	return game.state
}

func (game *Game) ElapsedSeconds() int {
	game.mu.Lock()
	defer game.mu.Unlock()

	return game.clock.ElapsedSeconds()
}

// Done is closed once the game is over or closed
func (game *Game) Done() <-chan struct{} {
	return game.clock.done
}

func (game *Game) Width() int {
	return game.board.width
}

func (game *Game) Height() int {
	return game.board.height
}

func (game *Game) NumMines() int {
	return game.board.numMines
}

// NumFlags counts flags on cells that are still covered. Flags on revealed
// cells mark nothing and are left out.
func (game *Game) NumFlags() int {
	game.mu.Lock()
	defer game.mu.Unlock()

	numFlags := 0
	game.board.forEachCell(func(cell *Cell) {
		if cell.isFlagged && !cell.isRevealed {
			numFlags++
		}
	})
	return numFlags
}

// CellAt returns a view of the cell, and false for out-of-bounds coordinates
func (game *Game) CellAt(row, col int) (CellView, bool) {
	game.mu.Lock()
	defer game.mu.Unlock()

	cell := game.board.CellAt(row, col)
	if cell == nil {
		return CellView{}, false
	}
	return cell.view(), true
}

// Cells returns a view of every cell, indexed [row][col]
func (game *Game) Cells() [][]CellView {
	game.mu.Lock()
	defer game.mu.Unlock()

	views := make([][]CellView, game.board.height)
	for row := range game.board.cells {
		views[row] = make([]CellView, game.board.width)
		for col := range game.board.cells[row] {
			views[row][col] = game.board.cells[row][col].view()
		}
	}
	return views
}

// Render draws the board as text, one bracketed cell per display value
func (game *Game) Render() string {
	var builder strings.Builder
	for _, row := range game.Cells() {
		for _, cell := range row {
			builder.WriteString("[")
			builder.WriteString(cell.DisplayValue)
			builder.WriteString("]")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
