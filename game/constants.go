package game

type BoardState int

const (
	Ongoing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further moves are accepted in this state
func (state BoardState) IsTerminal() bool {
	return state == Won || state == Lost
}

const (
	MineGlyph  = "💣"
	FlagGlyph  = "⛳️"
	BlankGlyph = " "
)

const (
	DefaultWidth     = 25
	DefaultHeight    = 45
	DefaultMineiness = 0.25
)
