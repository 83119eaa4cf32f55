package engine

import "slices"

// Player identifies a game participant. Players are numbered from 0, so the
// value doubles as an index and is stable for the game's lifetime.
type Player int

const (
	// DefaultPlayers is the standard player count.
	DefaultPlayers = 2

	// DefaultStartingCurrency is the currency each player begins with.
	DefaultStartingCurrency = 5
)

// PlayOrder is a stack of players. It is used both for the starting turn
// order and, reused per square, for the tokens resting on a time board
// square; the player on top acts first.
type PlayOrder struct {
	stack []Player
}

// NewPlayOrder creates a play order of nplayers players. If rng is non-nil
// the order is shuffled; otherwise player 0 is on top, then 1, and so on.
func NewPlayOrder(nplayers int, rng Rand) PlayOrder {
	stack := make([]Player, nplayers)
	for i := range stack {
		stack[i] = Player(nplayers - i - 1)
	}
	if rng != nil {
		shuffle(rng, stack)
	}
	return PlayOrder{stack: stack}
}

// IsEmpty reports whether the play order holds no players.
func (o *PlayOrder) IsEmpty() bool {
	return len(o.stack) == 0
}

// Len returns the number of players in the play order.
func (o *PlayOrder) Len() int {
	return len(o.stack)
}

// Push places a player on top of the stack, to act next.
func (o *PlayOrder) Push(p Player) {
	o.stack = append(o.stack, p)
}

// Pop removes and returns the player on top of the stack.
func (o *PlayOrder) Pop() (Player, bool) {
	if len(o.stack) == 0 {
		return 0, false
	}
	p := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	return p, true
}

// Peek returns the player on top of the stack without removing it.
func (o *PlayOrder) Peek() (Player, bool) {
	if len(o.stack) == 0 {
		return 0, false
	}
	return o.stack[len(o.stack)-1], true
}

// Players returns the players from top to bottom of the stack, i.e. in the
// order they will act.
func (o *PlayOrder) Players() []Player {
	out := make([]Player, len(o.stack))
	for i, p := range o.stack {
		out[len(o.stack)-i-1] = p
	}
	return out
}

// PlayerState is the mutable per-player game state: the private quilt
// board, currency, any bonus earned, the aggregate collect rate of acquired
// pieces, and granted pieces awaiting placement.
type PlayerState struct {
	board       *QuiltBoard
	currency    int
	bonus       int
	collectRate int
	pending     []Piece
}

// NewPlayerState creates a player with an empty board of the given
// dimension and the given starting currency.
func NewPlayerState(dimension Dimension, currency int) *PlayerState {
	return &PlayerState{
		board:    NewQuiltBoard(dimension),
		currency: currency,
	}
}

// Board returns the player's quilt board.
func (ps *PlayerState) Board() *QuiltBoard {
	return ps.board
}

// Currency returns the player's current currency.
func (ps *PlayerState) Currency() int {
	return ps.currency
}

// Bonus returns the bonus square size the player earned, or zero.
func (ps *PlayerState) Bonus() int {
	return ps.bonus
}

// CollectRate returns the currency credited per collect square crossed,
// the sum of the collect values of the player's acquired pieces.
func (ps *PlayerState) CollectRate() int {
	return ps.collectRate
}

// PendingPieces returns the granted pieces the player must place, oldest
// first.
func (ps *PlayerState) PendingPieces() []Piece {
	return slices.Clone(ps.pending)
}

// Score returns the number of board cells the player has covered.
func (ps *PlayerState) Score() int {
	return ps.board.PositionsCovered()
}
