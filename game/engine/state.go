package engine

import "fmt"

// TurnOutcome summarizes the visible effects of one turn action.
type TurnOutcome struct {
	// Player is the player who acted.
	Player Player
	// Piece is the piece taken from the queue, if the action took one.
	Piece *Piece
	// Moved is the number of track squares actually advanced.
	Moved int
	// CollectSquares counts the collect squares crossed.
	CollectSquares int
	// Collected is the currency credited from collect squares.
	Collected int
	// Earned is the currency credited per square during a pass.
	Earned int
	// Granted holds track-granted pieces now pending placement.
	Granted []Piece
	// BonusAwarded is true if this action completed the bonus square.
	BonusAwarded bool
}

// GameState owns one complete game: the shared piece queue and time board,
// and each player's quilt board and counters.
type GameState struct {
	queue           *PieceQueue
	track           *TimeBoard
	players         []*PlayerState
	bonusSquareSize int
}

// NewGame validates config and assembles a fresh game. When config.Shuffle
// is set, rng drives the piece queue and play order shuffles; it must be
// non-nil in that case. With Shuffle off the queue keeps the configured
// order and player 0 starts, which keeps games reproducible for tests.
func NewGame(config *GameConfig, rng Rand) (*GameState, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if config.Shuffle && rng == nil {
		return nil, fmt.Errorf("shuffled game requires a random source")
	}

	shuffleRng := rng
	if !config.Shuffle {
		shuffleRng = nil
	}

	dimension := Dimension{Width: config.BoardWidth, Height: config.BoardHeight}
	players := make([]*PlayerState, config.Players)
	for i := range players {
		players[i] = NewPlayerState(dimension, config.StartingCurrency)
	}

	return &GameState{
		queue:           NewPieceQueue(config.Pieces, config.TakeDepth, shuffleRng),
		track:           NewTimeBoard(config.Track, NewPlayOrder(config.Players, shuffleRng)),
		players:         players,
		bonusSquareSize: config.BonusSquareSize,
	}, nil
}

// IsGameOver reports whether play has ended: every player has reached the
// final track square, or the piece queue is empty.
func (g *GameState) IsGameOver() bool {
	return g.track.IsGameOver() || g.queue.IsEmpty()
}

// Players returns the number of players.
func (g *GameState) Players() int {
	return len(g.players)
}

// Player returns the state of the given player. It panics on an invalid
// player, which is a caller bug.
func (g *GameState) Player(p Player) *PlayerState {
	if int(p) < 0 || int(p) >= len(g.players) {
		panic(fmt.Sprintf("gamestate: no such player %d", p))
	}
	return g.players[p]
}

// Queue returns the shared piece queue.
func (g *GameState) Queue() *PieceQueue {
	return g.queue
}

// Track returns the shared time board.
func (g *GameState) Track() *TimeBoard {
	return g.track
}

// BonusSquareSize returns the unclaimed bonus square threshold, or zero if
// there is no bonus left to claim.
func (g *GameState) BonusSquareSize() int {
	return g.bonusSquareSize
}

// CurrentPlayer returns the player whose turn it is. The second return is
// false when the track reports the game over.
func (g *GameState) CurrentPlayer() (Player, bool) {
	return g.track.CurrentPlayer()
}

// NextPlayer returns the player who acts after the current one.
func (g *GameState) NextPlayer() (Player, bool) {
	return g.track.NextPlayer()
}

// mustCurrentPlayer returns the current player and state, panicking if the
// game is over. Driving a finished game is a caller bug.
func (g *GameState) mustCurrentPlayer() (Player, *PlayerState) {
	if g.IsGameOver() {
		panic("gamestate: cannot act after the game is over")
	}
	player, _ := g.track.CurrentPlayer()
	return player, g.players[player]
}

// PlacePiece performs the current player's buy action: take the queue piece
// at depth, place it on their board at position under t, pay its cost, and
// advance by its distance resolving all crossing effects. Validation is
// complete before any state changes, so a returned error leaves the game
// untouched.
func (g *GameState) PlacePiece(depth int, position Position, t Transformation) (*TurnOutcome, error) {
	player, ps := g.mustCurrentPlayer()
	if len(ps.pending) > 0 {
		return nil, ErrPendingPlacement
	}

	piece, err := g.queue.Peek(depth)
	if err != nil {
		return nil, err
	}
	if ps.currency < piece.Cost() {
		return nil, ErrInsufficientCurrency
	}
	if err := ps.board.CanAddPiece(position, piece, t); err != nil {
		return nil, err
	}

	taken, err := g.queue.Take(depth)
	if err != nil {
		panic(err) // unreachable: Peek succeeded above
	}
	if err := ps.board.AddPiece(position, taken, t); err != nil {
		panic(err) // unreachable: CanAddPiece succeeded above
	}
	ps.currency -= taken.Cost()
	ps.collectRate += taken.Collect()

	outcome := &TurnOutcome{Player: player, Piece: &taken}
	if d := taken.Distance(); d > 0 {
		g.advance(ps, d, outcome)
	}
	g.checkBonus(ps, outcome)
	return outcome, nil
}

// Pass advances the current player one square past the next player's
// position, clamped at the track end, crediting one currency per square
// actually moved plus the usual crossing effects.
func (g *GameState) Pass() (*TurnOutcome, error) {
	player, ps := g.mustCurrentPlayer()
	if len(ps.pending) > 0 {
		return nil, ErrPendingPlacement
	}

	distance := g.track.IndexOfNextPlayer() - g.track.currentIndex() + 1

	outcome := &TurnOutcome{Player: player}
	g.advance(ps, distance, outcome)
	ps.currency += outcome.Moved
	outcome.Earned = outcome.Moved
	return outcome, nil
}

// PlaceGranted places the current player's oldest pending granted piece at
// position under t. Granted pieces do not cost currency or move the token.
func (g *GameState) PlaceGranted(position Position, t Transformation) (*TurnOutcome, error) {
	player, ps := g.mustCurrentPlayer()
	if len(ps.pending) == 0 {
		return nil, ErrNoPendingPiece
	}

	piece := ps.pending[0]
	if err := ps.board.AddPiece(position, piece, t); err != nil {
		return nil, err
	}
	ps.pending = ps.pending[1:]
	ps.collectRate += piece.Collect()

	outcome := &TurnOutcome{Player: player, Piece: &piece}
	g.checkBonus(ps, outcome)
	return outcome, nil
}

// advance moves the current player's token and applies the crossing
// effects to ps: collect credit scaled by the player's collect rate, and
// granted pieces queued for placement.
func (g *GameState) advance(ps *PlayerState, distance int, outcome *TurnOutcome) {
	result := g.track.MovePlayer(distance)
	outcome.Moved = result.Moved
	outcome.CollectSquares = result.Collects

	if result.Collects > 0 && ps.collectRate > 0 {
		credit := result.Collects * ps.collectRate
		ps.currency += credit
		outcome.Collected = credit
	}
	if len(result.Pieces) > 0 {
		ps.pending = append(ps.pending, result.Pieces...)
		outcome.Granted = result.Pieces
	}
}

// checkBonus awards the one-time bonus if ps just completed a fully
// covered square of the configured size. The threshold moves from the game
// to the winning player so it can be claimed only once.
func (g *GameState) checkBonus(ps *PlayerState, outcome *TurnOutcome) {
	if g.bonusSquareSize == 0 || ps.bonus != 0 {
		return
	}
	if ps.board.IsSquareCovered(g.bonusSquareSize) {
		ps.bonus = g.bonusSquareSize
		g.bonusSquareSize = 0
		outcome.BonusAwarded = true
	}
}
