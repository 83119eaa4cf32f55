package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *GameConfig {
	return &GameConfig{
		Name:             "engine test",
		Players:          2,
		StartingCurrency: 10,
		BoardWidth:       DefaultBoardSize,
		BoardHeight:      DefaultBoardSize,
		TakeDepth:        DefaultTakeDepth,
		BonusSquareSize:  2,
		Pieces:           queuePieces(),
		Track:            testTrack(),
	}
}

func newTestGame(t *testing.T, config *GameConfig) *GameState {
	t.Helper()
	game, err := NewGame(config, nil)
	require.NoError(t, err)
	return game
}

func TestNewGameValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"one player", func(c *GameConfig) { c.Players = 1 }},
		{"negative currency", func(c *GameConfig) { c.StartingCurrency = -1 }},
		{"zero board", func(c *GameConfig) { c.BoardWidth = 0 }},
		{"negative depth", func(c *GameConfig) { c.TakeDepth = -1 }},
		{"oversized bonus", func(c *GameConfig) { c.BonusSquareSize = 10 }},
		{"no pieces", func(c *GameConfig) { c.Pieces = nil }},
		{"short track", func(c *GameConfig) { c.Track = c.Track[:1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			tt.mutate(config)
			_, err := NewGame(config, nil)
			assert.Error(t, err)
		})
	}

	_, err := NewGame(nil, nil)
	assert.Error(t, err)
}

func TestNewGameShuffleRequiresRand(t *testing.T) {
	config := createTestConfig()
	config.Shuffle = true

	_, err := NewGame(config, nil)
	assert.Error(t, err)

	game, err := NewGame(config, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, len(config.Pieces), game.Queue().Len())
	assert.Equal(t, 2, game.Players())
}

func TestNewGameInitialState(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	assert.False(t, game.IsGameOver())
	assert.Equal(t, 2, game.BonusSquareSize())

	current, ok := game.CurrentPlayer()
	require.True(t, ok)
	assert.Equal(t, Player(0), current)

	for i := 0; i < game.Players(); i++ {
		ps := game.Player(Player(i))
		assert.Equal(t, 10, ps.Currency())
		assert.Equal(t, 0, ps.Score())
	}

	assert.Panics(t, func() { game.Player(5) })
}

func TestPlacePiece(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	// Player 0 takes piece1 (cost 1, distance 2) at depth 0.
	outcome, err := game.PlacePiece(0, pos(0, 0), Identity())
	require.NoError(t, err)

	assert.Equal(t, Player(0), outcome.Player)
	require.NotNil(t, outcome.Piece)
	assert.True(t, outcome.Piece.Equal(piece1()))
	assert.Equal(t, 2, outcome.Moved)
	assert.Equal(t, 0, outcome.Collected)

	ps := game.Player(0)
	assert.Equal(t, 9, ps.Currency())
	assert.Equal(t, piece1().Size(), ps.Score())
	assert.Equal(t, 3, game.Queue().Len())
	assert.Equal(t, 2, game.Track().PlayerPosition(0))

	// Player 1 is current now and takes piece3 (cost 1, distance 3) at
	// depth 1.
	current, _ := game.CurrentPlayer()
	require.Equal(t, Player(1), current)

	outcome, err = game.PlacePiece(1, pos(0, 0), Identity())
	require.NoError(t, err)
	assert.True(t, outcome.Piece.Equal(piece3()))
	assert.Equal(t, 3, game.Track().PlayerPosition(1))
	assert.Equal(t, 9, game.Player(1).Currency())
}

func TestPlacePieceCollectCredit(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	// piece2 costs 8, moves 6 (crossing the collect on square 5), and
	// carries a collect value of 3.
	outcome, err := game.PlacePiece(1, pos(0, 0), Identity())
	require.NoError(t, err)

	assert.Equal(t, 6, outcome.Moved)
	assert.Equal(t, 1, outcome.CollectSquares)
	assert.Equal(t, 3, outcome.Collected)
	assert.Equal(t, 10-8+3, game.Player(0).Currency())
	assert.Equal(t, 3, game.Player(0).CollectRate())
}

func TestPlacePieceInsufficientCurrency(t *testing.T) {
	config := createTestConfig()
	config.StartingCurrency = 5
	game := newTestGame(t, config)

	// piece2 costs 8.
	_, err := game.PlacePiece(1, pos(0, 0), Identity())
	assert.ErrorIs(t, err, ErrInsufficientCurrency)

	assert.Equal(t, 4, game.Queue().Len(), "failed action must not consume the piece")
	assert.Equal(t, 5, game.Player(0).Currency())
	assert.Equal(t, 0, game.Player(0).Score())
	assert.Equal(t, 0, game.Track().PlayerPosition(0))
}

func TestPlacePieceInvalidPlacement(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	_, err := game.PlacePiece(0, pos(8, 8), Identity())
	assert.ErrorIs(t, err, ErrOverhangsRight)

	assert.Equal(t, 4, game.Queue().Len())
	assert.Equal(t, 10, game.Player(0).Currency())
	assert.Equal(t, 0, game.Track().PlayerPosition(0))
}

func TestPlacePieceQueueErrors(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	_, err := game.PlacePiece(5, pos(0, 0), Identity())
	assert.ErrorIs(t, err, ErrTakeOverDepth)
}

func TestPass(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	// Both tokens share square 0, so passing moves a single square.
	outcome, err := game.Pass()
	require.NoError(t, err)
	assert.Equal(t, Player(0), outcome.Player)
	assert.Equal(t, 1, outcome.Moved)
	assert.Equal(t, 1, outcome.Earned)
	assert.Equal(t, 11, game.Player(0).Currency())

	// Player 1 passes from square 0 to one past player 0.
	outcome, err = game.Pass()
	require.NoError(t, err)
	assert.Equal(t, Player(1), outcome.Player)
	assert.Equal(t, 2, outcome.Moved)
	assert.Equal(t, 12, game.Player(1).Currency())
}

func TestGrantedPieceMustBePlaced(t *testing.T) {
	config := createTestConfig()
	grant := SingleCellPiece()
	config.Track = make([]SquareConfig, 15)
	config.Track[2].Piece = &grant
	game := newTestGame(t, config)

	// Player 0 out of the way.
	_, err := game.Pass()
	require.NoError(t, err)

	// Player 1 lands on the grant via piece1 (distance 2).
	outcome, err := game.PlacePiece(0, pos(0, 0), Identity())
	require.NoError(t, err)
	require.Len(t, outcome.Granted, 1)
	assert.Len(t, game.Player(1).PendingPieces(), 1)

	// Player 0 acts in between.
	_, err = game.Pass()
	require.NoError(t, err)

	// Player 1 must place the granted piece before anything else.
	current, _ := game.CurrentPlayer()
	require.Equal(t, Player(1), current)

	_, err = game.PlacePiece(0, pos(5, 5), Identity())
	assert.ErrorIs(t, err, ErrPendingPlacement)
	_, err = game.Pass()
	assert.ErrorIs(t, err, ErrPendingPlacement)

	placed, err := game.PlaceGranted(pos(5, 5), Identity())
	require.NoError(t, err)
	assert.True(t, placed.Piece.Equal(grant))
	assert.Empty(t, game.Player(1).PendingPieces())
	assert.True(t, game.Player(1).Board().IsPositionCovered(pos(5, 5)))
}

func TestPlaceGrantedWithoutPending(t *testing.T) {
	game := newTestGame(t, createTestConfig())

	_, err := game.PlaceGranted(pos(0, 0), Identity())
	assert.ErrorIs(t, err, ErrNoPendingPiece)
}

func TestBonusAwardedOnce(t *testing.T) {
	config := createTestConfig()
	config.Pieces = []Piece{piece2(), piece2()}
	game := newTestGame(t, config)

	// piece2 covers a 2x2 block, completing the size-2 bonus square.
	outcome, err := game.PlacePiece(0, pos(0, 0), Identity())
	require.NoError(t, err)
	assert.True(t, outcome.BonusAwarded)
	assert.Equal(t, 2, game.Player(0).Bonus())
	assert.Equal(t, 0, game.BonusSquareSize())

	// The same shape earns player 1 nothing: the bonus is one-time.
	outcome, err = game.PlacePiece(0, pos(0, 0), Identity())
	require.NoError(t, err)
	assert.False(t, outcome.BonusAwarded)
	assert.Equal(t, 0, game.Player(1).Bonus())
}

func TestGameOverWhenQueueEmpty(t *testing.T) {
	config := createTestConfig()
	config.Pieces = []Piece{piece1()}
	game := newTestGame(t, config)

	require.False(t, game.IsGameOver())

	_, err := game.PlacePiece(0, pos(0, 0), Identity())
	require.NoError(t, err)

	assert.True(t, game.IsGameOver(), "empty queue ends the game")
	assert.Panics(t, func() { game.Pass() })
	assert.Panics(t, func() { game.PlacePiece(0, pos(5, 5), Identity()) })
}

func TestGameOverWhenTrackFinished(t *testing.T) {
	config := createTestConfig()
	config.Track = make([]SquareConfig, 8)
	game := newTestGame(t, config)

	// Walk both players to the final square by passing.
	for !game.IsGameOver() {
		_, err := game.Pass()
		require.NoError(t, err)
	}

	assert.True(t, game.Track().IsGameOver())
	_, ok := game.CurrentPlayer()
	assert.False(t, ok)
	assert.Panics(t, func() { game.Pass() })
}
