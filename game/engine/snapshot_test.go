package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playedGame returns a game a few turns in: player 0 has bought piece1,
// player 1 has passed.
func playedGame(t *testing.T) *GameState {
	t.Helper()
	game := newTestGame(t, createTestConfig())

	_, err := game.PlacePiece(0, pos(0, 0), Identity())
	require.NoError(t, err)
	_, err = game.Pass()
	require.NoError(t, err)
	return game
}

func TestSnapshotRestoreEquivalence(t *testing.T) {
	game := playedGame(t)
	restored, err := RestoreGame(game.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, game.Players(), restored.Players())
	assert.Equal(t, game.Queue().Len(), restored.Queue().Len())
	assert.Equal(t, game.Queue().Depth(), restored.Queue().Depth())
	assert.Equal(t, game.BonusSquareSize(), restored.BonusSquareSize())

	for i := 0; i < game.Players(); i++ {
		want, got := game.Player(Player(i)), restored.Player(Player(i))
		assert.Equal(t, want.Currency(), got.Currency())
		assert.Equal(t, want.Bonus(), got.Bonus())
		assert.Equal(t, want.CollectRate(), got.CollectRate())
		assert.Equal(t, want.Board().Rows(), got.Board().Rows())
		assert.Equal(t, want.PendingPieces(), got.PendingPieces())
		assert.Equal(t, game.Track().PlayerPosition(Player(i)), restored.Track().PlayerPosition(Player(i)))
	}

	wantCurrent, _ := game.CurrentPlayer()
	gotCurrent, _ := restored.CurrentPlayer()
	assert.Equal(t, wantCurrent, gotCurrent)
}

func TestRestoredGamePlaysOn(t *testing.T) {
	game := playedGame(t)
	restored, err := RestoreGame(game.Snapshot())
	require.NoError(t, err)

	// The same action on both games must produce the same outcome.
	want, err := game.PlacePiece(1, pos(5, 5), Identity())
	require.NoError(t, err)
	got, err := restored.PlacePiece(1, pos(5, 5), Identity())
	require.NoError(t, err)

	assert.Equal(t, want.Player, got.Player)
	assert.True(t, want.Piece.Equal(*got.Piece))
	assert.Equal(t, want.Moved, got.Moved)
	assert.Equal(t, want.Collected, got.Collected)
	assert.Equal(t, game.Player(want.Player).Currency(), restored.Player(got.Player).Currency())
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	game := playedGame(t)
	snap := game.Snapshot()

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := RestoreGame(&decoded)
	require.NoError(t, err)
	assert.Equal(t, snap, restored.Snapshot())
}

func TestSnapshotIsDetached(t *testing.T) {
	game := playedGame(t)
	snap := game.Snapshot()
	before := game.Player(0).Board().Rows()

	// Mutating the snapshot must not reach into the live game.
	snap.Players[0].Currency = 999
	snap.Queue = nil

	assert.Equal(t, before, game.Player(0).Board().Rows())
	assert.NotEqual(t, 999, game.Player(0).Currency())
	assert.NotZero(t, game.Queue().Len())
}

func TestRestoreGameValidation(t *testing.T) {
	base := func() *Snapshot { return playedGame(t).Snapshot() }

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"one player", func(s *Snapshot) { s.Players = s.Players[:1] }},
		{"short track", func(s *Snapshot) { s.Track = s.Track[:1] }},
		{"missing token", func(s *Snapshot) {
			for i := range s.Track {
				s.Track[i].Players = nil
			}
		}},
		{"duplicate token", func(s *Snapshot) {
			s.Track[0].Players = []Player{0, 1}
			s.Track[1].Players = []Player{0}
		}},
		{"unknown player", func(s *Snapshot) { s.Track[0].Players = []Player{7} }},
		{"ragged board", func(s *Snapshot) { s.Players[0].Board[2] = "###" }},
		{"invalid board cell", func(s *Snapshot) { s.Players[0].Board[0] = "--x------" }},
		{"empty board", func(s *Snapshot) { s.Players[0].Board = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base()
			tt.mutate(snap)
			_, err := RestoreGame(snap)
			assert.Error(t, err)
		})
	}

	_, err := RestoreGame(nil)
	assert.Error(t, err)
}
