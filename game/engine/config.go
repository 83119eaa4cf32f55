package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultBonusSquareSize is the side of the fully covered square that earns
// the standard one-time bonus.
const DefaultBonusSquareSize = 7

// SquareConfig describes one square of a track layout: an optional piece
// grant and a persistent collect flag.
type SquareConfig struct {
	Piece   *Piece `json:"piece,omitempty"`
	Collect bool   `json:"collect,omitempty"`
}

// squareRecord mirrors SquareConfig for strict decoding.
type squareRecord struct {
	Piece   *Piece `json:"piece"`
	Collect *bool  `json:"collect"`
}

// UnmarshalJSON reads a square record, rejecting unknown fields. Collect
// defaults to false.
func (s *SquareConfig) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec squareRecord
	if err := dec.Decode(&rec); err != nil {
		return fmt.Errorf("invalid square record: %w", err)
	}

	s.Piece = rec.Piece
	s.Collect = rec.Collect != nil && *rec.Collect
	return nil
}

// GameConfig is the immutable description of a game setup, loaded from a
// JSON setup file or built in code. All knobs of a new game live here;
// NewGame consumes it once.
type GameConfig struct {
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	Players          int            `json:"players"`
	StartingCurrency int            `json:"starting_currency"`
	BoardWidth       int            `json:"board_width"`
	BoardHeight      int            `json:"board_height"`
	TakeDepth        int            `json:"take_depth"`
	BonusSquareSize  int            `json:"bonus_square_size,omitempty"` // 0 disables the bonus
	Shuffle          bool           `json:"shuffle"`
	Seed             int64          `json:"seed,omitempty"` // 0 means derive from the clock
	Pieces           []Piece        `json:"pieces"`
	Track            []SquareConfig `json:"track"`
}

// ValidateGameConfig checks that a configuration describes a playable game.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if config.Players < 2 {
		return fmt.Errorf("must have at least two players, got %d", config.Players)
	}
	if config.StartingCurrency < 0 {
		return fmt.Errorf("starting currency cannot be negative, got %d", config.StartingCurrency)
	}
	if config.BoardWidth < 1 || config.BoardHeight < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", config.BoardWidth, config.BoardHeight)
	}
	if config.TakeDepth < 0 {
		return fmt.Errorf("take depth cannot be negative, got %d", config.TakeDepth)
	}
	if config.BonusSquareSize < 0 {
		return fmt.Errorf("bonus square size cannot be negative, got %d", config.BonusSquareSize)
	}
	if config.BonusSquareSize > min(config.BoardWidth, config.BoardHeight) {
		return fmt.Errorf("bonus square size %d does not fit a %dx%d board",
			config.BonusSquareSize, config.BoardWidth, config.BoardHeight)
	}
	if len(config.Pieces) == 0 {
		return fmt.Errorf("piece set cannot be empty")
	}
	if len(config.Track) < 2 {
		return fmt.Errorf("track must have at least two squares, got %d", len(config.Track))
	}
	return nil
}
