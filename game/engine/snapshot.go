package engine

import (
	"fmt"
	"slices"
)

// Snapshot is a JSON-serializable image of a game in progress, used by
// session persistence. RestoreGame rebuilds an equivalent GameState.
type Snapshot struct {
	Queue           []Piece          `json:"queue"`
	Depth           int              `json:"depth"`
	BonusSquareSize int              `json:"bonus_square_size"`
	Players         []PlayerSnapshot `json:"players"`
	Track           []SquareSnapshot `json:"track"`
}

// PlayerSnapshot captures one player's state. Board rows use '#' for
// covered cells and '-' for uncovered ones, matching QuiltBoard.Rows.
type PlayerSnapshot struct {
	Board       []string `json:"board"`
	Currency    int      `json:"currency"`
	Bonus       int      `json:"bonus"`
	CollectRate int      `json:"collect_rate"`
	Pending     []Piece  `json:"pending,omitempty"`
}

// SquareSnapshot captures one track square. Players are stored bottom to
// top of the square's stack.
type SquareSnapshot struct {
	Piece   *Piece   `json:"piece,omitempty"`
	Collect bool     `json:"collect,omitempty"`
	Players []Player `json:"players,omitempty"`
}

// Snapshot captures the complete current state of the game.
func (g *GameState) Snapshot() *Snapshot {
	s := &Snapshot{
		Queue:           g.queue.Pieces(),
		Depth:           g.queue.depth,
		BonusSquareSize: g.bonusSquareSize,
		Players:         make([]PlayerSnapshot, len(g.players)),
		Track:           make([]SquareSnapshot, len(g.track.squares)),
	}

	for i, ps := range g.players {
		s.Players[i] = PlayerSnapshot{
			Board:       ps.board.Rows(),
			Currency:    ps.currency,
			Bonus:       ps.bonus,
			CollectRate: ps.collectRate,
			Pending:     slices.Clone(ps.pending),
		}
	}

	for i := range g.track.squares {
		sq := &g.track.squares[i]
		snap := SquareSnapshot{Collect: sq.collect}
		if sq.piece != nil {
			piece := *sq.piece
			snap.Piece = &piece
		}
		if !sq.players.IsEmpty() {
			snap.Players = slices.Clone(sq.players.stack)
		}
		s.Track[i] = snap
	}

	return s
}

// RestoreGame rebuilds a GameState from a snapshot, validating structural
// consistency: rectangular boards, a track of at least two squares, and
// every player token on exactly one square.
func RestoreGame(s *Snapshot) (*GameState, error) {
	if s == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}
	if len(s.Players) < 2 {
		return nil, fmt.Errorf("snapshot must have at least two players, got %d", len(s.Players))
	}
	if len(s.Track) < 2 {
		return nil, fmt.Errorf("snapshot track must have at least two squares, got %d", len(s.Track))
	}

	players := make([]*PlayerState, len(s.Players))
	for i, psnap := range s.Players {
		board, err := boardFromRows(psnap.Board)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		players[i] = &PlayerState{
			board:       board,
			currency:    psnap.Currency,
			bonus:       psnap.Bonus,
			collectRate: psnap.CollectRate,
			pending:     slices.Clone(psnap.Pending),
		}
	}

	squares := make([]Square, len(s.Track))
	seen := make(map[Player]bool)
	for i, snap := range s.Track {
		squares[i].collect = snap.Collect
		if snap.Piece != nil {
			piece := *snap.Piece
			squares[i].piece = &piece
		}
		for _, p := range snap.Players {
			if int(p) < 0 || int(p) >= len(players) {
				return nil, fmt.Errorf("square %d: unknown player %d", i, p)
			}
			if seen[p] {
				return nil, fmt.Errorf("player %d appears on more than one square", p)
			}
			seen[p] = true
		}
		squares[i].players = PlayOrder{stack: slices.Clone(snap.Players)}
	}
	if len(seen) != len(players) {
		return nil, fmt.Errorf("snapshot places %d of %d player tokens", len(seen), len(players))
	}

	return &GameState{
		queue:           &PieceQueue{pieces: slices.Clone(s.Queue), depth: s.Depth},
		track:           &TimeBoard{squares: squares},
		players:         players,
		bonusSquareSize: s.BonusSquareSize,
	}, nil
}

// boardFromRows parses QuiltBoard.Rows output back into a board.
func boardFromRows(rows []string) (*QuiltBoard, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board has no rows")
	}
	width := len(rows[0])
	board := NewQuiltBoard(Dimension{Width: width, Height: len(rows)})
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("board row %d has width %d, want %d", y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case '#':
				board.rows[y][x] = true
			case '-':
			default:
				return nil, fmt.Errorf("board row %d has invalid cell %q", y, c)
			}
		}
	}
	return board, nil
}
