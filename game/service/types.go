package service

import (
	"time"

	"github.com/quiltworks/quilting/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string    `json:"id"`
	ConfigName     string    `json:"config_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	GameState      *GameView `json:"game_state"`
}

// PlaceRequest describes a placement: which queue piece to take and where
// to put it on the current player's board. Rotation is in degrees
// (0/90/180/270) and Flip is "none" or "horizontal". Depth is ignored when
// placing a granted piece.
type PlaceRequest struct {
	Depth    int    `json:"depth"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation int    `json:"rotation,omitempty"`
	Flip     string `json:"flip,omitempty"`
}

// ActionResult contains the result of a turn action. Success is false when
// the action was rejected by the rules (not enough currency, piece does not
// fit, a granted piece is pending); ErrorCode then carries a stable
// machine-friendly code.
type ActionResult struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	ErrorCode string    `json:"error_code,omitempty"`
	Outcome   *Outcome  `json:"outcome,omitempty"`
	GameState *GameView `json:"game_state"`
}

// Outcome summarizes what a successful action did.
type Outcome struct {
	Player         int        `json:"player"`
	Piece          *PieceView `json:"piece,omitempty"`
	Moved          int        `json:"moved"`
	CollectSquares int        `json:"collect_squares"`
	Collected      int        `json:"collected"`
	Earned         int        `json:"earned"`
	Granted        int        `json:"granted"`
	BonusAwarded   bool       `json:"bonus_awarded"`
}

// GameView is the JSON representation of a game in progress.
type GameView struct {
	GameOver        bool         `json:"game_over"`
	CurrentPlayer   int          `json:"current_player"` // -1 once the game is over
	NextPlayer      int          `json:"next_player"`    // -1 once the game is over
	BonusSquareSize int          `json:"bonus_square_size"`
	QueueSize       int          `json:"queue_size"`
	Players         []PlayerView `json:"players"`
	Track           []SquareView `json:"track"`
	Winners         []int        `json:"winners,omitempty"` // only set when the game is over
}

// PlayerView is the JSON representation of one player's state. Board rows
// use '#' for covered cells and '-' for open ones.
type PlayerView struct {
	Index       int         `json:"index"`
	Position    int         `json:"position"`
	Currency    int         `json:"currency"`
	Bonus       int         `json:"bonus"`
	CollectRate int         `json:"collect_rate"`
	Covered     int         `json:"covered"`
	Score       int         `json:"score"`
	Board       []string    `json:"board"`
	Pending     []PieceView `json:"pending,omitempty"`
}

// PieceView is the JSON representation of a piece. Shape rows use the same
// '#'/'-' cells as boards.
type PieceView struct {
	Shape    []string `json:"shape"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Size     int      `json:"size"`
	Cost     int      `json:"cost"`
	Distance int      `json:"distance"`
	Collect  int      `json:"collect,omitempty"`
}

// SquareView is the JSON representation of one track square.
type SquareView struct {
	Index   int        `json:"index"`
	Collect bool       `json:"collect,omitempty"`
	Piece   *PieceView `json:"piece,omitempty"`
	Players []int      `json:"players,omitempty"`
}

// QueueView lists the piece queue front-first. Takeable is the slice of
// pieces within the configured take depth, the only ones the current player
// may buy.
type QueueView struct {
	Size     int         `json:"size"`
	Depth    int         `json:"depth"`
	Takeable []PieceView `json:"takeable"`
	Pieces   []PieceView `json:"pieces"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Players     int    `json:"players"`
	BoardWidth  int    `json:"board_width"`
	BoardHeight int    `json:"board_height"`
	Pieces      int    `json:"pieces"`
	TrackSize   int    `json:"track_size"`
}

// NewPieceView renders a piece under the identity transformation.
func NewPieceView(p engine.Piece) *PieceView {
	id := engine.Identity()
	dim := p.Dimension(id)
	rows := make([][]byte, dim.Height)
	for y := range rows {
		row := make([]byte, dim.Width)
		for x := range row {
			row[x] = '-'
		}
		rows[y] = row
	}
	for _, pos := range p.Positions(id) {
		rows[pos.Y][pos.X] = '#'
	}
	shape := make([]string, len(rows))
	for y, row := range rows {
		shape[y] = string(row)
	}
	return &PieceView{
		Shape:    shape,
		Width:    dim.Width,
		Height:   dim.Height,
		Size:     p.Size(),
		Cost:     p.Cost(),
		Distance: p.Distance(),
		Collect:  p.Collect(),
	}
}

// NewGameView builds the full JSON view of a game.
func NewGameView(game *engine.GameState) *GameView {
	view := &GameView{
		GameOver:        game.IsGameOver(),
		CurrentPlayer:   -1,
		NextPlayer:      -1,
		BonusSquareSize: game.BonusSquareSize(),
		QueueSize:       game.Queue().Len(),
		Players:         make([]PlayerView, game.Players()),
		Track:           make([]SquareView, game.Track().Len()),
	}
	if current, ok := game.CurrentPlayer(); ok && !view.GameOver {
		view.CurrentPlayer = int(current)
	}
	if next, ok := game.NextPlayer(); ok && !view.GameOver {
		view.NextPlayer = int(next)
	}

	for i := range view.Players {
		ps := game.Player(engine.Player(i))
		pv := PlayerView{
			Index:       i,
			Position:    game.Track().PlayerPosition(engine.Player(i)),
			Currency:    ps.Currency(),
			Bonus:       ps.Bonus(),
			CollectRate: ps.CollectRate(),
			Covered:     ps.Score(),
			Board:       ps.Board().Rows(),
		}
		pv.Score = finalScore(ps)
		for _, pending := range ps.PendingPieces() {
			pv.Pending = append(pv.Pending, *NewPieceView(pending))
		}
		view.Players[i] = pv
	}

	track := game.Track()
	for i := range view.Track {
		sv := SquareView{Index: i, Collect: track.CollectAt(i)}
		if piece, ok := track.PieceAt(i); ok {
			sv.Piece = NewPieceView(piece)
		}
		for _, p := range track.PlayersAt(i) {
			sv.Players = append(sv.Players, int(p))
		}
		view.Track[i] = sv
	}

	if view.GameOver {
		view.Winners = winners(view.Players)
	}
	return view
}

// NewQueueView builds the JSON view of the piece queue.
func NewQueueView(game *engine.GameState) *QueueView {
	queue := game.Queue()
	view := &QueueView{
		Size:     queue.Len(),
		Depth:    queue.Depth(),
		Takeable: []PieceView{},
		Pieces:   []PieceView{},
	}
	for i, piece := range queue.Pieces() {
		pv := *NewPieceView(piece)
		view.Pieces = append(view.Pieces, pv)
		if i <= queue.Depth() {
			view.Takeable = append(view.Takeable, pv)
		}
	}
	return view
}

// finalScore ranks players: covered cells plus the one-time bonus.
func finalScore(ps *engine.PlayerState) int {
	return ps.Score() + ps.Bonus()
}

// winners returns the indexes of all players sharing the top score.
func winners(players []PlayerView) []int {
	best := players[0].Score
	for _, pv := range players[1:] {
		if pv.Score > best {
			best = pv.Score
		}
	}
	var result []int
	for _, pv := range players {
		if pv.Score == best {
			result = append(result, pv.Index)
		}
	}
	return result
}
