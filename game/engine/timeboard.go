package engine

// Square is one cell of the time board. A square's piece grant is consumed
// the first time any player crosses or lands on it; the collect flag is
// persistent and fires on every crossing.
type Square struct {
	piece   *Piece
	collect bool
	players PlayOrder
}

// TimeBoard is the shared track of squares along which player tokens
// advance. It is the single source of truth for whose turn it is: the
// player on top of the stack at the earliest occupied square acts next.
type TimeBoard struct {
	squares []Square
}

// MoveResult describes the side effects of one track move.
type MoveResult struct {
	// Pieces holds the grants consumed from crossed squares, in track
	// order.
	Pieces []Piece
	// Collects counts the collect squares crossed.
	Collects int
	// Moved is the number of squares actually advanced, which may be less
	// than requested because movement clamps at the track end.
	Moved int
}

// NewTimeBoard builds a track from the given layout and places the
// starting play order on the first square. It panics if the layout has
// fewer than two squares or the play order fewer than two players.
func NewTimeBoard(layout []SquareConfig, start PlayOrder) *TimeBoard {
	if len(layout) < 2 {
		panic("timeboard: track must have at least two squares")
	}
	if start.Len() < 2 {
		panic("timeboard: must have at least two players")
	}

	squares := make([]Square, len(layout))
	for i, sc := range layout {
		squares[i].collect = sc.Collect
		if sc.Piece != nil {
			piece := *sc.Piece
			squares[i].piece = &piece
		}
	}
	squares[0].players = start

	return &TimeBoard{squares: squares}
}

// Len returns the number of squares on the track.
func (t *TimeBoard) Len() int {
	return len(t.squares)
}

// CollectAt reports whether square i carries the persistent collect flag.
func (t *TimeBoard) CollectAt(i int) bool {
	return t.squares[i].collect
}

// PieceAt returns square i's unconsumed piece grant, if any.
func (t *TimeBoard) PieceAt(i int) (Piece, bool) {
	if t.squares[i].piece == nil {
		return Piece{}, false
	}
	return *t.squares[i].piece, true
}

// PlayersAt returns the player tokens resting on square i, the one to act
// first on top.
func (t *TimeBoard) PlayersAt(i int) []Player {
	return t.squares[i].players.Players()
}

// PlayerPosition returns the square index holding the given player's
// token. It panics if the token is not on the board.
func (t *TimeBoard) PlayerPosition(p Player) int {
	for i := range t.squares {
		for _, q := range t.squares[i].players.Players() {
			if q == p {
				return i
			}
		}
	}
	panic("timeboard: player token not on the board")
}

// currentIndex returns the earliest occupied square. Every player token is
// always on exactly one square, so this cannot fail on a valid board.
func (t *TimeBoard) currentIndex() int {
	for i := range t.squares {
		if !t.squares[i].players.IsEmpty() {
			return i
		}
	}
	panic("timeboard: no player tokens on the board")
}

// IsGameOver reports whether the earliest occupied square is the final
// square, meaning every player has finished.
func (t *TimeBoard) IsGameOver() bool {
	return t.currentIndex() == len(t.squares)-1
}

// CurrentPlayer returns the player whose turn it is. The second return is
// false once that player has reached the final square.
func (t *TimeBoard) CurrentPlayer() (Player, bool) {
	i := t.currentIndex()
	if i == len(t.squares)-1 {
		return 0, false
	}
	p, _ := t.squares[i].players.Peek()
	return p, true
}

// IndexOfNextPlayer returns the square holding the token that acts after
// the current one. When the current square holds more than one token the
// next-to-top token of that same square goes next, ahead of any token on a
// later square.
func (t *TimeBoard) IndexOfNextPlayer() int {
	cur := t.currentIndex()
	if t.squares[cur].players.Len() > 1 {
		return cur
	}
	for i := cur + 1; i < len(t.squares); i++ {
		if !t.squares[i].players.IsEmpty() {
			return i
		}
	}
	panic("timeboard: no next player token on the board")
}

// NextPlayer returns the player who acts after the current one.
func (t *TimeBoard) NextPlayer() (Player, bool) {
	if t.IsGameOver() {
		return 0, false
	}
	cur := t.currentIndex()
	next := t.IndexOfNextPlayer()
	players := t.squares[next].players.Players()
	if next == cur {
		return players[1], true
	}
	return players[0], true
}

// MovePlayer advances the current player's token by distance squares,
// clamped at the track end. Every square crossed, from the square after the
// start through the landing square, yields its unconsumed piece grant (the
// grant is then removed) and counts toward the collect total if flagged.
// It panics if distance is not positive or the game is over.
func (t *TimeBoard) MovePlayer(distance int) MoveResult {
	if distance <= 0 {
		panic("timeboard: move distance must be positive")
	}
	if t.IsGameOver() {
		panic("timeboard: cannot move after the game is over")
	}

	cur := t.currentIndex()
	player, _ := t.squares[cur].players.Pop()
	target := min(cur+distance, len(t.squares)-1)

	var result MoveResult
	for i := cur + 1; i <= target; i++ {
		sq := &t.squares[i]
		if sq.piece != nil {
			result.Pieces = append(result.Pieces, *sq.piece)
			sq.piece = nil
		}
		if sq.collect {
			result.Collects++
		}
	}
	result.Moved = target - cur

	t.squares[target].players.Push(player)
	return result
}
