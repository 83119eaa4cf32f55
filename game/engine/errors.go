package engine

import "errors"

// Player-attributable outcomes. These occur during normal play, never mutate
// state, and should be surfaced to the player as a retry.
var (
	// ErrOverhangsRight means a placed piece would extend past the right
	// edge of the quilt board.
	ErrOverhangsRight = errors.New("piece overhangs the right edge of the board")

	// ErrOverhangsBottom means a placed piece would extend past the bottom
	// edge of the quilt board.
	ErrOverhangsBottom = errors.New("piece overhangs the bottom edge of the board")

	// ErrOverlapsPiece means a placed piece would cover an already covered
	// cell.
	ErrOverlapsPiece = errors.New("piece overlaps another piece")

	// ErrTakeOverDepth means a take requested a lookahead beyond the
	// queue's configured depth.
	ErrTakeOverDepth = errors.New("cannot take pieces from that deep in the piece queue")

	// ErrOutOfPieces means the queue does not hold enough pieces to take at
	// the requested depth.
	ErrOutOfPieces = errors.New("the piece queue does not have that many pieces")

	// ErrInsufficientCurrency means the current player cannot afford the
	// requested piece.
	ErrInsufficientCurrency = errors.New("not enough currency to take that piece")

	// ErrPendingPlacement means the current player holds a granted piece
	// that must be placed before any other action.
	ErrPendingPlacement = errors.New("a granted piece must be placed first")

	// ErrNoPendingPiece means PlaceGranted was called with nothing pending.
	ErrNoPendingPiece = errors.New("no granted piece is pending placement")
)
