package engine

import "slices"

// DefaultTakeDepth is the standard lookahead: a player may take any of the
// first three pieces (depths 0 through 2).
const DefaultTakeDepth = 2

// PieceQueue is the shared ordered queue of pieces available for taking.
// It shrinks by exactly one piece per successful take and is never
// reordered after the initial shuffle.
type PieceQueue struct {
	pieces []Piece
	depth  int
}

// NewPieceQueue builds a queue over the given pieces with the given maximum
// take depth. If rng is non-nil the pieces are shuffled; a nil rng keeps
// the given order, which tests rely on for determinism.
func NewPieceQueue(pieces []Piece, depth int, rng Rand) *PieceQueue {
	ps := slices.Clone(pieces)
	if rng != nil {
		shuffle(rng, ps)
	}
	return &PieceQueue{pieces: ps, depth: depth}
}

// IsEmpty reports whether no pieces remain.
func (q *PieceQueue) IsEmpty() bool {
	return len(q.pieces) == 0
}

// Len returns the number of pieces remaining.
func (q *PieceQueue) Len() int {
	return len(q.pieces)
}

// Depth returns the maximum allowed take depth.
func (q *PieceQueue) Depth() int {
	return q.depth
}

// Pieces returns a copy of the remaining pieces in queue order.
func (q *PieceQueue) Pieces() []Piece {
	return slices.Clone(q.pieces)
}

// Peek returns the piece at the given depth without removing it, applying
// the same checks as Take.
func (q *PieceQueue) Peek(depth int) (Piece, error) {
	if depth > q.depth {
		return Piece{}, ErrTakeOverDepth
	}
	if depth >= len(q.pieces) {
		return Piece{}, ErrOutOfPieces
	}
	return q.pieces[depth], nil
}

// Take removes and returns the piece at the given depth. The pieces skipped
// over stay at the front of the queue in their original order.
func (q *PieceQueue) Take(depth int) (Piece, error) {
	taken, err := q.Peek(depth)
	if err != nil {
		return Piece{}, err
	}
	q.pieces = append(q.pieces[:depth], q.pieces[depth+1:]...)
	return taken, nil
}
