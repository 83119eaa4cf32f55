package engine

import "strings"

// DefaultBoardSize is the side length of the standard quilt board.
const DefaultBoardSize = 9

// QuiltBoard is one player's occupancy grid. Cells only ever go from
// uncovered to covered; a board is mutated exclusively by successful
// placements.
type QuiltBoard struct {
	dimension Dimension
	rows      [][]bool
}

// NewQuiltBoard creates an empty board of the given dimensions.
func NewQuiltBoard(dimension Dimension) *QuiltBoard {
	rows := make([][]bool, dimension.Height)
	for y := range rows {
		rows[y] = make([]bool, dimension.Width)
	}
	return &QuiltBoard{dimension: dimension, rows: rows}
}

// Dimension returns the board's extents.
func (b *QuiltBoard) Dimension() Dimension {
	return b.dimension
}

// Width returns the board's width.
func (b *QuiltBoard) Width() int {
	return b.dimension.Width
}

// Height returns the board's height.
func (b *QuiltBoard) Height() int {
	return b.dimension.Height
}

// PositionsCovered counts the covered cells, used for scoring.
func (b *QuiltBoard) PositionsCovered() int {
	count := 0
	for _, row := range b.rows {
		for _, covered := range row {
			if covered {
				count++
			}
		}
	}
	return count
}

// IsPositionInBounds reports whether p lies on the board.
func (b *QuiltBoard) IsPositionInBounds(p Position) bool {
	return b.dimension.Contains(p)
}

// IsPositionCovered reports whether p is on the board and covered.
func (b *QuiltBoard) IsPositionCovered(p Position) bool {
	return b.IsPositionInBounds(p) && b.rows[p.Y][p.X]
}

// IsSquareCovered reports whether any size-by-size square fully inside the
// board is completely covered. This drives the one-time bonus award.
func (b *QuiltBoard) IsSquareCovered(size int) bool {
	for y := 0; y+size <= b.dimension.Height; y++ {
		for x := 0; x+size <= b.dimension.Width; x++ {
			if b.isSquareCoveredAt(Position{X: x, Y: y}, size) {
				return true
			}
		}
	}
	return false
}

func (b *QuiltBoard) isSquareCoveredAt(p Position, size int) bool {
	for y := p.Y; y < p.Y+size; y++ {
		for x := p.X; x < p.X+size; x++ {
			if !b.IsPositionCovered(Position{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// CanAddPiece checks whether the piece fits at position under the given
// transformation. Cells are checked in the piece's canonical order and the
// first violation wins: right overhang, then bottom overhang, then overlap.
func (b *QuiltBoard) CanAddPiece(position Position, piece Piece, t Transformation) error {
	for _, p := range piece.Positions(t) {
		p = p.Translate(position)

		if p.X >= b.dimension.Width {
			return ErrOverhangsRight
		}
		if p.Y >= b.dimension.Height {
			return ErrOverhangsBottom
		}
		if b.rows[p.Y][p.X] {
			return ErrOverlapsPiece
		}
	}
	return nil
}

// AddPiece validates the placement and, only on success, covers every cell
// of the piece. A failed placement never mutates the board.
func (b *QuiltBoard) AddPiece(position Position, piece Piece, t Transformation) error {
	if err := b.CanAddPiece(position, piece, t); err != nil {
		return err
	}
	for _, p := range piece.Positions(t) {
		b.rows[position.Y+p.Y][position.X+p.X] = true
	}
	return nil
}

// Rows renders the board one string per row, '#' for covered cells and '-'
// for uncovered ones.
func (b *QuiltBoard) Rows() []string {
	rows := make([]string, len(b.rows))
	for y, row := range b.rows {
		var sb strings.Builder
		for _, covered := range row {
			if covered {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('-')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the board as newline-terminated rows.
func (b *QuiltBoard) String() string {
	return strings.Join(b.Rows(), "\n") + "\n"
}
