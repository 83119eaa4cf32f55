package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Piece is an immutable polyomino-like game piece.
//
// Invariants: the positions are sorted, duplicate-free, and fill the piece
// dimension tightly. Transformed views are computed on demand and never
// mutate the piece.
type Piece struct {
	dimension Dimension
	positions []Position
	cost      int
	distance  int
	collect   int
}

// NewPiece builds a piece from raw cell positions, sorting and removing
// duplicates. Coordinates must be non-negative. An empty position list
// yields a zero-by-zero piece.
func NewPiece(positions []Position, cost, distance, collect int) Piece {
	ps := slices.Clone(positions)
	slices.SortFunc(ps, comparePositions)
	ps = slices.Compact(ps)

	return Piece{
		dimension: boundingDimension(ps),
		positions: ps,
		cost:      cost,
		distance:  distance,
		collect:   collect,
	}
}

// SingleCellPiece returns the free 1x1 piece granted by time board squares.
func SingleCellPiece() Piece {
	return NewPiece([]Position{{X: 0, Y: 0}}, 0, 0, 0)
}

// comparePositions orders positions by x, then y. This is the canonical
// order placement validation iterates in.
func comparePositions(a, b Position) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

// boundingDimension computes the tight bounding box of the given positions.
func boundingDimension(positions []Position) Dimension {
	var d Dimension
	for _, p := range positions {
		d.Width = max(d.Width, p.X+1)
		d.Height = max(d.Height, p.Y+1)
	}
	return d
}

// Dimension returns the piece's bounding box under the given transformation.
func (p Piece) Dimension(t Transformation) Dimension {
	return t.ApplyDim(p.dimension)
}

// Width returns the piece's width under the given transformation.
func (p Piece) Width(t Transformation) int {
	return p.Dimension(t).Width
}

// Height returns the piece's height under the given transformation.
func (p Piece) Height(t Transformation) int {
	return p.Dimension(t).Height
}

// Size returns the number of cells the piece covers.
func (p Piece) Size() int {
	return len(p.positions)
}

// Cost returns the currency needed to acquire the piece.
func (p Piece) Cost() int {
	return p.cost
}

// Distance returns how far the owner's token advances when the piece is
// taken.
func (p Piece) Distance() int {
	return p.distance
}

// Collect returns the currency credited per collect square crossed while
// holding the piece.
func (p Piece) Collect() int {
	return p.collect
}

// Positions returns the piece's cells under the given transformation, in
// the piece's canonical (sorted, pre-transform) order. The slice is freshly
// derived from the stored positions on every call.
func (p Piece) Positions(t Transformation) []Position {
	out := make([]Position, len(p.positions))
	for i, pos := range p.positions {
		out[i] = t.Apply(p.dimension, pos)
	}
	return out
}

// Equal reports whether two pieces have the same shape and attributes.
func (p Piece) Equal(other Piece) bool {
	return p.cost == other.cost &&
		p.distance == other.distance &&
		p.collect == other.collect &&
		p.dimension == other.dimension &&
		slices.Equal(p.positions, other.positions)
}

// String renders the piece's shape with '#' for covered cells.
func (p Piece) String() string {
	rows := make([][]byte, p.dimension.Height)
	for y := range rows {
		rows[y] = bytes.Repeat([]byte{'-'}, p.dimension.Width)
	}
	for _, pos := range p.positions {
		rows[pos.Y][pos.X] = '#'
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pieceRecord is the wire form of a piece, matching the setup file schema.
type pieceRecord struct {
	Positions []Position `json:"positions"`
	Cost      *int       `json:"cost"`
	Distance  *int       `json:"distance"`
	Collect   *int       `json:"collect,omitempty"`
}

// MarshalJSON writes the piece in setup file form.
func (p Piece) MarshalJSON() ([]byte, error) {
	collect := p.collect
	return json.Marshal(pieceRecord{
		Positions: slices.Clone(p.positions),
		Cost:      &p.cost,
		Distance:  &p.distance,
		Collect:   &collect,
	})
}

// UnmarshalJSON reads a piece record, rejecting unknown fields, missing
// required fields, and negative values. Collect defaults to zero.
func (p *Piece) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec pieceRecord
	if err := dec.Decode(&rec); err != nil {
		return fmt.Errorf("invalid piece record: %w", err)
	}
	if rec.Positions == nil {
		return fmt.Errorf("invalid piece record: missing positions")
	}
	if rec.Cost == nil {
		return fmt.Errorf("invalid piece record: missing cost")
	}
	if rec.Distance == nil {
		return fmt.Errorf("invalid piece record: missing distance")
	}

	collect := 0
	if rec.Collect != nil {
		collect = *rec.Collect
	}
	if *rec.Cost < 0 || *rec.Distance < 0 || collect < 0 {
		return fmt.Errorf("invalid piece record: cost, distance, and collect must be non-negative")
	}
	for _, pos := range rec.Positions {
		if pos.X < 0 || pos.Y < 0 {
			return fmt.Errorf("invalid piece record: position (%d,%d) has negative coordinates", pos.X, pos.Y)
		}
	}

	*p = NewPiece(rec.Positions, *rec.Cost, *rec.Distance, collect)
	return nil
}
