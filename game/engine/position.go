package engine

import "fmt"

// Position is a cell coordinate on a board or within a piece.
// The origin is the upper-left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Translate adds the coordinates of other to p, like vector addition.
func (p Position) Translate(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Dimension is the width and height of a board or piece.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SquareDimension returns a dimension with equal width and height.
func SquareDimension(side int) Dimension {
	return Dimension{Width: side, Height: side}
}

// Contains reports whether p falls within d.
func (d Dimension) Contains(p Position) bool {
	return p.X < d.Width && p.Y < d.Height
}

// Transpose swaps the width and height.
func (d Dimension) Transpose() Dimension {
	return Dimension{Width: d.Height, Height: d.Width}
}

// Rotation is a clockwise rotation applied to a piece before any flip.
type Rotation int

const (
	RotateNone Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// RotationFromDegrees maps 0, 90, 180, or 270 to a Rotation.
func RotationFromDegrees(degrees int) (Rotation, error) {
	switch degrees {
	case 0:
		return RotateNone, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	default:
		return RotateNone, fmt.Errorf("invalid rotation %d: must be 0, 90, 180, or 270", degrees)
	}
}

// Degrees returns the rotation as a number of clockwise degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// ApplyDim applies the rotation to a dimension, swapping width and height
// for odd multiples of 90 degrees.
func (r Rotation) ApplyDim(d Dimension) Dimension {
	if r == Rotate90 || r == Rotate270 {
		return d.Transpose()
	}
	return d
}

// Apply rotates p within the bounds of d.
func (r Rotation) Apply(d Dimension, p Position) Position {
	switch r {
	case Rotate90:
		return Position{X: d.Height - p.Y - 1, Y: p.X}
	case Rotate180:
		return Position{X: d.Width - p.X - 1, Y: d.Height - p.Y - 1}
	case Rotate270:
		return Position{X: p.Y, Y: d.Width - p.X - 1}
	default:
		return p
	}
}

// Flip is an optional horizontal mirror applied after rotation.
type Flip int

const (
	FlipNone Flip = iota
	FlipHorizontal
)

// ParseFlip maps "", "none", or "horizontal" to a Flip.
func ParseFlip(s string) (Flip, error) {
	switch s {
	case "", "none":
		return FlipNone, nil
	case "horizontal":
		return FlipHorizontal, nil
	default:
		return FlipNone, fmt.Errorf("invalid flip %q: must be \"none\" or \"horizontal\"", s)
	}
}

// String returns "none" or "horizontal".
func (f Flip) String() string {
	if f == FlipHorizontal {
		return "horizontal"
	}
	return "none"
}

// Apply mirrors p horizontally within the bounds of d.
func (f Flip) Apply(d Dimension, p Position) Position {
	if f == FlipHorizontal {
		return Position{X: d.Width - p.X - 1, Y: p.Y}
	}
	return p
}

// Transformation is a rotation followed by an optional horizontal flip.
// The flip is applied relative to the already-rotated dimension.
type Transformation struct {
	Rotation Rotation `json:"rotation"`
	Flip     Flip     `json:"flip"`
}

// Identity returns the transformation that leaves pieces unchanged.
func Identity() Transformation {
	return Transformation{}
}

// ApplyDim applies the transformation to a dimension. Only the rotation
// affects extents; a horizontal flip never does.
func (t Transformation) ApplyDim(d Dimension) Dimension {
	return t.Rotation.ApplyDim(d)
}

// Apply transforms p within the bounds of d: rotate first, then flip
// relative to the rotated dimension.
func (t Transformation) Apply(d Dimension, p Position) Position {
	p = t.Rotation.Apply(d, p)
	return t.Flip.Apply(t.Rotation.ApplyDim(d), p)
}
