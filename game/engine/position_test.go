package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func TestPositionTranslate(t *testing.T) {
	assert.Equal(t, pos(5, 7), pos(2, 3).Translate(pos(3, 4)))
	assert.Equal(t, pos(2, 3), pos(2, 3).Translate(pos(0, 0)))
}

func TestDimensionContains(t *testing.T) {
	d := Dimension{Width: 3, Height: 2}

	assert.True(t, d.Contains(pos(0, 0)))
	assert.True(t, d.Contains(pos(2, 1)))
	assert.False(t, d.Contains(pos(3, 0)))
	assert.False(t, d.Contains(pos(0, 2)))
}

func TestTransformUpperLeft(t *testing.T) {
	d := Dimension{Width: 6, Height: 4}
	p := pos(0, 0)

	tests := []struct {
		rotation Rotation
		flip     Flip
		want     Position
	}{
		{RotateNone, FlipNone, pos(0, 0)},
		{Rotate90, FlipNone, pos(3, 0)},
		{Rotate180, FlipNone, pos(5, 3)},
		{Rotate270, FlipNone, pos(0, 5)},
		{RotateNone, FlipHorizontal, pos(5, 0)},
		{Rotate90, FlipHorizontal, pos(0, 0)},
		{Rotate180, FlipHorizontal, pos(0, 3)},
		{Rotate270, FlipHorizontal, pos(3, 5)},
	}

	for _, tt := range tests {
		tr := Transformation{Rotation: tt.rotation, Flip: tt.flip}
		assert.Equal(t, tt.want, tr.Apply(d, p), "rotation %d flip %s", tt.rotation.Degrees(), tt.flip)
	}
}

func TestTransformUpperRight(t *testing.T) {
	d := Dimension{Width: 8, Height: 6}
	p := pos(7, 0)

	tests := []struct {
		rotation Rotation
		flip     Flip
		want     Position
	}{
		{RotateNone, FlipNone, pos(7, 0)},
		{Rotate90, FlipNone, pos(5, 7)},
		{Rotate180, FlipNone, pos(0, 5)},
		{Rotate270, FlipNone, pos(0, 0)},
		{RotateNone, FlipHorizontal, pos(0, 0)},
		{Rotate90, FlipHorizontal, pos(0, 7)},
		{Rotate180, FlipHorizontal, pos(7, 5)},
		{Rotate270, FlipHorizontal, pos(5, 0)},
	}

	for _, tt := range tests {
		tr := Transformation{Rotation: tt.rotation, Flip: tt.flip}
		assert.Equal(t, tt.want, tr.Apply(d, p), "rotation %d flip %s", tt.rotation.Degrees(), tt.flip)
	}
}

func TestTransformInterior(t *testing.T) {
	d := Dimension{Width: 6, Height: 4}
	p := pos(2, 1)

	tests := []struct {
		rotation Rotation
		flip     Flip
		want     Position
	}{
		{RotateNone, FlipNone, pos(2, 1)},
		{Rotate90, FlipNone, pos(2, 2)},
		{Rotate180, FlipNone, pos(3, 2)},
		{Rotate270, FlipNone, pos(1, 3)},
		{RotateNone, FlipHorizontal, pos(3, 1)},
		{Rotate90, FlipHorizontal, pos(1, 2)},
		{Rotate180, FlipHorizontal, pos(2, 2)},
		{Rotate270, FlipHorizontal, pos(2, 3)},
	}

	for _, tt := range tests {
		tr := Transformation{Rotation: tt.rotation, Flip: tt.flip}
		assert.Equal(t, tt.want, tr.Apply(d, p), "rotation %d flip %s", tt.rotation.Degrees(), tt.flip)
	}
}

func TestTransformDimension(t *testing.T) {
	d := Dimension{Width: 2, Height: 3}

	assert.Equal(t, d, Identity().ApplyDim(d))
	assert.Equal(t, Dimension{Width: 3, Height: 2}, Transformation{Rotation: Rotate90}.ApplyDim(d))
	assert.Equal(t, d, Transformation{Rotation: Rotate180}.ApplyDim(d))
	assert.Equal(t, Dimension{Width: 3, Height: 2}, Transformation{Rotation: Rotate270}.ApplyDim(d))
	assert.Equal(t, d, Transformation{Flip: FlipHorizontal}.ApplyDim(d))
}

// allTransformations enumerates the eight distinct piece orientations.
func allTransformations() []Transformation {
	var ts []Transformation
	for _, r := range []Rotation{RotateNone, Rotate90, Rotate180, Rotate270} {
		for _, f := range []Flip{FlipNone, FlipHorizontal} {
			ts = append(ts, Transformation{Rotation: r, Flip: f})
		}
	}
	return ts
}

func TestTransformIsBijection(t *testing.T) {
	d := Dimension{Width: 4, Height: 3}

	for _, tr := range allTransformations() {
		t.Run(fmt.Sprintf("rot%d_%s", tr.Rotation.Degrees(), tr.Flip), func(t *testing.T) {
			td := tr.ApplyDim(d)
			seen := make(map[Position]bool)

			for y := 0; y < d.Height; y++ {
				for x := 0; x < d.Width; x++ {
					p := tr.Apply(d, pos(x, y))
					assert.True(t, td.Contains(p), "image %v outside %v", p, td)
					assert.False(t, seen[p], "image %v hit twice", p)
					seen[p] = true
				}
			}
			assert.Len(t, seen, d.Width*d.Height)
		})
	}
}

func TestRotationFromDegrees(t *testing.T) {
	for _, deg := range []int{0, 90, 180, 270} {
		r, err := RotationFromDegrees(deg)
		assert.NoError(t, err)
		assert.Equal(t, deg, r.Degrees())
	}

	_, err := RotationFromDegrees(45)
	assert.Error(t, err)
}

func TestParseFlip(t *testing.T) {
	f, err := ParseFlip("")
	assert.NoError(t, err)
	assert.Equal(t, FlipNone, f)

	f, err = ParseFlip("horizontal")
	assert.NoError(t, err)
	assert.Equal(t, FlipHorizontal, f)

	_, err = ParseFlip("vertical")
	assert.Error(t, err)
}
