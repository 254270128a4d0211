package core

import "fmt"

// Coordinate represents a position on the map grid
type Coordinate struct {
	X, Y int
}

// InvalidCoordinate is the "no position" sentinel. It never compares equal to an
// in-bounds coordinate.
var InvalidCoordinate = Coordinate{X: -1, Y: -1}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a grid array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// Valid reports whether the coordinate is a real position rather than InvalidCoordinate.
func (c Coordinate) Valid() bool {
	return c.X >= 0 && c.Y >= 0
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a grid array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	if !c.Valid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Size is the width and height of a map grid
type Size struct {
	W, H int
}

// NewSize creates a size with the given width and height
func NewSize(w, h int) Size {
	return Size{W: w, H: h}
}

// Area returns the number of cells covered by the size
func (s Size) Area() int {
	return s.W * s.H
}

// Contains reports whether c lies inside a grid of this size
func (s Size) Contains(c Coordinate) bool {
	return c.IsValid(s.W, s.H)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}
