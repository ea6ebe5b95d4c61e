package valueobjects

import "fmt"

// Position is a value object for a 2-D canvas coordinate.
// Positions are derived by the layout engine and never stored.
type Position struct {
	x float64
	y float64
}

// NewPosition creates a position
func NewPosition(x, y float64) Position {
	return Position{x: x, y: y}
}

// X returns the horizontal coordinate
func (p Position) X() float64 {
	return p.x
}

// Y returns the vertical coordinate
func (p Position) Y() float64 {
	return p.y
}

// Equals checks exact coordinate equality. Connector path generation
// relies on this to detect coincident endpoints.
func (p Position) Equals(other Position) bool {
	return p.x == other.x && p.y == other.y
}

// String returns a printable representation
func (p Position) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.x, p.y)
}
