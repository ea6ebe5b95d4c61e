package queries

import "errors"

// GetLayoutQuery requests deterministic node positions and connector
// paths for a canvas of the given size.
type GetLayoutQuery struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate validates the query
func (q GetLayoutQuery) Validate() error {
	if q.Width <= 0 || q.Height <= 0 {
		return errors.New("canvas dimensions must be positive")
	}
	return nil
}

// LayoutNode is a feature node placed on the ring
type LayoutNode struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Connector is the curved path drawn for one dependency
type Connector struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
	Color    string  `json:"color"`
	Path     string  `json:"path"`
}

// GetLayoutResult contains the positioned graph for one canvas size
type GetLayoutResult struct {
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Nodes      []LayoutNode `json:"nodes"`
	Connectors []Connector  `json:"connectors"`
}
