package services

import (
	"fmt"
	"math"

	"evograph/domain/config"
	"evograph/domain/core/aggregates"
	"evograph/domain/core/entities"
	"evograph/domain/core/valueobjects"
)

// PositionedNode is a feature node placed on the canvas. Positions are
// derived per request and never stored.
type PositionedNode struct {
	Node     *entities.FeatureNode
	Position valueobjects.Position
}

// RingLayout places nodes evenly on a circle, first node at twelve
// o'clock, proceeding clockwise in input order.
type RingLayout struct {
	radiusFactor float64
	curveOffset  float64
}

// NewRingLayout creates a layout engine from the analysis configuration
func NewRingLayout(cfg *config.AnalysisConfig) *RingLayout {
	return &RingLayout{
		radiusFactor: cfg.RingRadiusFactor,
		curveOffset:  cfg.CurveOffset,
	}
}

// Arrange positions every node of the graph on a ring centered in the
// canvas. Node k of n sits at angle (k/n)*2pi - pi/2 with radius
// radiusFactor*min(width, height). An empty graph yields an empty slice.
func (l *RingLayout) Arrange(graph *aggregates.DependencyGraph, width, height float64) []PositionedNode {
	nodes := graph.Nodes()
	positioned := make([]PositionedNode, 0, len(nodes))
	if len(nodes) == 0 {
		return positioned
	}

	centerX := width / 2
	centerY := height / 2
	radius := l.radiusFactor * math.Min(width, height)
	total := float64(len(nodes))

	for k, node := range nodes {
		angle := (float64(k)/total)*2*math.Pi - math.Pi/2
		positioned = append(positioned, PositionedNode{
			Node: node,
			Position: valueobjects.NewPosition(
				centerX+radius*math.Cos(angle),
				centerY+radius*math.Sin(angle),
			),
		})
	}

	return positioned
}

// ConnectorPath renders the SVG path for an edge between two placed
// nodes: a quadratic curve whose control point sits curveOffset units to
// the left of the midpoint (perpendicular to the connecting line).
// Coincident endpoints degrade to a bare move-to. Coordinates are fixed
// to one decimal so identical input produces byte-identical paths.
func (l *RingLayout) ConnectorPath(from, to valueobjects.Position) string {
	if from.Equals(to) {
		return fmt.Sprintf("M %.1f %.1f", from.X(), from.Y())
	}

	dx := to.X() - from.X()
	dy := to.Y() - from.Y()
	length := math.Hypot(dx, dy)

	controlX := (from.X()+to.X())/2 + l.curveOffset*(-dy/length)
	controlY := (from.Y()+to.Y())/2 + l.curveOffset*(dx/length)

	return fmt.Sprintf("M %.1f %.1f Q %.1f %.1f %.1f %.1f",
		from.X(), from.Y(), controlX, controlY, to.X(), to.Y())
}
