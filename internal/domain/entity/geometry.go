// Package entity defines domain entities for the canvas clipboard.
package entity

// Position is a point in canvas space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from o to p.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Offset returns p moved by delta on both axes.
// Used to stagger cards that would otherwise stack on the same spot.
func (p Position) Offset(delta float64) Position {
	return Position{X: p.X + delta, Y: p.Y + delta}
}

// Before reports whether p comes before o in reading order:
// top to bottom, then left to right.
func (p Position) Before(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}
