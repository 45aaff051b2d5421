package content

import (
	"roomforge/pkg/engine/world"
)

// CellKind is the kind of a content grid cell
type CellKind int

// CellKind constants
const (
	Void CellKind = iota // structural wall ring, never usable
	Floor
	Blocked // covered by an obstacle
)

// Obstacle is one placed obstacle footprint
type Obstacle struct {
	ID      int
	Type    *ObstacleType
	Origin  world.Point // top-left cell
	Width   int
	Height  int
	Cluster bool // placed by the cluster pass
}

// Cells returns every cell covered by the obstacle
func (o *Obstacle) Cells() []world.Point {
	cells := make([]world.Point, 0, o.Width*o.Height)
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < o.Width; dx++ {
			cells = append(cells, world.Pt(o.Origin.X+dx, o.Origin.Y+dy))
		}
	}
	return cells
}

// Cell is one content grid cell
type Cell struct {
	Kind     CellKind
	IsPath   bool // on or near a guaranteed path; never receives obstacles
	IsDoor   bool // doorway in the wall ring
	Obstacle *Obstacle
}

// Walkable returns true if actors can stand on the cell
func (c Cell) Walkable() bool {
	switch c.Kind {
	case Floor:
		return true
	case Blocked:
		return c.Obstacle != nil && c.Obstacle.Type != nil && c.Obstacle.Type.Walkable
	default:
		return false
	}
}

// isPlainFloor returns true for interior floor with nothing on it
func (c Cell) isPlainFloor() bool {
	return c.Kind == Floor && !c.IsDoor
}
