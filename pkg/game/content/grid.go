package content

import (
	"github.com/zyedidia/generic/mapset"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/room"
)

// Stats records what a generation run did
type Stats struct {
	Target           int // obstacles the scatter pass aimed for
	Placed           int // obstacles the scatter pass placed
	Attempts         int
	MaxAttempts      int
	Clusters         int // cluster centers that were not on a path
	ClusterObstacles int
	PathCells        int
	UnreachedExits   int // exits the pathfinder could not reach
}

// Grid is the content layer of one room visit. It is rebuilt on every
// visit and never shared between rooms.
type Grid struct {
	Cells     *world.Grid[Cell]
	Doors     []room.Door
	TileSize  int
	Style     string
	Obstacles []*Obstacle
	Stats     Stats
}

// Width returns the grid width in tiles
func (g *Grid) Width() int {
	return g.Cells.Width()
}

// Height returns the grid height in tiles
func (g *Grid) Height() int {
	return g.Cells.Height()
}

// At returns the cell at p
func (g *Grid) At(p world.Point) Cell {
	return g.Cells.Get(p)
}

// ToPixels returns the top-left pixel of tile p
func (g *Grid) ToPixels(p world.Point) (x, y int) {
	return p.X * g.TileSize, p.Y * g.TileSize
}

// PathCells returns every cell flagged as part of a guaranteed path
func (g *Grid) PathCells() []world.Point {
	var cells []world.Point
	g.Cells.ForEach(func(p world.Point, c Cell) {
		if c.IsPath {
			cells = append(cells, p)
		}
	})
	return cells
}

// Unreachable returns the doors whose central tile cannot be reached from
// the room center over walkable cells
func (g *Grid) Unreachable() []room.Door {
	center := g.Cells.Center()
	visited := mapset.New[world.Point]()
	var queue []world.Point
	if g.Cells.Get(center).Walkable() {
		visited.Put(center)
		queue = append(queue, center)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			next := dir.Step(current)
			if !g.Cells.InBounds(next) || visited.Has(next) || !g.Cells.Get(next).Walkable() {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	var unreachable []room.Door
	for _, d := range g.Doors {
		if !visited.Has(d.Central) {
			unreachable = append(unreachable, d)
		}
	}
	return unreachable
}
