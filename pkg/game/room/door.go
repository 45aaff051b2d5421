package room

import (
	"slices"

	"roomforge/pkg/engine/world"
)

// DefaultDoorWidth is the number of tiles in a door run
const DefaultDoorWidth = 3

// Door is a straight run of opening tiles on one wall of a room
type Door struct {
	Position world.Direction
	Tiles    []world.Point
	Central  world.Point // middle tile of the run, used to place arrivals
	IsExit   bool
}

// Opposite returns the orientation of the door this one pairs with
func (d Door) Opposite() world.Direction {
	return d.Position.Opposite()
}

// Contains returns true if p is one of the door's tiles
func (d Door) Contains(p world.Point) bool {
	return slices.Contains(d.Tiles, p)
}

// SpawnPoint returns the central tile moved inset tiles into the room
func (d Door) SpawnPoint(inset int) world.Point {
	dx, dy := d.Position.Opposite().Delta()
	return world.Point{X: d.Central.X + dx*inset, Y: d.Central.Y + dy*inset}
}

// carveDoor stamps a door run onto the layout. The run is centered on the
// wall midpoint and clipped so it never covers a corner; walls shorter than
// the door width get a narrower run.
func carveDoor(layout *world.Grid[Tile], position world.Direction, width int, isExit bool) Door {
	w, h := layout.Width(), layout.Height()

	length := w
	if position == world.East || position == world.West {
		length = h
	}
	run := min(width, length-2)
	start := length/2 - run/2
	start = max(1, min(start, length-1-run))

	kind := TileDoor
	if isExit {
		kind = TileExit
	}

	door := Door{Position: position, IsExit: isExit}
	for i := 0; i < run; i++ {
		var p world.Point
		switch position {
		case world.North:
			p = world.Pt(start+i, 0)
		case world.East:
			p = world.Pt(w-1, start+i)
		case world.South:
			p = world.Pt(start+i, h-1)
		case world.West:
			p = world.Pt(0, start+i)
		}
		layout.Set(p, kind)
		door.Tiles = append(door.Tiles, p)
	}
	door.Central = door.Tiles[len(door.Tiles)/2]
	return door
}
