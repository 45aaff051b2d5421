package room

import (
	"roomforge/pkg/engine/world"
)

// Room is one structural room of a dungeon chain. Layout cells on the
// perimeter are walls except where a door run was carved.
type Room struct {
	ID      int
	Layout  *world.Grid[Tile]
	Width   int
	Height  int
	Doors   []Door
	IsStart bool
	IsFinal bool
}

// newRoom stamps the wall ring and floor interior of a width x height room
func newRoom(id, width, height int) *Room {
	layout := world.NewGrid(width, height, TileFloor)
	layout.ForEach(func(p world.Point, _ Tile) {
		if layout.IsOnPerimeter(p) {
			layout.Set(p, TileWall)
		}
	})

	return &Room{
		ID:     id,
		Layout: layout,
		Width:  width,
		Height: height,
	}
}

// Center returns the geometric center tile of the room
func (r *Room) Center() world.Point {
	return world.Point{X: r.Width / 2, Y: r.Height / 2}
}

// DoorAt returns the door on the given wall
func (r *Room) DoorAt(position world.Direction) (Door, bool) {
	for _, d := range r.Doors {
		if d.Position == position {
			return d, true
		}
	}
	return Door{}, false
}

// Exit returns the room's exit door, if it has one
func (r *Room) Exit() (Door, bool) {
	for _, d := range r.Doors {
		if d.IsExit {
			return d, true
		}
	}
	return Door{}, false
}

// Entrance returns the room's entrance door, if it has one
func (r *Room) Entrance() (Door, bool) {
	for _, d := range r.Doors {
		if !d.IsExit {
			return d, true
		}
	}
	return Door{}, false
}

// ExitDoors returns all doors flagged as exits
func (r *Room) ExitDoors() []Door {
	var exits []Door
	for _, d := range r.Doors {
		if d.IsExit {
			exits = append(exits, d)
		}
	}
	return exits
}

// EntranceDoors returns all doors that are not exits
func (r *Room) EntranceDoors() []Door {
	var entrances []Door
	for _, d := range r.Doors {
		if !d.IsExit {
			entrances = append(entrances, d)
		}
	}
	return entrances
}
