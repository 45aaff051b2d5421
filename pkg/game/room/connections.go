package room

import (
	"roomforge/pkg/engine/world"
)

// Link is the far side of a door: the room it leads to and the door of
// that room the traveller arrives through
type Link struct {
	RoomID int
	Door   world.Direction
}

// Connections maps a room id and door orientation to the linked room/door.
// Every link is stored in both directions.
type Connections map[int]map[world.Direction]Link

// Connect records that a's exit leads into b through the opposite wall, and
// the reverse
func (c Connections) Connect(a *Room, exit Door, b *Room) {
	c.set(a.ID, exit.Position, Link{RoomID: b.ID, Door: exit.Opposite()})
	c.set(b.ID, exit.Opposite(), Link{RoomID: a.ID, Door: exit.Position})
}

func (c Connections) set(roomID int, position world.Direction, link Link) {
	doors, ok := c[roomID]
	if !ok {
		doors = make(map[world.Direction]Link)
		c[roomID] = doors
	}
	doors[position] = link
}

// Lookup returns where walking through the given door of the given room
// leads. ok is false for unknown rooms and unlinked doors.
func (c Connections) Lookup(roomID int, position world.Direction) (Link, bool) {
	doors, ok := c[roomID]
	if !ok {
		return Link{}, false
	}
	link, ok := doors[position]
	return link, ok
}

// Len returns the number of links, counting each bidirectional pair once
func (c Connections) Len() int {
	n := 0
	for _, doors := range c {
		n += len(doors)
	}
	return n / 2
}
