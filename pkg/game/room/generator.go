package room

import (
	"slices"

	"roomforge/pkg/engine/world"
)

// Rand is the random source used to pick exit walls
type Rand interface {
	Intn(n int) int
}

// Dungeon is a generated chain of rooms and the links between them
type Dungeon struct {
	Rooms       []*Room
	Connections Connections
}

// Room returns the room with the given id
func (d *Dungeon) Room(id int) (*Room, bool) {
	for _, r := range d.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Next resolves where walking through a door of a room leads
func (d *Dungeon) Next(roomID int, position world.Direction) (Link, bool) {
	return d.Connections.Lookup(roomID, position)
}

// ChainGenerator builds a linear sequence of rooms, each entered through the
// wall facing the previous room's exit
type ChainGenerator struct {
	cfg Config
	rng Rand

	roomsCreated int
}

// NewChainGenerator creates a generator for cfg drawing from rng
func NewChainGenerator(cfg Config, rng Rand) *ChainGenerator {
	return &ChainGenerator{cfg: cfg, rng: rng}
}

// Name returns the name of this generator
func (g *ChainGenerator) Name() string {
	return "Linear Chain"
}

// Generate builds a fresh chain. Room ids restart at zero on every call.
// The chain ends early, without error, when a room gets no exit.
func (g *ChainGenerator) Generate() (*Dungeon, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	g.roomsCreated = 0
	dungeon := &Dungeon{Connections: make(Connections)}

	current := g.buildRoom(nil)
	dungeon.Rooms = append(dungeon.Rooms, current)

	for len(dungeon.Rooms) < g.cfg.RoomCount {
		exit, ok := current.Exit()
		if !ok {
			break
		}

		entry := exit.Opposite()
		next := g.buildRoom(&entry)
		dungeon.Rooms = append(dungeon.Rooms, next)
		dungeon.Connections.Connect(current, exit, next)

		current = next
	}

	return dungeon, nil
}

// buildRoom creates the next room of the chain. entry is the wall of the
// entrance door, nil for the start room.
func (g *ChainGenerator) buildRoom(entry *world.Direction) *Room {
	width, height := g.cfg.TileDimensions()
	index := g.roomsCreated
	g.roomsCreated++

	r := newRoom(index, width, height)
	r.IsStart = index == 0
	r.IsFinal = index == g.cfg.RoomCount-1

	if entry != nil {
		r.Doors = append(r.Doors, carveDoor(r.Layout, *entry, g.cfg.DoorWidth, false))
	}

	// The final room is a dead end: entrance only
	if r.IsFinal {
		return r
	}

	sides := slices.DeleteFunc(slices.Clone(g.cfg.ExitSides), func(d world.Direction) bool {
		return entry != nil && d == *entry
	})
	sides = dedupe(sides)
	if len(sides) == 0 {
		return r
	}

	position := sides[g.rng.Intn(len(sides))]
	r.Doors = append(r.Doors, carveDoor(r.Layout, position, g.cfg.DoorWidth, true))
	return r
}

// dedupe drops repeated sides while keeping first-seen order, so a side
// listed twice is not drawn twice as often
func dedupe(sides []world.Direction) []world.Direction {
	out := sides[:0]
	for _, d := range sides {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}
