// Package level ties a generated room chain to per-visit content
// generation: it picks a style for each room, regenerates room content on
// every load and resolves where the player arrives after using a door.
package level

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/content"
	"roomforge/pkg/game/room"
)

// DefaultSpawnInset is how many tiles inside a door the player arrives
const DefaultSpawnInset = 2

var (
	// ErrUnknownRoom is returned for room ids not in the dungeon
	ErrUnknownRoom = errors.New("unknown room")
	// ErrNoConnection is returned when a door leads nowhere
	ErrNoConnection = errors.New("no connection through door")
)

// Config holds everything needed to build a level
type Config struct {
	Chain   room.Config
	Content content.Config

	// StyleSequence assigns styles by room order, wrapping around
	StyleSequence []string
	SpawnInset    int
	Seed          int64 // 0 picks a time-based seed
}

// DefaultConfig returns the default chain and content settings with the
// four built-in styles in rotation
func DefaultConfig() Config {
	return Config{
		Chain:         room.DefaultConfig(),
		Content:       content.DefaultConfig(),
		StyleSequence: []string{"standard", "flooded", "volcanic", "forest"},
		SpawnInset:    DefaultSpawnInset,
	}
}

// Loaded is the room currently in play together with its content grid
type Loaded struct {
	Room    *room.Room
	Index   int
	Style   string
	Content *content.Grid
}

// Level is one generated dungeon session
type Level struct {
	cfg     Config
	seed    int64
	dungeon *room.Dungeon
	content *content.Generator
	current *Loaded
}

// New generates the room chain for cfg. The same seed, config, catalog and
// styles always produce the same chain and, visit for visit, the same
// content.
func New(cfg Config, catalog content.Catalog, styles content.Styles, logger *log.Logger) (*Level, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dungeon, err := room.NewChainGenerator(cfg.Chain, rng).Generate()
	if err != nil {
		return nil, fmt.Errorf("generate room chain: %w", err)
	}

	gen, err := content.NewGenerator(cfg.Content, catalog, styles, rng, logger)
	if err != nil {
		return nil, fmt.Errorf("create content generator: %w", err)
	}

	return &Level{
		cfg:     cfg,
		seed:    seed,
		dungeon: dungeon,
		content: gen,
	}, nil
}

// Seed returns the seed the level was generated from
func (l *Level) Seed() int64 {
	return l.seed
}

// Config returns the level configuration
func (l *Level) Config() Config {
	return l.cfg
}

// Dungeon returns the structural room chain
func (l *Level) Dungeon() *room.Dungeon {
	return l.dungeon
}

// Rooms returns the rooms in chain order
func (l *Level) Rooms() []*room.Room {
	return l.dungeon.Rooms
}

// Current returns the loaded room, or nil before the first load
func (l *Level) Current() *Loaded {
	return l.current
}

// StyleFor returns the style for the room at the given chain position
func (l *Level) StyleFor(index int) string {
	seq := l.cfg.StyleSequence
	if len(seq) == 0 || index < 0 {
		return content.DefaultStyle
	}
	return seq[index%len(seq)]
}

// Load generates fresh content for a room and makes it the current room.
// The previously loaded content is dropped.
func (l *Level) Load(roomID int) (*Loaded, error) {
	index := -1
	for i, r := range l.dungeon.Rooms {
		if r.ID == roomID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRoom, roomID)
	}

	r := l.dungeon.Rooms[index]
	style := l.StyleFor(index)
	l.current = &Loaded{
		Room:    r,
		Index:   index,
		Style:   style,
		Content: l.content.GenerateRoom(r, l.cfg.Chain.TileSize, style),
	}
	return l.current, nil
}

// Start loads the first room and returns the player's start tile, the room
// center
func (l *Level) Start() (*Loaded, world.Point, error) {
	loaded, err := l.Load(l.dungeon.Rooms[0].ID)
	if err != nil {
		return nil, world.Point{}, err
	}
	return loaded, loaded.Room.Center(), nil
}

// Traverse walks through the door on the given wall of a room, loads the
// room on the other side and returns the tile the player arrives on
func (l *Level) Traverse(roomID int, position world.Direction) (*Loaded, world.Point, error) {
	link, ok := l.dungeon.Next(roomID, position)
	if !ok {
		return nil, world.Point{}, fmt.Errorf("%w: room %d %v", ErrNoConnection, roomID, position)
	}

	loaded, err := l.Load(link.RoomID)
	if err != nil {
		return nil, world.Point{}, err
	}
	return loaded, l.ArrivalPoint(loaded.Room, link.Door), nil
}

// ArrivalPoint returns the tile just inside the door on the given wall, or
// the room center when the room has no door there
func (l *Level) ArrivalPoint(r *room.Room, position world.Direction) world.Point {
	d, ok := r.DoorAt(position)
	if !ok {
		return r.Center()
	}
	return d.SpawnPoint(l.cfg.SpawnInset)
}
