package room

import (
	"errors"
	"fmt"

	"roomforge/pkg/engine/world"
)

// ErrInvalidConfig is returned when a chain cannot be generated from the
// given configuration
var ErrInvalidConfig = errors.New("invalid room chain config")

// Config controls the shape of a generated chain
type Config struct {
	RoomCount   int // target number of rooms; the chain may stop short
	PixelWidth  int
	PixelHeight int
	TileSize    int // edge length of one tile in pixels
	DoorWidth   int

	// ExitSides are the walls an exit may be carved on. The wall holding the
	// entrance is always excluded.
	ExitSides []world.Direction
}

// DefaultConfig returns the standard ten-room run:
// 800x600 pixel rooms with 16 pixel tiles
func DefaultConfig() Config {
	return Config{
		RoomCount:   10,
		PixelWidth:  800,
		PixelHeight: 600,
		TileSize:    16,
		DoorWidth:   DefaultDoorWidth,
		ExitSides:   world.AllDirections(),
	}
}

// TileDimensions converts the pixel room size to whole tiles
func (c Config) TileDimensions() (width, height int) {
	if c.TileSize <= 0 {
		return 0, 0
	}
	return c.PixelWidth / c.TileSize, c.PixelHeight / c.TileSize
}

// Validate checks the config for values that cannot produce a room
func (c Config) Validate() error {
	if c.RoomCount < 1 {
		return fmt.Errorf("%w: room count %d, need at least 1", ErrInvalidConfig, c.RoomCount)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	}
	if c.DoorWidth < 1 {
		return fmt.Errorf("%w: door width %d", ErrInvalidConfig, c.DoorWidth)
	}
	w, h := c.TileDimensions()
	if w < 3 || h < 3 {
		return fmt.Errorf("%w: %dx%d pixels at tile size %d gives %dx%d tiles, need at least 3x3",
			ErrInvalidConfig, c.PixelWidth, c.PixelHeight, c.TileSize, w, h)
	}
	for _, d := range c.ExitSides {
		if !d.IsValid() {
			return fmt.Errorf("%w: exit side %d", ErrInvalidConfig, d)
		}
	}
	return nil
}
