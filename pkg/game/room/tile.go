// Package room builds the structural layer of a dungeon: a linear chain of
// walled rooms joined by directional doors.
package room

// Tile is the structural kind of a room layout cell
type Tile int

// Tile constants
const (
	TileFloor Tile = iota
	TileWall
	TileDoor
	TileExit
)

// String returns the string representation of a tile
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "FLOOR"
	case TileWall:
		return "WALL"
	case TileDoor:
		return "DOOR"
	case TileExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the single-character map symbol for a tile
func (t Tile) Symbol() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileDoor:
		return '+'
	case TileExit:
		return 'E'
	default:
		return '?'
	}
}

// IsOpening returns true for door and exit tiles
func (t Tile) IsOpening() bool {
	return t == TileDoor || t == TileExit
}
