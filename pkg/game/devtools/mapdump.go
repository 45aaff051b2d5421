// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/content"
	"roomforge/pkg/game/level"
	"roomforge/pkg/game/room"
)

// DefaultDumpFilename is the file DumpToFile writes when given no path
const DefaultDumpFilename = "level.txt"

var (
	colorWall  = color.Style{color.FgGray}
	colorDoor  = color.Style{color.FgYellow, color.OpBold}
	colorExit  = color.Style{color.FgGreen, color.OpBold}
	colorPath  = color.Style{color.FgCyan}
	colorTitle = color.Style{color.FgMagenta, color.OpBold}
	colorActor = color.Style{color.FgLightWhite, color.OpBold}
)

// DumpOptions controls what Dump writes
type DumpOptions struct {
	// Color wraps map symbols in terminal color codes
	Color bool
	// Content loads every room to overlay its content. Loading regenerates
	// content and leaves the last room current. Without it only the current
	// room gets an overlay.
	Content bool
}

// cellSymbol returns the map symbol for a structural tile with an optional
// content cell on top
func cellSymbol(tile room.Tile, c *content.Cell) rune {
	if c != nil {
		switch {
		case c.Kind == content.Blocked && c.Obstacle != nil && c.Obstacle.Type != nil:
			return obstacleSymbol(c.Obstacle.Type)
		case c.IsPath && tile == room.TileFloor:
			return '*'
		}
	}
	return tile.Symbol()
}

func obstacleSymbol(t *content.ObstacleType) rune {
	if t.ID == "" {
		return '?'
	}
	return []rune(t.ID)[0]
}

func paint(sym rune, tile room.Tile, c *content.Cell, colored bool) string {
	s := string(sym)
	if !colored {
		return s
	}
	switch {
	case c != nil && c.Kind == content.Blocked && c.Obstacle != nil && c.Obstacle.Type != nil:
		return color.HEX(c.Obstacle.Type.HexColor()).Sprint(s)
	case tile == room.TileWall:
		return colorWall.Sprint(s)
	case tile == room.TileDoor:
		return colorDoor.Sprint(s)
	case tile == room.TileExit:
		return colorExit.Sprint(s)
	case sym == '*':
		return colorPath.Sprint(s)
	default:
		return s
	}
}

// writeRoomMap writes the structural layout of r with the content overlay
// and, when marker is set, '@' on that tile
func writeRoomMap(w io.Writer, r *room.Room, grid *content.Grid, marker *world.Point, colored bool) {
	for y := 0; y < r.Height; y++ {
		var line strings.Builder
		for x := 0; x < r.Width; x++ {
			p := world.Pt(x, y)
			if marker != nil && p == *marker {
				line.WriteString(paintMarker(colored))
				continue
			}
			tile := r.Layout.Get(p)
			var c *content.Cell
			if grid != nil {
				cell := grid.At(p)
				c = &cell
			}
			line.WriteString(paint(cellSymbol(tile, c), tile, c, colored))
		}
		fmt.Fprintln(w, line.String())
	}
}

func paintMarker(colored bool) string {
	if colored {
		return colorActor.Sprint("@")
	}
	return "@"
}

func title(key string, colored bool) string {
	var s string
	switch key {
	case "DUMP_TITLE":
		s = gotext.Get("DUMP_TITLE")
	case "DUMP_METADATA":
		s = gotext.Get("DUMP_METADATA")
	case "DUMP_LEGEND":
		s = gotext.Get("DUMP_LEGEND")
	case "DUMP_ROOM":
		s = gotext.Get("DUMP_ROOM")
	case "DUMP_CONNECTIONS":
		s = gotext.Get("DUMP_CONNECTIONS")
	case "DUMP_END":
		s = gotext.Get("DUMP_END")
	default:
		s = key
	}
	if colored {
		return colorTitle.Sprint(s)
	}
	return s
}

// Dump writes a sectioned debug description of the level: metadata,
// legend, every room with its doors, stats and map, and the connections.
// Format is key: value lines so it stays greppable.
func Dump(out io.Writer, lvl *level.Level, opts DumpOptions) error {
	w := bufio.NewWriter(out)
	cfg := lvl.Config()
	rooms := lvl.Rooms()
	tilesW, tilesH := cfg.Chain.TileDimensions()

	currentID := -1
	if cur := lvl.Current(); cur != nil {
		currentID = cur.Room.ID
	}

	fmt.Fprintf(w, "=== %s ===\n\n", title("DUMP_TITLE", opts.Color))

	fmt.Fprintf(w, "--- %s ---\n", title("DUMP_METADATA", opts.Color))
	fmt.Fprintf(w, "seed: %d\n", lvl.Seed())
	fmt.Fprintf(w, "rooms: %d\n", len(rooms))
	fmt.Fprintf(w, "target_rooms: %d\n", cfg.Chain.RoomCount)
	fmt.Fprintf(w, "room_tiles: %dx%d\n", tilesW, tilesH)
	fmt.Fprintf(w, "tile_size: %d\n", cfg.Chain.TileSize)
	fmt.Fprintf(w, "connections: %d\n", lvl.Dungeon().Connections.Len())
	fmt.Fprintf(w, "current_room: %d\n", currentID)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "--- %s ---\n", title("DUMP_LEGEND", opts.Color))
	fmt.Fprintln(w, "# = wall  + = door  E = exit  . = floor  * = guaranteed path  letter = obstacle (first letter of type id)")
	fmt.Fprintln(w)

	for i, r := range rooms {
		var grid *content.Grid
		var style string
		switch {
		case opts.Content:
			loaded, err := lvl.Load(r.ID)
			if err != nil {
				return err
			}
			grid, style = loaded.Content, loaded.Style
		case r.ID == currentID:
			grid, style = lvl.Current().Content, lvl.Current().Style
		default:
			style = lvl.StyleFor(i)
		}

		fmt.Fprintf(w, "--- %s %d ---\n", title("DUMP_ROOM", opts.Color), r.ID)
		fmt.Fprintf(w, "index: %d\n", i)
		fmt.Fprintf(w, "style: %s\n", style)
		fmt.Fprintf(w, "is_start: %v\n", r.IsStart)
		fmt.Fprintf(w, "is_final: %v\n", r.IsFinal)
		for _, d := range r.Doors {
			writeDoor(w, lvl, r, d)
		}
		if grid != nil {
			writeContentStats(w, grid)
		}
		writeRoomMap(w, r, grid, nil, opts.Color)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "--- %s ---\n", title("DUMP_CONNECTIONS", opts.Color))
	writeConnections(w, lvl.Dungeon().Connections)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "=== %s ===\n", title("DUMP_END", opts.Color))
	return w.Flush()
}

func writeDoor(w io.Writer, lvl *level.Level, r *room.Room, d room.Door) {
	tiles := make([]string, len(d.Tiles))
	for i, p := range d.Tiles {
		tiles[i] = p.String()
	}
	leadsTo := "none"
	if link, ok := lvl.Dungeon().Next(r.ID, d.Position); ok {
		leadsTo = fmt.Sprintf("room %d %v", link.RoomID, link.Door)
	}
	fmt.Fprintf(w, "door: position: %v exit: %v central: %v tiles: %s leads_to: %s\n",
		d.Position, d.IsExit, d.Central, strings.Join(tiles, " "), leadsTo)
}

func writeContentStats(w io.Writer, grid *content.Grid) {
	s := grid.Stats
	fmt.Fprintf(w, "obstacles: %d target: %d placed: %d attempts: %d max_attempts: %d clusters: %d cluster_obstacles: %d path_cells: %d unreached_exits: %d\n",
		len(grid.Obstacles), s.Target, s.Placed, s.Attempts, s.MaxAttempts, s.Clusters, s.ClusterObstacles, s.PathCells, s.UnreachedExits)

	counts := make(map[*content.ObstacleType]int)
	for _, o := range grid.Obstacles {
		counts[o.Type]++
	}
	types := make([]*content.ObstacleType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b *content.ObstacleType) int { return cmp.Compare(a.ID, b.ID) })
	for _, t := range types {
		fmt.Fprintf(w, "obstacle_type: %s name: %q color: %s deadly: %v count: %d\n",
			t.ID, t.DisplayName(), t.HexColor(), t.Deadly, counts[t])
	}

	for _, d := range grid.Unreachable() {
		fmt.Fprintf(w, "unreachable_door: position: %v exit: %v central: %v\n", d.Position, d.IsExit, d.Central)
	}
}

func writeConnections(w io.Writer, c room.Connections) {
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		for _, dir := range world.AllDirections() {
			if link, ok := c.Lookup(id, dir); ok {
				fmt.Fprintf(w, "room: %d door: %v -> room: %d door: %v\n", id, dir, link.RoomID, link.Door)
			}
		}
	}
}

// WriteRoom writes a single loaded room: a one-line header, its doors and
// the map with the content overlay and '@' on spawn
func WriteRoom(out io.Writer, lvl *level.Level, loaded *level.Loaded, spawn world.Point, colored bool) error {
	w := bufio.NewWriter(out)
	r := loaded.Room
	fmt.Fprintf(w, "%s %d/%d  style: %s  obstacles: %d  position: %v\n",
		title("DUMP_ROOM", colored), loaded.Index+1, len(lvl.Rooms()), loaded.Style, len(loaded.Content.Obstacles), spawn)
	for _, d := range r.Doors {
		writeDoor(w, lvl, r, d)
	}
	writeRoomMap(w, r, loaded.Content, &spawn, colored)
	return w.Flush()
}

// DumpToFile writes Dump output to path (DefaultDumpFilename when empty)
// and returns the absolute path written
func DumpToFile(path string, lvl *level.Level, opts DumpOptions) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Dump(f, lvl, opts); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
