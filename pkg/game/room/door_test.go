package room

import (
	"testing"

	"roomforge/pkg/engine/world"
)

func TestCarveDoor_CenteredRuns(t *testing.T) {
	cases := []struct {
		position world.Direction
		tiles    []world.Point
	}{
		{world.North, []world.Point{world.Pt(5, 0), world.Pt(6, 0), world.Pt(7, 0)}},
		{world.East, []world.Point{world.Pt(11, 4), world.Pt(11, 5), world.Pt(11, 6)}},
		{world.South, []world.Point{world.Pt(5, 9), world.Pt(6, 9), world.Pt(7, 9)}},
		{world.West, []world.Point{world.Pt(0, 4), world.Pt(0, 5), world.Pt(0, 6)}},
	}
	for _, c := range cases {
		t.Run(c.position.String(), func(t *testing.T) {
			r := newRoom(0, 12, 10)
			d := carveDoor(r.Layout, c.position, DefaultDoorWidth, true)
			if len(d.Tiles) != len(c.tiles) {
				t.Fatalf("Tiles = %v, want %v", d.Tiles, c.tiles)
			}
			for i, p := range c.tiles {
				if d.Tiles[i] != p {
					t.Errorf("Tiles = %v, want %v", d.Tiles, c.tiles)
					break
				}
				if got := r.Layout.Get(p); got != TileExit {
					t.Errorf("layout %v = %v, want EXIT", p, got)
				}
			}
			if d.Central != c.tiles[1] {
				t.Errorf("Central = %v, want %v", d.Central, c.tiles[1])
			}
			if d.Opposite() != c.position.Opposite() {
				t.Errorf("Opposite() = %v, want %v", d.Opposite(), c.position.Opposite())
			}
		})
	}
}

func TestCarveDoor_EntranceUsesDoorTile(t *testing.T) {
	r := newRoom(0, 8, 8)
	d := carveDoor(r.Layout, world.West, DefaultDoorWidth, false)
	for _, p := range d.Tiles {
		if got := r.Layout.Get(p); got != TileDoor {
			t.Errorf("layout %v = %v, want DOOR", p, got)
		}
	}
	if d.IsExit {
		t.Error("entrance door IsExit = true")
	}
}

func TestCarveDoor_ClippedOnShortWall(t *testing.T) {
	r := newRoom(0, 4, 3)
	d := carveDoor(r.Layout, world.North, DefaultDoorWidth, true)
	if len(d.Tiles) != 2 {
		t.Fatalf("Tiles = %v, want 2 tiles on a 4-wide wall", d.Tiles)
	}
	for _, p := range d.Tiles {
		if p.X == 0 || p.X == 3 {
			t.Errorf("door tile %v covers a corner", p)
		}
	}

	r = newRoom(0, 3, 3)
	d = carveDoor(r.Layout, world.East, DefaultDoorWidth, true)
	if len(d.Tiles) != 1 || d.Tiles[0] != world.Pt(2, 1) {
		t.Errorf("Tiles on a 3-tall wall = %v, want [2,1]", d.Tiles)
	}
}

func TestCarveDoor_TilesAdjacentOnOneEdge(t *testing.T) {
	r := newRoom(0, 20, 15)
	for _, pos := range world.AllDirections() {
		d := carveDoor(r.Layout, pos, 5, false)
		for i, p := range d.Tiles {
			if !r.Layout.IsOnPerimeter(p) {
				t.Errorf("%v door tile %v is not on the perimeter", pos, p)
			}
			if i > 0 && d.Tiles[i-1].Manhattan(p) != 1 {
				t.Errorf("%v door tiles %v and %v are not adjacent", pos, d.Tiles[i-1], p)
			}
		}
	}
}

func TestDoor_SpawnPointMovesInward(t *testing.T) {
	r := newRoom(0, 12, 12)
	want := map[world.Direction]world.Point{
		world.North: world.Pt(6, 2),
		world.East:  world.Pt(9, 6),
		world.South: world.Pt(6, 9),
		world.West:  world.Pt(2, 6),
	}
	for pos, p := range want {
		d := carveDoor(r.Layout, pos, DefaultDoorWidth, false)
		if got := d.SpawnPoint(2); got != p {
			t.Errorf("%v SpawnPoint(2) = %v, want %v", pos, got, p)
		}
		if !d.Contains(d.Central) {
			t.Errorf("%v door does not contain its central tile", pos)
		}
	}
}

func TestConnections_LookupUnknown(t *testing.T) {
	c := make(Connections)
	if _, ok := c.Lookup(0, world.North); ok {
		t.Error("Lookup on empty connections found a link")
	}
	a, b := newRoom(0, 5, 5), newRoom(1, 5, 5)
	exit := carveDoor(a.Layout, world.East, DefaultDoorWidth, true)
	c.Connect(a, exit, b)
	if link, ok := c.Lookup(0, world.East); !ok || link != (Link{RoomID: 1, Door: world.West}) {
		t.Errorf("Lookup(0, East) = %+v, %v; want {1 West}, true", link, ok)
	}
	if link, ok := c.Lookup(1, world.West); !ok || link != (Link{RoomID: 0, Door: world.East}) {
		t.Errorf("Lookup(1, West) = %+v, %v; want {0 East}, true", link, ok)
	}
	if _, ok := c.Lookup(0, world.South); ok {
		t.Error("Lookup(0, South) found a link on an unlinked wall")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
