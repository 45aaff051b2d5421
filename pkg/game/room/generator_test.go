package room

import (
	"errors"
	"math/rand"
	"testing"

	"roomforge/pkg/engine/world"
)

func generateChain(t *testing.T, cfg Config, seed int64) *Dungeon {
	t.Helper()
	d, err := NewChainGenerator(cfg, rand.New(rand.NewSource(seed))).Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return d
}

func TestChainGenerate_TenRooms(t *testing.T) {
	d := generateChain(t, DefaultConfig(), 1)

	if len(d.Rooms) != 10 {
		t.Fatalf("len(Rooms) = %d, want 10", len(d.Rooms))
	}
	if !d.Rooms[0].IsStart {
		t.Error("room 0 IsStart = false, want true")
	}
	if !d.Rooms[9].IsFinal {
		t.Error("room 9 IsFinal = false, want true")
	}
	for i, r := range d.Rooms {
		if r.ID != i {
			t.Errorf("room %d has ID %d, want monotonic ids", i, r.ID)
		}
		if i > 0 && r.IsStart {
			t.Errorf("room %d IsStart = true", i)
		}
		if i < 9 && r.IsFinal {
			t.Errorf("room %d IsFinal = true", i)
		}
	}
	if got := d.Connections.Len(); got != 9 {
		t.Errorf("Connections.Len() = %d, want 9", got)
	}
}

func TestChainGenerate_TileDimensions(t *testing.T) {
	d := generateChain(t, DefaultConfig(), 2)
	for _, r := range d.Rooms {
		if r.Width != 50 || r.Height != 37 {
			t.Errorf("room %d is %dx%d tiles, want 50x37 (800x600 / 16)", r.ID, r.Width, r.Height)
		}
		if r.Layout.Width() != r.Width || r.Layout.Height() != r.Height {
			t.Errorf("room %d layout is %dx%d, want %dx%d", r.ID, r.Layout.Width(), r.Layout.Height(), r.Width, r.Height)
		}
	}
}

func TestChainGenerate_PerimeterAndInteriorTiles(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		d := generateChain(t, DefaultConfig(), seed)
		for _, r := range d.Rooms {
			r.Layout.ForEach(func(p world.Point, tile Tile) {
				if r.Layout.IsOnPerimeter(p) {
					if tile == TileFloor {
						t.Errorf("seed %d room %d: perimeter cell %v is FLOOR", seed, r.ID, p)
					}
					return
				}
				if tile != TileFloor {
					t.Errorf("seed %d room %d: interior cell %v is %v, want FLOOR", seed, r.ID, p, tile)
				}
			})
		}
	}
}

func TestChainGenerate_DoorCounts(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		d := generateChain(t, DefaultConfig(), seed)
		for _, r := range d.Rooms {
			exits := len(r.ExitDoors())
			entrances := len(r.EntranceDoors())
			switch {
			case r.IsFinal:
				if exits != 0 || entrances != 1 {
					t.Errorf("seed %d final room %d: %d exits %d entrances, want 0 and 1", seed, r.ID, exits, entrances)
				}
			case r.IsStart:
				if exits != 1 || entrances != 0 {
					t.Errorf("seed %d start room: %d exits %d entrances, want 1 and 0", seed, exits, entrances)
				}
			default:
				if exits != 1 || entrances != 1 {
					t.Errorf("seed %d room %d: %d exits %d entrances, want 1 and 1", seed, r.ID, exits, entrances)
				}
			}
		}
	}
}

func TestChainGenerate_ExitNeverOnEntranceWall(t *testing.T) {
	sawOpposite := false
	for seed := int64(0); seed < 20; seed++ {
		d := generateChain(t, DefaultConfig(), seed)
		for _, r := range d.Rooms {
			entrance, hasEntrance := r.Entrance()
			exit, hasExit := r.Exit()
			if !hasEntrance || !hasExit {
				continue
			}
			if entrance.Position == exit.Position {
				t.Errorf("seed %d room %d: exit shares the entrance wall %v", seed, r.ID, exit.Position)
			}
			if entrance.Position.Opposite() == exit.Position {
				sawOpposite = true
			}
		}
	}
	if !sawOpposite {
		t.Error("no room across 20 seeds had its exit opposite its entrance; straight runs must be legal")
	}
}

func TestChainGenerate_EntranceFacesPreviousExit(t *testing.T) {
	d := generateChain(t, DefaultConfig(), 3)
	for i := 1; i < len(d.Rooms); i++ {
		prevExit, ok := d.Rooms[i-1].Exit()
		if !ok {
			t.Fatalf("room %d has no exit", i-1)
		}
		entrance, ok := d.Rooms[i].Entrance()
		if !ok {
			t.Fatalf("room %d has no entrance", i)
		}
		if entrance.Position != prevExit.Opposite() {
			t.Errorf("room %d entrance %v, want %v (opposite of previous exit %v)", i, entrance.Position, prevExit.Opposite(), prevExit.Position)
		}
	}
}

func TestChainGenerate_ConnectionsSymmetric(t *testing.T) {
	d := generateChain(t, DefaultConfig(), 4)
	for roomID, doors := range d.Connections {
		for position, link := range doors {
			back, ok := d.Connections.Lookup(link.RoomID, link.Door)
			if !ok {
				t.Errorf("room %d %v -> room %d %v has no reverse link", roomID, position, link.RoomID, link.Door)
				continue
			}
			if back.RoomID != roomID || back.Door != position {
				t.Errorf("reverse of room %d %v is %+v, want {%d %v}", roomID, position, back, roomID, position)
			}
		}
	}
}

func TestChainGenerate_NextFollowsExits(t *testing.T) {
	d := generateChain(t, DefaultConfig(), 5)
	id := 0
	for steps := 0; steps < len(d.Rooms)-1; steps++ {
		r, ok := d.Room(id)
		if !ok {
			t.Fatalf("Room(%d) not found", id)
		}
		exit, _ := r.Exit()
		link, ok := d.Next(id, exit.Position)
		if !ok {
			t.Fatalf("Next(%d, %v) = no connection", id, exit.Position)
		}
		if link.RoomID != id+1 {
			t.Errorf("Next(%d, %v).RoomID = %d, want %d", id, exit.Position, link.RoomID, id+1)
		}
		id = link.RoomID
	}
	if _, ok := d.Next(99, world.North); ok {
		t.Error("Next(99, North) found a link for an unknown room")
	}
	first := d.Rooms[0]
	exit, _ := first.Exit()
	for _, dir := range world.AllDirections() {
		if dir == exit.Position {
			continue
		}
		if _, ok := d.Next(first.ID, dir); ok {
			t.Errorf("Next(start, %v) found a link on a wall without a door", dir)
		}
	}
}

func TestChainGenerate_SingleRoomIsStartAndFinal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomCount = 1
	d := generateChain(t, cfg, 6)
	if len(d.Rooms) != 1 {
		t.Fatalf("len(Rooms) = %d, want 1", len(d.Rooms))
	}
	r := d.Rooms[0]
	if !r.IsStart || !r.IsFinal {
		t.Errorf("single room IsStart=%v IsFinal=%v, want both true", r.IsStart, r.IsFinal)
	}
	if len(r.Doors) != 0 {
		t.Errorf("single room has %d doors, want 0", len(r.Doors))
	}
}

func TestChainGenerate_StopsEarlyWithoutExitSides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomCount = 5
	cfg.ExitSides = nil
	d := generateChain(t, cfg, 7)
	if len(d.Rooms) != 1 {
		t.Fatalf("len(Rooms) = %d, want 1 (no exit can be carved)", len(d.Rooms))
	}
	if d.Rooms[0].IsFinal {
		t.Error("start room IsFinal = true, want false (the chain stopped short of the target)")
	}
	if d.Connections.Len() != 0 {
		t.Errorf("Connections.Len() = %d, want 0", d.Connections.Len())
	}
}

func TestChainGenerate_RestartsIDsOnEachCall(t *testing.T) {
	g := NewChainGenerator(DefaultConfig(), rand.New(rand.NewSource(8)))
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	d, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if d.Rooms[0].ID != 0 || !d.Rooms[0].IsStart {
		t.Errorf("second Generate() first room = id %d start %v, want id 0 start true", d.Rooms[0].ID, d.Rooms[0].IsStart)
	}
}

func TestChainGenerate_SameSeedSameChain(t *testing.T) {
	a := generateChain(t, DefaultConfig(), 9)
	b := generateChain(t, DefaultConfig(), 9)
	for i := range a.Rooms {
		ea, _ := a.Rooms[i].Exit()
		eb, _ := b.Rooms[i].Exit()
		if ea.Position != eb.Position {
			t.Errorf("room %d exit %v vs %v with the same seed", i, ea.Position, eb.Position)
		}
	}
}

func TestChainGenerate_InvalidConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"zero rooms":     func(c *Config) { c.RoomCount = 0 },
		"zero tile size": func(c *Config) { c.TileSize = 0 },
		"tiny room":      func(c *Config) { c.PixelWidth = 32 },
		"bad exit side":  func(c *Config) { c.ExitSides = []world.Direction{world.Direction(7)} },
		"no door width":  func(c *Config) { c.DoorWidth = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			_, err := NewChainGenerator(cfg, rand.New(rand.NewSource(1))).Generate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Generate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
