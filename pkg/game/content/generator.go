package content

import (
	"fmt"
	"log"
	"math"

	"roomforge/pkg/engine/pathfind"
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/room"
)

// Rand is the random source used for placement
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generator turns a room's dimensions and doors into a content grid
type Generator struct {
	cfg     Config
	catalog Catalog
	styles  Styles
	rng     Rand
	logger  *log.Logger
}

// NewGenerator creates a content generator. The catalog and styles are
// used as given and must not be mutated afterwards. A nil logger logs to
// the standard logger.
func NewGenerator(cfg Config, catalog Catalog, styles Styles, rng Rand, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := styles[DefaultStyle]; !ok {
		return nil, fmt.Errorf("%w: styles lack %q", ErrInvalidConfig, DefaultStyle)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		cfg:     cfg,
		catalog: catalog,
		styles:  styles,
		rng:     rng,
		logger:  logger,
	}, nil
}

// GenerateRoom generates content for a structural room
func (g *Generator) GenerateRoom(r *room.Room, tileSize int, style string) *Grid {
	return g.Generate(r.Width, r.Height, r.Doors, tileSize, style)
}

// Generate builds a fresh content grid. Rooms without exits come back as
// plain floor. Generation never fails: unreachable exits and infeasible
// densities only reduce what gets placed.
func (g *Generator) Generate(width, height int, doors []room.Door, tileSize int, styleName string) *Grid {
	s, found := g.styles.Resolve(styleName)
	if !found {
		g.logger.Printf("content: style %q not found, using %q", styleName, DefaultStyle)
		styleName = DefaultStyle
	}

	r := &run{
		gen: g,
		grid: &Grid{
			Cells:    initCells(width, height, doors),
			Doors:    doors,
			TileSize: tileSize,
			Style:    styleName,
		},
	}

	var entrances, exits []room.Door
	for _, d := range doors {
		if d.IsExit {
			exits = append(exits, d)
		} else {
			entrances = append(entrances, d)
		}
	}
	if len(exits) == 0 {
		return r.grid
	}

	center := r.grid.Cells.Center()
	for _, exit := range exits {
		if !r.protectPath(center, exit.Central) {
			r.grid.Stats.UnreachedExits++
			g.logger.Printf("content: no path from %v to exit %v at %v", center, exit.Position, exit.Central)
		}
	}
	if g.cfg.ProtectEntrances {
		for _, entrance := range entrances {
			if !r.protectPath(center, entrance.Central) {
				g.logger.Printf("content: no path from %v to entrance %v at %v", center, entrance.Position, entrance.Central)
			}
		}
	}
	r.grid.Stats.PathCells = len(r.grid.PathCells())

	types := g.catalog.Resolve(s.ObstacleTypes)
	if len(types) == 0 {
		g.logger.Printf("content: style %q has no known obstacle types", styleName)
		return r.grid
	}

	density := g.cfg.Density
	if s.Density > 0 {
		density = s.Density
	}
	r.scatter(types, density)

	if g.cfg.Clusters.Enabled {
		r.cluster(types)
	}

	return r.grid
}

// initCells floor-fills the grid and voids the wall ring, keeping door
// tiles open as doorways
func initCells(width, height int, doors []room.Door) *world.Grid[Cell] {
	cells := world.NewGrid(width, height, Cell{Kind: Floor})
	cells.ForEach(func(p world.Point, _ Cell) {
		if cells.IsOnPerimeter(p) {
			cells.Set(p, Cell{Kind: Void})
		}
	})
	for _, d := range doors {
		for _, p := range d.Tiles {
			cells.Set(p, Cell{Kind: Floor, IsDoor: true})
		}
	}
	return cells
}

// run holds the state of one Generate call
type run struct {
	gen  *Generator
	grid *Grid
}

// protectPath marks the route from start to goal, widened by the path
// width, as permanently free. It reports whether a route existed.
func (r *run) protectPath(start, goal world.Point) bool {
	cells := r.grid.Cells
	path, ok := pathfind.FindPath(cells, start, goal, func(_ world.Point, c Cell) bool {
		return c.Kind != Void
	})
	if !ok {
		return false
	}

	radius := r.gen.cfg.PathWidth
	for _, p := range path {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				q := world.Pt(p.X+dx, p.Y+dy)
				if !cells.InBounds(q) {
					continue
				}
				if c := cells.Ptr(q); c.Kind == Floor {
					c.IsPath = true
				}
			}
		}
	}
	return true
}

// scatter places randomly sized obstacles by rejection sampling until the
// target count or the attempt cap is reached
func (r *run) scatter(types []*ObstacleType, density float64) {
	cfg := r.gen.cfg
	rng := r.gen.rng
	w, h := r.grid.Width(), r.grid.Height()

	interior := max(0, w-2) * max(0, h-2)
	target := int(math.Floor(float64(interior) * density))
	target = min(max(target, cfg.MinObstacles), cfg.MaxObstacles)

	stats := &r.grid.Stats
	stats.Target = target
	stats.MaxAttempts = target * cfg.AttemptFactor

	for stats.Placed < target && stats.Attempts < stats.MaxAttempts {
		stats.Attempts++

		size := r.pickSize()
		spanX, spanY := w-size.Width-1, h-size.Height-1
		if spanX < 1 || spanY < 1 {
			continue
		}
		origin := world.Pt(rng.Intn(spanX)+1, rng.Intn(spanY)+1)

		if !r.spaceAvailable(origin, size.Width, size.Height) {
			continue
		}
		r.place(origin, size.Width, size.Height, pickType(rng, types), false)
		stats.Placed++
	}
}

// cluster scatters groups of same-type single-cell obstacles around random
// centers
func (r *run) cluster(types []*ObstacleType) {
	cl := r.gen.cfg.Clusters
	rng := r.gen.rng
	w, h := r.grid.Width(), r.grid.Height()
	if w <= 4 || h <= 4 {
		return
	}

	count := rng.Intn(cl.MaxClusters) + 1
	for i := 0; i < count; i++ {
		center := world.Pt(rng.Intn(w-4)+2, rng.Intn(h-4)+2)
		if r.grid.Cells.Get(center).IsPath {
			continue
		}
		r.grid.Stats.Clusters++

		members := rng.Intn(cl.MaxSize-cl.MinSize+1) + cl.MinSize
		kind := pickType(rng, types)
		reach := 3 / cl.Tightness

		for j := 0; j < members; j++ {
			distance := math.Floor(rng.Float64() * reach)
			angle := rng.Float64() * math.Pi * 2
			p := world.Pt(
				center.X+roundHalfUp(math.Cos(angle)*distance),
				center.Y+roundHalfUp(math.Sin(angle)*distance),
			)
			if !r.grid.Cells.IsInterior(p) || !r.spaceAvailable(p, 1, 1) {
				continue
			}
			r.place(p, 1, 1, kind, true)
			r.grid.Stats.ClusterObstacles++
		}
	}
}

// spaceAvailable applies the placement rule to a width x height footprint
// anchored at origin
func (r *run) spaceAvailable(origin world.Point, width, height int) bool {
	cfg := r.gen.cfg
	cells := r.grid.Cells
	pad := cfg.BorderPadding

	if origin.X < pad || origin.X+width >= cells.Width()-pad ||
		origin.Y < pad || origin.Y+height >= cells.Height()-pad {
		return false
	}

	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			p := world.Pt(origin.X+dx, origin.Y+dy)
			if !cells.InBounds(p) {
				return false
			}
			c := cells.Get(p)
			if c.IsPath || !c.isPlainFloor() || r.nearDoor(p) {
				return false
			}
		}
	}
	return true
}

// nearDoor returns true if p is within the door clearance of a door tile
func (r *run) nearDoor(p world.Point) bool {
	clearance := r.gen.cfg.DoorClearance
	for _, d := range r.grid.Doors {
		for _, t := range d.Tiles {
			if p.Chebyshev(t) < clearance {
				return true
			}
		}
	}
	return false
}

// place stamps an obstacle over its footprint
func (r *run) place(origin world.Point, width, height int, kind *ObstacleType, cluster bool) {
	o := &Obstacle{
		ID:      len(r.grid.Obstacles),
		Type:    kind,
		Origin:  origin,
		Width:   width,
		Height:  height,
		Cluster: cluster,
	}
	for _, p := range o.Cells() {
		r.grid.Cells.Set(p, Cell{Kind: Blocked, Obstacle: o})
	}
	r.grid.Obstacles = append(r.grid.Obstacles, o)
}

// pickSize draws a footprint weighted by size probability
func (r *run) pickSize() Size {
	sizes := r.gen.cfg.Sizes
	total := 0.0
	for _, s := range sizes {
		total += s.Probability
	}
	roll := r.gen.rng.Float64() * total
	for _, s := range sizes {
		if roll < s.Probability {
			return s
		}
		roll -= s.Probability
	}
	return Size{Width: 1, Height: 1}
}

// pickType draws an obstacle type weighted by its probability
func pickType(rng Rand, types []*ObstacleType) *ObstacleType {
	total := 0.0
	for _, t := range types {
		total += t.weight()
	}
	roll := rng.Float64() * total
	for _, t := range types {
		if roll < t.weight() {
			return t
		}
		roll -= t.weight()
	}
	return types[0]
}

// roundHalfUp rounds to the nearest integer with .5 going towards +inf
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
