// Package pathfind implements a 4-directional A* search over world grids.
package pathfind

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"roomforge/pkg/engine/world"
)

// WalkableFunc reports whether the search may step onto p
type WalkableFunc[T any] func(p world.Point, cell T) bool

// node is a frontier entry of the open set
type node struct {
	pos    world.Point
	g, h   int
	f      int
	parent *node
}

// Manhattan is the heuristic used by FindPath
func Manhattan(a, b world.Point) int {
	return a.Manhattan(b)
}

// FindPath returns the cells from start to goal inclusive, or false when the
// goal cannot be reached. Steps have unit cost in the four cardinal
// directions. The open set is kept in insertion order and stably sorted by f
// before every extraction, so equal-f ties go to whichever node sits first.
func FindPath[T any](g *world.Grid[T], start, goal world.Point, walkable WalkableFunc[T]) ([]world.Point, bool) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		panic(fmt.Sprintf("pathfind: start %v or goal %v outside %dx%d grid", start, goal, g.Width(), g.Height()))
	}

	h0 := Manhattan(start, goal)
	open := []*node{{pos: start, h: h0, f: h0}}
	closed := mapset.New[world.Point]()

	for len(open) > 0 {
		slices.SortStableFunc(open, func(a, b *node) int {
			return cmp.Compare(a.f, b.f)
		})
		current := open[0]
		open = open[1:]

		if current.pos == goal {
			return reconstruct(current), true
		}

		closed.Put(current.pos)

		for _, dir := range world.AllDirections() {
			next := dir.Step(current.pos)
			if !g.InBounds(next) || closed.Has(next) || !walkable(next, g.Get(next)) {
				continue
			}

			cost := current.g + 1
			i := slices.IndexFunc(open, func(n *node) bool { return n.pos == next })
			if i == -1 {
				h := Manhattan(next, goal)
				open = append(open, &node{pos: next, g: cost, h: h, f: cost + h, parent: current})
				continue
			}
			if cost < open[i].g {
				open[i].g = cost
				open[i].f = cost + open[i].h
				open[i].parent = current
			}
		}
	}

	return nil, false
}

func reconstruct(end *node) []world.Point {
	var path []world.Point
	for n := end; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	slices.Reverse(path)
	return path
}
