// Package content populates the interior of a structural room with
// obstacles while keeping a guaranteed walkable route to every exit.
package content

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultStyle is the style used when a requested style is unknown
const DefaultStyle = "standard"

// ObstacleType is one entry of the obstacle catalog
type ObstacleType struct {
	ID          string
	Name        string // gettext message key
	Walkable    bool
	Color       uint32 // 0xRRGGBB
	Probability float64
	Deadly      bool
}

// HexColor returns the color as #rrggbb
func (o *ObstacleType) HexColor() string {
	return fmt.Sprintf("#%06x", o.Color&0xffffff)
}

// weight returns the selection weight; unset probabilities count as 1
func (o *ObstacleType) weight() float64 {
	if o.Probability <= 0 {
		return 1
	}
	return o.Probability
}

// DisplayName returns the translated obstacle name
func (o *ObstacleType) DisplayName() string {
	switch o.Name {
	case "OBSTACLE_WATER":
		return gotext.Get("OBSTACLE_WATER")
	case "OBSTACLE_LAVA":
		return gotext.Get("OBSTACLE_LAVA")
	case "OBSTACLE_CRATE":
		return gotext.Get("OBSTACLE_CRATE")
	case "OBSTACLE_BARREL":
		return gotext.Get("OBSTACLE_BARREL")
	case "OBSTACLE_BUSH":
		return gotext.Get("OBSTACLE_BUSH")
	case "OBSTACLE_ROCK":
		return gotext.Get("OBSTACLE_ROCK")
	default:
		return o.ID
	}
}

// Catalog holds obstacle types keyed by id. Treat it as read-only once
// handed to a generator.
type Catalog map[string]*ObstacleType

// DefaultCatalog returns a fresh copy of the built-in obstacle types
func DefaultCatalog() Catalog {
	return Catalog{
		"water":  {ID: "water", Name: "OBSTACLE_WATER", Color: 0x0066ff, Probability: 0.3},
		"lava":   {ID: "lava", Name: "OBSTACLE_LAVA", Color: 0xff3300, Probability: 0.15, Deadly: true},
		"crate":  {ID: "crate", Name: "OBSTACLE_CRATE", Color: 0x8b4513, Probability: 0.25},
		"barrel": {ID: "barrel", Name: "OBSTACLE_BARREL", Color: 0xa52a2a, Probability: 0.2},
		"bush":   {ID: "bush", Name: "OBSTACLE_BUSH", Color: 0x006600, Probability: 0.2},
		"rock":   {ID: "rock", Name: "OBSTACLE_ROCK", Color: 0x808080, Probability: 0.3},
	}
}

// Resolve returns the catalog entries for ids in order, skipping unknown ids
func (c Catalog) Resolve(ids []string) []*ObstacleType {
	types := make([]*ObstacleType, 0, len(ids))
	for _, id := range ids {
		if t, ok := c[id]; ok {
			types = append(types, t)
		}
	}
	return types
}

// Style selects which obstacle types and density apply to a room
type Style struct {
	Name          string
	ObstacleTypes []string
	Density       float64 // 0 means use the generator default
}

// Styles holds room styles keyed by name
type Styles map[string]Style

// DefaultStyles returns a fresh copy of the built-in styles
func DefaultStyles() Styles {
	return Styles{
		"standard": {Name: "standard", ObstacleTypes: []string{"crate", "barrel", "rock"}, Density: 0.15},
		"flooded":  {Name: "flooded", ObstacleTypes: []string{"water", "crate"}, Density: 0.25},
		"volcanic": {Name: "volcanic", ObstacleTypes: []string{"lava", "rock"}, Density: 0.2},
		"forest":   {Name: "forest", ObstacleTypes: []string{"bush", "rock"}, Density: 0.3},
	}
}

// Resolve returns the named style, or the standard style with ok=false
// when the name is unknown
func (s Styles) Resolve(name string) (Style, bool) {
	if style, ok := s[name]; ok {
		return style, true
	}
	return s[DefaultStyle], false
}
