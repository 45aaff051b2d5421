package content

import (
	"testing"

	"roomforge/pkg/engine/world"
)

func TestObstacleType_HexColor(t *testing.T) {
	c := DefaultCatalog()
	if got := c["water"].HexColor(); got != "#0066ff" {
		t.Errorf("water HexColor() = %q, want #0066ff", got)
	}
	if got := c["crate"].HexColor(); got != "#8b4513" {
		t.Errorf("crate HexColor() = %q, want #8b4513", got)
	}
}

func TestDefaultCatalog_Entries(t *testing.T) {
	c := DefaultCatalog()
	for id, o := range c {
		if o.ID != id {
			t.Errorf("catalog key %q holds id %q", id, o.ID)
		}
		if o.Walkable {
			t.Errorf("obstacle %q is walkable", id)
		}
		if o.Probability <= 0 {
			t.Errorf("obstacle %q probability %v, want > 0", id, o.Probability)
		}
	}
	if !c["lava"].Deadly {
		t.Error("lava is not deadly")
	}
	c["rock"].Color = 0
	if DefaultCatalog()["rock"].Color == 0 {
		t.Error("DefaultCatalog shares entries between calls")
	}
}

func TestCatalog_ResolveKeepsOrderAndSkipsUnknown(t *testing.T) {
	got := DefaultCatalog().Resolve([]string{"rock", "ghost", "water"})
	if len(got) != 2 || got[0].ID != "rock" || got[1].ID != "water" {
		ids := make([]string, len(got))
		for i, o := range got {
			ids[i] = o.ID
		}
		t.Errorf("Resolve() = %v, want [rock water]", ids)
	}
}

func TestStyles_Resolve(t *testing.T) {
	s := DefaultStyles()
	if style, ok := s.Resolve("flooded"); !ok || style.Density != 0.25 {
		t.Errorf("Resolve(flooded) = %+v, %v", style, ok)
	}
	style, ok := s.Resolve("nope")
	if ok {
		t.Error("Resolve(nope) ok = true, want false")
	}
	if style.Name != DefaultStyle {
		t.Errorf("Resolve(nope) = %q, want fallback %q", style.Name, DefaultStyle)
	}
}

func TestObstacleType_DisplayNameUnknownKey(t *testing.T) {
	o := &ObstacleType{ID: "statue", Name: "OBSTACLE_STATUE"}
	if got := o.DisplayName(); got != "statue" {
		t.Errorf("DisplayName() = %q, want id fallback statue", got)
	}
}

func TestPickType_Weighted(t *testing.T) {
	types := DefaultCatalog().Resolve([]string{"water", "crate"})
	counts := map[string]int{}
	rng := fixedRand{floats: []float64{0, 0.5, 0.54, 0.55, 0.99}}
	for range rng.floats {
		counts[pickType(&rng, types).ID]++
	}
	// total weight 0.55: rolls 0, 0.275, 0.297 fall in water [0,0.3)
	if counts["water"] != 3 || counts["crate"] != 2 {
		t.Errorf("pickType counts = %v, want water 3 crate 2", counts)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{0.5: 1, -0.5: 0, 1.49: 1, -1.5: -1, -1.51: -2, 2: 2}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestCell_Walkable(t *testing.T) {
	rock := DefaultCatalog()["rock"]
	puddle := &ObstacleType{ID: "puddle", Walkable: true}
	cases := []struct {
		cell Cell
		want bool
	}{
		{Cell{Kind: Void}, false},
		{Cell{Kind: Floor}, true},
		{Cell{Kind: Floor, IsPath: true}, true},
		{Cell{Kind: Blocked, Obstacle: &Obstacle{Type: rock}}, false},
		{Cell{Kind: Blocked, Obstacle: &Obstacle{Type: puddle}}, true},
	}
	for _, c := range cases {
		if got := c.cell.Walkable(); got != c.want {
			t.Errorf("%+v.Walkable() = %v, want %v", c.cell, got, c.want)
		}
	}
}

func TestObstacle_Cells(t *testing.T) {
	o := &Obstacle{Origin: world.Pt(3, 4), Width: 2, Height: 2}
	want := []world.Point{world.Pt(3, 4), world.Pt(4, 4), world.Pt(3, 5), world.Pt(4, 5)}
	got := o.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells() = %v, want %v", got, want)
			break
		}
	}
}

// fixedRand replays a fixed sequence of Float64 values
type fixedRand struct {
	floats []float64
	i      int
}

func (f *fixedRand) Intn(int) int { return 0 }

func (f *fixedRand) Float64() float64 {
	v := f.floats[f.i%len(f.floats)]
	f.i++
	return v
}
