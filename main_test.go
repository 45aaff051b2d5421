package main

import (
	"slices"
	"testing"

	"roomforge/pkg/engine/world"
)

func TestParseSides(t *testing.T) {
	got, err := parseSides("north, East,west")
	if err != nil {
		t.Fatalf("parseSides() error = %v", err)
	}
	want := []world.Direction{world.North, world.East, world.West}
	if !slices.Equal(got, want) {
		t.Errorf("parseSides() = %v, want %v", got, want)
	}

	if got, err := parseSides(""); err != nil || len(got) != 0 {
		t.Errorf("parseSides(\"\") = %v, %v, want no sides", got, err)
	}
	if _, err := parseSides("north,up"); err == nil {
		t.Error("parseSides with an unknown side did not fail")
	}
}

func TestParseStyles(t *testing.T) {
	got := parseStyles("standard, ,forest,")
	if want := []string{"standard", "forest"}; !slices.Equal(got, want) {
		t.Errorf("parseStyles() = %v, want %v", got, want)
	}
}
