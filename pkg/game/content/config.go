package content

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by NewGenerator for unusable settings
var ErrInvalidConfig = errors.New("invalid content config")

// Size is an obstacle footprint and its relative selection weight
type Size struct {
	Width       int
	Height      int
	Probability float64
}

// ClusterConfig controls the organic obstacle groups placed after the
// main scatter pass
type ClusterConfig struct {
	Enabled     bool
	MaxClusters int
	MinSize     int
	MaxSize     int
	Tightness   float64 // (0,1]; higher packs cluster members closer together
}

// Config holds the content generation parameters
type Config struct {
	Density       float64 // default fill ratio when a style sets none
	MinObstacles  int
	MaxObstacles  int
	BorderPadding int // obstacle footprints stay this far inside the room
	DoorClearance int // and keep this Chebyshev distance from door tiles
	PathWidth     int // radius of the protected band around guaranteed paths
	AttemptFactor int // placement attempts allowed per targeted obstacle

	Sizes    []Size
	Clusters ClusterConfig

	// ProtectEntrances also guarantees a path from the center to every
	// entrance, not only to the exits
	ProtectEntrances bool
}

// DefaultConfig returns the standard content parameters
func DefaultConfig() Config {
	return Config{
		Density:       0.15,
		MinObstacles:  10,
		MaxObstacles:  30,
		BorderPadding: 2,
		DoorClearance: 3,
		PathWidth:     2,
		AttemptFactor: 4,
		Sizes: []Size{
			{Width: 1, Height: 1, Probability: 0.6},
			{Width: 2, Height: 1, Probability: 0.2},
			{Width: 1, Height: 2, Probability: 0.1},
			{Width: 2, Height: 2, Probability: 0.1},
		},
		Clusters: ClusterConfig{
			Enabled:     true,
			MaxClusters: 5,
			MinSize:     3,
			MaxSize:     7,
			Tightness:   0.7,
		},
	}
}

// Validate checks the config for values the generator cannot work with
func (c Config) Validate() error {
	switch {
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidConfig, c.Density)
	case c.MinObstacles < 0 || c.MaxObstacles < c.MinObstacles:
		return fmt.Errorf("%w: obstacle bounds [%d,%d]", ErrInvalidConfig, c.MinObstacles, c.MaxObstacles)
	case c.BorderPadding < 0 || c.DoorClearance < 0 || c.PathWidth < 0:
		return fmt.Errorf("%w: negative padding, clearance or path width", ErrInvalidConfig)
	case c.AttemptFactor < 1:
		return fmt.Errorf("%w: attempt factor %d", ErrInvalidConfig, c.AttemptFactor)
	case len(c.Sizes) == 0:
		return fmt.Errorf("%w: no obstacle sizes", ErrInvalidConfig)
	}
	for _, s := range c.Sizes {
		if s.Width < 1 || s.Height < 1 || s.Probability < 0 {
			return fmt.Errorf("%w: obstacle size %+v", ErrInvalidConfig, s)
		}
	}
	if c.Clusters.Enabled {
		cl := c.Clusters
		if cl.MaxClusters < 1 || cl.MinSize < 1 || cl.MaxSize < cl.MinSize {
			return fmt.Errorf("%w: cluster counts %+v", ErrInvalidConfig, cl)
		}
		if cl.Tightness <= 0 || cl.Tightness > 1 {
			return fmt.Errorf("%w: cluster tightness %v outside (0,1]", ErrInvalidConfig, cl.Tightness)
		}
	}
	return nil
}
