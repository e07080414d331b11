package voronoi

import (
	"fmt"
	"math/rand/v2"
)

// Point is a seed coordinate inside the image bounds.
type Point struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SeedSet is an ordered list of seed points. A seed's index is its identity
// when colours are assigned.
type SeedSet []Point

// Sample draws count points uniformly from [0, width) x [0, height) using rng.
// Callers must reject non-positive arguments first; see ValidateDimensions.
func Sample(rng *rand.Rand, count, width, height int) SeedSet {
	seeds := make(SeedSet, count)
	for i := range seeds {
		seeds[i] = Point{
			X: uint32(rng.IntN(width)),  // #nosec G115 -- bounded by width
			Y: uint32(rng.IntN(height)), // #nosec G115 -- bounded by height
		}
	}
	return seeds
}

// ValidateDimensions rejects non-positive image sizes and point counts.
func ValidateDimensions(width, height, count int) error {
	switch {
	case width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidDimension, width)
	case height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidDimension, height)
	case count <= 0:
		return fmt.Errorf("%w: point count must be positive, got %d", ErrInvalidDimension, count)
	}
	return nil
}
