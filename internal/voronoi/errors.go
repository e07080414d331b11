package voronoi

import "errors"

var (
	// ErrInvalidDimension is returned for a non-positive width, height or
	// point count.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrUnknownMetric is returned by ParseMetric for unrecognised names.
	ErrUnknownMetric = errors.New("unknown distance metric")
)
