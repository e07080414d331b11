package voronoi

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// Stats summarises how the image area is split between seeds.
type Stats struct {
	// Areas holds the pixel count owned by each seed, by seed index.
	Areas  []int
	Mean   float64
	StdDev float64
	// Empty counts seeds that own no pixels, which happens when two seeds
	// share a coordinate.
	Empty    int
	Smallest int
	Largest  int
}

// StatsCollector is a RowSink decorator that tallies pixel ownership while
// forwarding rows to the wrapped sink.
type StatsCollector struct {
	next  RowSink
	areas []int
}

// NewStatsCollector wraps next. seeds is the number of seeds being rendered.
// next may be nil when only the statistics are wanted.
func NewStatsCollector(next RowSink, seeds int) *StatsCollector {
	return &StatsCollector{next: next, areas: make([]int, seeds)}
}

// WriteOwners implements OwnerSink.
func (s *StatsCollector) WriteOwners(y int, owners []int) error {
	for _, o := range owners {
		s.areas[o]++
	}
	if ow, ok := s.next.(OwnerSink); ok {
		return ow.WriteOwners(y, owners)
	}
	return nil
}

// WriteRow implements RowSink.
func (s *StatsCollector) WriteRow(y int, pix []colour.RGB) error {
	if s.next == nil {
		return nil
	}
	return s.next.WriteRow(y, pix)
}

// Stats returns the summary of everything written so far.
func (s *StatsCollector) Stats() Stats {
	st := Stats{Areas: append([]int(nil), s.areas...)}
	if len(s.areas) == 0 {
		return st
	}

	values := make([]float64, len(s.areas))
	for i, a := range s.areas {
		values[i] = float64(a)
		if a == 0 {
			st.Empty++
		}
		if a < s.areas[st.Smallest] {
			st.Smallest = i
		}
		if a > s.areas[st.Largest] {
			st.Largest = i
		}
	}

	if len(values) == 1 {
		st.Mean = values[0]
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(values, nil)
	return st
}
