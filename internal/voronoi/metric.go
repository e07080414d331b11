package voronoi

import (
	"fmt"
	"math"
	"strings"
)

// Metric selects the distance function used to compare a pixel with a seed.
// The zero value is Euclidean.
type Metric int

const (
	// Euclidean is the straight-line distance. Cells have curved-looking
	// borders made of straight segments.
	Euclidean Metric = iota
	// Manhattan sums the axis distances and produces diamond-like cells.
	Manhattan
	// Chebyshev takes the larger axis distance and produces square-like cells.
	Chebyshev
)

var metricNames = map[Metric]string{
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Chebyshev: "chebyshev",
}

// Metrics returns all metrics in declaration order.
func Metrics() []Metric {
	return []Metric{Euclidean, Manhattan, Chebyshev}
}

// MetricNames returns the accepted metric names.
func MetricNames() []string {
	names := make([]string, 0, len(metricNames))
	for _, m := range Metrics() {
		names = append(names, m.String())
	}
	return names
}

// ParseMetric resolves a metric name case-insensitively. An empty name
// selects Euclidean.
func ParseMetric(name string) (Metric, error) {
	if name == "" {
		return Euclidean, nil
	}
	for _, m := range Metrics() {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMetric, name, strings.Join(MetricNames(), ", "))
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Distance returns the distance between (x, y) and (a, b).
func (m Metric) Distance(x, y, a, b int) float64 {
	dx := absInt(x - a)
	dy := absInt(y - b)
	switch m {
	case Manhattan:
		return float64(dx + dy)
	case Chebyshev:
		return float64(max(dx, dy))
	default:
		return math.Sqrt(float64(dx*dx + dy*dy))
	}
}

// Set implements pflag.Value.
func (m *Metric) Set(s string) error {
	v, err := ParseMetric(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Metric) Type() string {
	return "metric"
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
