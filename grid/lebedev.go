package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-sfa/internal/lebedev"
	"github.com/cwbudde/algo-sfa/sph"
)

// ErrInvalidDegree is wrapped by Lebedev for degrees without a node table.
var ErrInvalidDegree = fmt.Errorf("grid: invalid Lebedev degree, choose one of %v", lebedev.Degrees())

// LebedevDegrees returns the supported Lebedev degrees in ascending order.
func LebedevDegrees() []int {
	return lebedev.Degrees()
}

// Lebedev builds the Lebedev quadrature grid of the given degree and
// returns it together with the highest spherical order the grid resolves
// reliably, floor(sqrt(degree/1.3) - 1).
//
// Rows are sorted by colatitude and then, stably, by azimuth, so rows
// sharing an azimuth stay ordered by colatitude.
func Lebedev(degree int) (Grid, int, error) {
	if !lebedev.Available(degree) {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}

	nodes, err := lebedev.GenGrid(degree)
	if err != nil {
		return nil, 0, err
	}

	g := make(Grid, len(nodes))
	for i, nd := range nodes {
		az, col, _ := sph.Cart2Sph(nd.X, nd.Y, nd.Z)
		g[i] = Point{
			Azimuth:    sph.WrapAzimuth(az),
			Colatitude: col,
			Weight:     nd.W,
		}
	}

	sort.SliceStable(g, func(i, j int) bool { return g[i].Colatitude < g[j].Colatitude })
	sort.SliceStable(g, func(i, j int) bool { return g[i].Azimuth < g[j].Azimuth })

	nMax := int(math.Floor(math.Sqrt(float64(degree)/1.3) - 1))
	return g, nMax, nil
}
