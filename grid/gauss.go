package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// Gauss builds a tensor-product Gauss-Legendre quadrature grid with
// azNodes equally spaced azimuth nodes and elNodes Gauss-Legendre
// colatitude nodes.
//
// Row order follows the zig-zag (boustrophedon) scheme of VariSphear
// measurement rigs: rows are grouped by azimuth, and the colatitude
// direction flips on every second azimuth block. This exact ordering is
// device-compatible and must not change.
func Gauss(azNodes, elNodes int) (Grid, error) {
	if azNodes < 1 {
		return nil, fmt.Errorf("grid: azimuth node count must be >= 1: %d", azNodes)
	}
	if elNodes < 1 {
		return nil, fmt.Errorf("grid: elevation node count must be >= 1: %d", elNodes)
	}

	// Azimuth: uniform nodes with equal weights.
	az := make([]float64, azNodes)
	azWeight := 2 * math.Pi / float64(azNodes)
	for i := range az {
		az[i] = float64(i) * azWeight
	}

	// Colatitude: Gauss-Legendre nodes on [-1, 1] mapped through arccos.
	x := make([]float64, elNodes)
	elW := make([]float64, elNodes)
	quad.Legendre{}.FixedLocations(x, elW, -1, 1)

	el := make([]float64, elNodes)
	for i, v := range x {
		el[i] = math.Acos(v)
	}

	// Combined weight is the outer product of the two weight rows,
	// renormalized so the grid sums to 1.
	w := make([]float64, azNodes*elNodes)
	for i := 0; i < azNodes; i++ {
		for j := 0; j < elNodes; j++ {
			w[i*elNodes+j] = azWeight * elW[j]
		}
	}
	floats.Scale(1/floats.Sum(w), w)

	g := make(Grid, 0, azNodes*elNodes)
	for i := 0; i < azNodes; i++ {
		for j := 0; j < elNodes; j++ {
			// Flip the colatitude direction on even azimuth blocks.
			k := elNodes - 1 - j
			if i%2 == 1 {
				k = j
			}
			g = append(g, Point{
				Azimuth:    az[i],
				Colatitude: el[k],
				Weight:     w[i*elNodes+k],
			})
		}
	}
	return g, nil
}
