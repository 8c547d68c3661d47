package process

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sfa/grid"
	"github.com/cwbudde/algo-sfa/sph"
)

// ISpatFT performs the inverse spatial Fourier transform: it projects
// spatial Fourier coefficients through the spherical-harmonic bases of
// the grid points, producing one spectrum per grid point.
//
// coeffs is indexed [flattened (n, m) index][frequency bin] and must have
// a perfect square number of rows, (nMax+1)^2.
func ISpatFT(coeffs [][]complex128, g grid.Grid) ([][]complex128, error) {
	nMax, err := orderFromRows(len(coeffs))
	if err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("process: empty quadrature grid")
	}
	bins := len(coeffs[0])
	for i, row := range coeffs {
		if len(row) != bins {
			return nil, fmt.Errorf("process: ragged coefficient matrix at row %d", i)
		}
	}

	bases := sph.HarmAll(nMax, g.Azimuths(), g.Colatitudes())

	out := make([][]complex128, len(g))
	for p := range g {
		row := make([]complex128, bins)
		for idx, y := range bases[p] {
			if y == 0 {
				continue
			}
			cRow := coeffs[idx]
			for b := range row {
				row[b] += y * cRow[b]
			}
		}
		out[p] = row
	}
	return out, nil
}

// SpatFT performs the forward spatial Fourier transform up to order nMax:
// a weighted conjugate-basis projection of per-grid-point spectra onto
// spherical harmonics, scaled by 4*pi for orthonormality over the sphere.
func SpatFT(signals [][]complex128, g grid.Grid, nMax int) ([][]complex128, error) {
	if nMax < 0 {
		return nil, fmt.Errorf("process: transform order must be >= 0: %d", nMax)
	}
	if len(signals) != len(g) {
		return nil, fmt.Errorf("process: signal count %d does not match grid size %d", len(signals), len(g))
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("process: empty quadrature grid")
	}
	bins := len(signals[0])
	for i, row := range signals {
		if len(row) != bins {
			return nil, fmt.Errorf("process: ragged signal matrix at row %d", i)
		}
	}

	bases := sph.HarmAll(nMax, g.Azimuths(), g.Colatitudes())
	size := (nMax + 1) * (nMax + 1)

	out := make([][]complex128, size)
	for idx := range out {
		out[idx] = make([]complex128, bins)
	}
	for p := range g {
		w := complex(4*math.Pi*g[p].Weight, 0)
		for idx := 0; idx < size; idx++ {
			yw := cmplx.Conj(bases[p][idx]) * w
			if yw == 0 {
				continue
			}
			dst := out[idx]
			src := signals[p]
			for b := range dst {
				dst[b] += yw * src[b]
			}
		}
	}
	return out, nil
}

// orderFromRows recovers nMax from a flattened coefficient row count.
func orderFromRows(rows int) (int, error) {
	if rows == 0 {
		return 0, fmt.Errorf("process: empty coefficient matrix")
	}
	n := int(math.Round(math.Sqrt(float64(rows)))) - 1
	if (n+1)*(n+1) != rows {
		return 0, fmt.Errorf("process: coefficient row count %d is not a square (order+1)^2", rows)
	}
	return n, nil
}
