package sph

import (
	"math"
	"math/cmplx"
)

const pi = math.Pi

// Harm returns the orthonormal spherical harmonic Y_n^m evaluated at the
// given azimuth and colatitude (radians):
//
//	Y_n^m = sqrt((2n+1)/(4*pi) * (n-m)!/(n+m)!) * P_n^m(cos(col)) * exp(i*m*az)
//
// with the Condon-Shortley phase. Degree m outside -n..n yields 0.
// The associated Legendre term is evaluated through a fully normalized
// recurrence, so orders well beyond 100 remain finite.
func Harm(m, n int, azimuth, colatitude float64) complex128 {
	if n < 0 || m < -n || m > n {
		return 0
	}
	if m < 0 {
		y := Harm(-m, n, azimuth, colatitude)
		y = cmplx.Conj(y)
		if m%2 != 0 {
			y = -y
		}
		return y
	}
	p := normLegendre(n, m, math.Cos(colatitude))
	return complex(p, 0) * cmplx.Exp(complex(0, float64(m)*azimuth))
}

// HarmAll evaluates all harmonics up to nMax at every grid point.
// The result is indexed [point][(n+1)*n + m + n] following the canonical
// flattened (n, m) order n=0..nMax, m=-n..n.
func HarmAll(nMax int, azimuths, colatitudes []float64) [][]complex128 {
	points := len(azimuths)
	if len(colatitudes) < points {
		points = len(colatitudes)
	}
	size := (nMax + 1) * (nMax + 1)
	out := make([][]complex128, points)
	for p := 0; p < points; p++ {
		row := make([]complex128, size)
		idx := 0
		for n := 0; n <= nMax; n++ {
			for m := -n; m <= n; m++ {
				row[idx] = Harm(m, n, azimuths[p], colatitudes[p])
				idx++
			}
		}
		out[p] = row
	}
	return out
}

// MNArrays enumerates the flattened (n, m) index pairs up to and including
// order nMax, in the canonical order n=0..nMax, m=-n..n.
func MNArrays(nMax int) (m, n []int) {
	size := (nMax + 1) * (nMax + 1)
	m = make([]int, size)
	n = make([]int, size)
	idx := 0
	for order := 0; order <= nMax; order++ {
		for degree := -order; degree <= order; degree++ {
			m[idx] = degree
			n[idx] = order
			idx++
		}
	}
	return m, n
}

// normLegendre evaluates the fully normalized associated Legendre function
//
//	Pbar_n^m(x) = sqrt((2n+1)/(4*pi) * (n-m)!/(n+m)!) * P_n^m(x)
//
// for m >= 0 using the stable three-term recurrence in n after walking the
// diagonal Pbar_m^m. The Condon-Shortley phase (-1)^m is included.
func normLegendre(n, m int, x float64) float64 {
	// Diagonal: Pbar_0^0, then Pbar_k^k for k = 1..m.
	p := 1 / math.Sqrt(4*pi)
	if m > 0 {
		s := math.Sqrt(math.Max(0, 1-x*x))
		for k := 1; k <= m; k++ {
			p *= -s * math.Sqrt(float64(2*k+1)/float64(2*k))
		}
	}
	if n == m {
		return p
	}

	// First off-diagonal step: Pbar_{m+1}^m.
	pPrev := p
	pCur := x * math.Sqrt(float64(2*m+3)) * p
	if n == m+1 {
		return pCur
	}

	// Three-term recurrence in n.
	for k := m + 2; k <= n; k++ {
		a := math.Sqrt(float64(4*k*k-1) / float64(k*k-m*m))
		b := math.Sqrt(float64((k-1)*(k-1)-m*m) / float64(4*(k-1)*(k-1)-1))
		pPrev, pCur = pCur, a*(x*pCur-b*pPrev)
	}
	return pCur
}
