package sph

import "math"

// SphBesselJ returns the spherical Bessel function of the first kind
// j_n(x).
//
// Upward recurrence is unstable once n exceeds x, so small arguments use
// Miller's downward recurrence normalized against j_0.
func SphBesselJ(n int, x float64) float64 {
	if n < 0 {
		return 0
	}
	if x == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}

	j0 := math.Sin(x) / x
	if n == 0 {
		return j0
	}
	j1 := math.Sin(x)/(x*x) - math.Cos(x)/x
	if n == 1 {
		return j1
	}

	if x > float64(n) {
		// Upward recurrence: j_{k+1} = (2k+1)/x * j_k - j_{k-1}.
		prev, cur := j0, j1
		for k := 1; k < n; k++ {
			prev, cur = cur, float64(2*k+1)/x*cur-prev
		}
		return cur
	}

	// Miller's algorithm: start well above n with arbitrary seed values,
	// recurse downward, normalize by the known j_0.
	start := n + int(math.Sqrt(40*float64(n))) + 16
	var jn float64
	next, cur := 0.0, 1e-30
	for k := start; k >= 1; k-- {
		prev := float64(2*k+1)/x*cur - next
		next, cur = cur, prev
		if k-1 == n {
			jn = cur
		}
		// Rescale to avoid overflow during long descents.
		if math.Abs(cur) > 1e100 {
			cur *= 1e-100
			next *= 1e-100
			jn *= 1e-100
		}
	}
	return jn * j0 / cur
}

// SphBesselY returns the spherical Bessel function of the second kind
// y_n(x). y_n diverges to -Inf as x approaches 0.
func SphBesselY(n int, x float64) float64 {
	if n < 0 {
		return 0
	}
	if x == 0 {
		return math.Inf(-1)
	}

	y0 := -math.Cos(x) / x
	if n == 0 {
		return y0
	}
	y1 := -math.Cos(x)/(x*x) - math.Sin(x)/x
	if n == 1 {
		return y1
	}

	// Upward recurrence is stable for y_n at all arguments.
	prev, cur := y0, y1
	for k := 1; k < n; k++ {
		prev, cur = cur, float64(2*k+1)/x*cur-prev
	}
	return cur
}

// SphHankel2 returns the spherical Hankel function of the second kind
// h2_n(x) = j_n(x) - i*y_n(x), the outgoing-wave solution for the
// exp(+i*omega*t) time convention.
func SphHankel2(n int, x float64) complex128 {
	return complex(SphBesselJ(n, x), -SphBesselY(n, x))
}

// DSphBesselJ returns the derivative j_n'(x).
func DSphBesselJ(n int, x float64) float64 {
	if x == 0 {
		if n == 1 {
			return 1.0 / 3.0
		}
		return 0
	}
	if n == 0 {
		return -SphBesselJ(1, x)
	}
	return SphBesselJ(n-1, x) - float64(n+1)/x*SphBesselJ(n, x)
}

// DSphBesselY returns the derivative y_n'(x).
func DSphBesselY(n int, x float64) float64 {
	if n == 0 {
		return -SphBesselY(1, x)
	}
	return SphBesselY(n-1, x) - float64(n+1)/x*SphBesselY(n, x)
}

// DSphHankel2 returns the derivative h2_n'(x).
func DSphHankel2(n int, x float64) complex128 {
	return complex(DSphBesselJ(n, x), -DSphBesselY(n, x))
}
