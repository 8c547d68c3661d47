package grid

// Point is a single quadrature node: an angular position with its
// integration weight.
type Point struct {
	Azimuth    float64 // radians, [0, 2*pi)
	Colatitude float64 // radians, [0, pi]
	Weight     float64
}

// Grid is an ordered sequence of quadrature points. Row order is
// significant and preserved by all constructors.
type Grid []Point

// Azimuths returns the azimuth column as a new slice.
func (g Grid) Azimuths() []float64 {
	out := make([]float64, len(g))
	for i, p := range g {
		out[i] = p.Azimuth
	}
	return out
}

// Colatitudes returns the colatitude column as a new slice.
func (g Grid) Colatitudes() []float64 {
	out := make([]float64, len(g))
	for i, p := range g {
		out[i] = p.Colatitude
	}
	return out
}

// Weights returns the weight column as a new slice.
func (g Grid) Weights() []float64 {
	out := make([]float64, len(g))
	for i, p := range g {
		out[i] = p.Weight
	}
	return out
}

// WeightSum returns the sum of all integration weights.
func (g Grid) WeightSum() float64 {
	sum := 0.0
	for _, p := range g {
		sum += p.Weight
	}
	return sum
}
