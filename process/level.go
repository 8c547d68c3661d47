package process

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each bin of a complex pressure spectrum.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)
	return out
}

// LevelDB returns the pressure level 20*log10(|X[k]|) per bin. Zero bins
// map to -Inf.
func LevelDB(in []complex128) []float64 {
	mag := Magnitude(in)
	for i, v := range mag {
		mag[i] = 20 * math.Log10(v)
	}
	return mag
}
