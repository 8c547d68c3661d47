package gen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-sfa/sph"
)

// WhiteNoise adds white Gaussian-like noise of a calibrated average level
// to a frequency-domain block.
//
// fftData is indexed [channel][bin]. Uniform random noise is generated in
// the time domain over the implied NFFT = 2*(bins-1) samples, normalized
// so its mean absolute amplitude equals 10^(noiseLevelDB/20), transformed
// with a real FFT and added bin-wise. The input block is not modified.
func WhiteNoise(fftData [][]complex128, noiseLevelDB float64, opts ...NoiseOption) ([][]complex128, error) {
	if len(fftData) == 0 {
		return nil, fmt.Errorf("gen: empty FFT block")
	}
	bins := len(fftData[0])
	if bins < 2 {
		return nil, fmt.Errorf("gen: FFT block needs at least 2 bins: %d", bins)
	}
	for ch, row := range fftData {
		if len(row) != bins {
			return nil, fmt.Errorf("gen: ragged FFT block at channel %d", ch)
		}
	}

	var cfg noiseConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	rng := cfg.source()

	channels := len(fftData)
	nfft := 2*bins - 2
	dimFactor := math.Pow(10, noiseLevelDB/20)

	noise := make([][]float64, channels)
	sumAbs := 0.0
	for ch := range noise {
		row := make([]float64, nfft)
		for i := range row {
			v := rng.Float64()
			row[i] = v
			sumAbs += math.Abs(v)
		}
		noise[ch] = row
	}
	scale := dimFactor / (sumAbs / float64(channels*nfft))

	fft := fourier.NewFFT(nfft)
	out := make([][]complex128, channels)
	scaled := make([]float64, nfft)
	for ch := range noise {
		for i, v := range noise[ch] {
			scaled[i] = v * scale
		}
		spectrum := fft.Coefficients(nil, scaled)
		row := make([]complex128, bins)
		for i := range row {
			row[i] = fftData[ch][i] + spectrum[i]
		}
		out[ch] = row
	}
	return out, nil
}

// WhiteNoiseChannel is the single-channel convenience form of WhiteNoise.
func WhiteNoiseChannel(fftData []complex128, noiseLevelDB float64, opts ...NoiseOption) ([]complex128, error) {
	out, err := WhiteNoise([][]complex128{fftData}, noiseLevelDB, opts...)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// SphericalNoise returns band-limited random values on a spherical
// surface: complex Gaussian harmonic weights up to orderMax projected
// through the spherical-harmonic bases at each grid point.
//
// Precomputed bases can be supplied with WithBases; otherwise they are
// evaluated for the given grids.
func SphericalNoise(azimuths, colatitudes []float64, orderMax int, opts ...NoiseOption) ([]complex128, error) {
	if orderMax < 0 {
		return nil, fmt.Errorf("gen: order limit must be >= 0: %d", orderMax)
	}
	if len(azimuths) != len(colatitudes) {
		return nil, fmt.Errorf("gen: grid length mismatch: %d azimuths, %d colatitudes", len(azimuths), len(colatitudes))
	}
	if len(azimuths) == 0 {
		return nil, fmt.Errorf("gen: empty angular grid")
	}

	var cfg noiseConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	rng := cfg.source()

	size := (orderMax + 1) * (orderMax + 1)
	bases := cfg.bases
	if bases == nil {
		bases = sph.HarmAll(orderMax, azimuths, colatitudes)
	}
	if len(bases) != len(azimuths) {
		return nil, fmt.Errorf("gen: bases hold %d points, grid has %d", len(bases), len(azimuths))
	}
	for p, row := range bases {
		if len(row) < size {
			return nil, fmt.Errorf("gen: bases row %d has %d coefficients, need %d", p, len(row), size)
		}
	}

	weights := make([]complex128, size)
	for i := range weights {
		weights[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}

	out := make([]complex128, len(azimuths))
	for p := range out {
		var sum complex128
		for idx, w := range weights {
			sum += bases[p][idx] * w
		}
		out[p] = sum
	}
	return out, nil
}
