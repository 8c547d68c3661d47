package sph

import "fmt"

// SpeedOfSound is the default propagation velocity in m/s.
const SpeedOfSound = 343.0

// Kr computes the dimensionless wavenumber-radius product 2*pi*f*r/c for
// every frequency in freqs. A speedOfSound of 0 selects the default.
func Kr(freqs []float64, radius, speedOfSound float64) []float64 {
	c := speedOfSound
	if c == 0 {
		c = SpeedOfSound
	}
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = 2 * pi * f * radius / c
	}
	return out
}

// KrLinear builds the kr vector for the nfft/2+1 bins of a real FFT of
// size nfft at sampling rate fs, spanning 0 to pi*fs*r/c. The first bin
// is exactly 0; consumers that divide by kr must guard it.
func KrLinear(radius, fs float64, nfft int, speedOfSound float64) ([]float64, error) {
	if nfft < 2 || nfft%2 != 0 {
		return nil, fmt.Errorf("sph: FFT size must be even and >= 2: %d", nfft)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("sph: sampling rate must be > 0: %f", fs)
	}
	c := speedOfSound
	if c == 0 {
		c = SpeedOfSound
	}
	bins := nfft/2 + 1
	out := make([]float64, bins)
	max := radius * pi * fs / c
	for i := range out {
		out[i] = max * float64(i) / float64(bins-1)
	}
	return out, nil
}

// FrequencyBins returns the nfft/2+1 bin center frequencies 0..fs/2.
func FrequencyBins(fs float64, nfft int) []float64 {
	bins := nfft/2 + 1
	out := make([]float64, bins)
	for i := range out {
		out[i] = fs / 2 * float64(i) / float64(bins-1)
	}
	return out
}
