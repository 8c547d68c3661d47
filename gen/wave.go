package gen

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sfa/sph"
)

// Default synthesis parameters.
const (
	DefaultSampleRate = 48000.0
	DefaultNFFT       = 512
	DefaultDistance   = 1.0
)

// WaveConfig describes an idealized wavefront impinging on a spherical
// array. Zero values for SampleRate, NFFT, Distance and SpeedOfSound
// select the package defaults; a zero ScatterRadius reuses ArrayRadius.
type WaveConfig struct {
	// Order is the maximum transform order; the coefficient matrix has
	// (Order+1)^2 rows.
	Order int
	// Azimuth and Colatitude give the source direction in radians.
	Azimuth    float64
	Colatitude float64
	// ArrayRadius is the microphone radius in meters.
	ArrayRadius float64
	// ScatterRadius is the scatterer radius (rigid) or second sphere
	// radius (dual) in meters.
	ScatterRadius float64

	ArrayConfig    sph.ArrayConfig
	TransducerType sph.TransducerType
	WaveType       sph.WaveType

	// Distance is the source distance in meters. Plane waves require it
	// to exceed ArrayRadius strictly.
	Distance float64
	// Delay shifts the wavefront arrival in seconds.
	Delay float64

	SampleRate   float64
	NFFT         int
	SpeedOfSound float64
}

// withDefaults returns cfg with zero-valued parameters resolved.
func (cfg WaveConfig) withDefaults() WaveConfig {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.NFFT == 0 {
		cfg.NFFT = DefaultNFFT
	}
	if cfg.Distance == 0 {
		cfg.Distance = DefaultDistance
	}
	if cfg.SpeedOfSound == 0 {
		cfg.SpeedOfSound = sph.SpeedOfSound
	}
	if cfg.ScatterRadius == 0 {
		cfg.ScatterRadius = cfg.ArrayRadius
	}
	return cfg
}

// Bins returns the number of frequency bins, NFFT/2+1, after defaults.
func (cfg WaveConfig) Bins() int {
	return cfg.withDefaults().NFFT/2 + 1
}

// Segment restricts an IdealWave call to a transform order and a
// contiguous, inclusive frequency-bin range.
type Segment struct {
	Order    int
	LowerBin int
	UpperBin int
}

// FullSegment returns the segment covering every bin at the full
// transform order of cfg.
func (cfg WaveConfig) FullSegment() Segment {
	return Segment{Order: cfg.Order, LowerBin: 0, UpperBin: cfg.Bins() - 1}
}

func (cfg WaveConfig) validate(seg Segment) error {
	if cfg.Order < 0 {
		return fmt.Errorf("gen: transform order must be >= 0: %d", cfg.Order)
	}
	if cfg.NFFT < 2 || cfg.NFFT%2 != 0 {
		return fmt.Errorf("gen: FFT size must be even and >= 2: %d", cfg.NFFT)
	}
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("gen: sampling rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.ArrayRadius <= 0 {
		return fmt.Errorf("gen: array radius must be > 0: %f", cfg.ArrayRadius)
	}
	bins := cfg.NFFT/2 + 1
	if seg.UpperBin < seg.LowerBin {
		return fmt.Errorf("gen: upper segment limit %d below lower limit %d", seg.UpperBin, seg.LowerBin)
	}
	if seg.LowerBin < 0 || seg.LowerBin > bins-1 {
		return fmt.Errorf("gen: lower segment limit must be between 0 and %d: %d", bins-1, seg.LowerBin)
	}
	if seg.UpperBin < 0 || seg.UpperBin > bins-1 {
		return fmt.Errorf("gen: upper segment limit must be between 0 and %d: %d", bins-1, seg.UpperBin)
	}
	if seg.Order < 0 || seg.Order > cfg.Order {
		return fmt.Errorf("gen: segment order %d exceeds transform order %d", seg.Order, cfg.Order)
	}
	if !cfg.WaveType.Valid() {
		return fmt.Errorf("gen: invalid wave type: %d", cfg.WaveType)
	}
	if !cfg.ArrayConfig.Valid() {
		return fmt.Errorf("gen: invalid array configuration: %d", cfg.ArrayConfig)
	}
	if !cfg.TransducerType.Valid() {
		return fmt.Errorf("gen: invalid transducer type: %d", cfg.TransducerType)
	}
	if cfg.ArrayConfig == sph.ArrayDual && cfg.TransducerType != sph.TransducerPressure {
		return fmt.Errorf("gen: dual sphere configuration requires pressure transducers")
	}
	if cfg.Delay*cfg.SampleRate > float64(cfg.NFFT)/2 {
		return fmt.Errorf("gen: delay %g s is too large for NFFT %d, choose delay < NFFT/(2*fs)", cfg.Delay, cfg.NFFT)
	}
	if cfg.WaveType == sph.WavePlane && cfg.Distance <= cfg.ArrayRadius {
		return fmt.Errorf("gen: plane-wave source distance %g must exceed the array radius %g", cfg.Distance, cfg.ArrayRadius)
	}
	if cfg.WaveType == sph.WaveSpherical && cfg.Distance <= 0 {
		return fmt.Errorf("gen: spherical-wave source distance must be > 0: %f", cfg.Distance)
	}
	return nil
}

// IdealWave computes the spatial Fourier coefficients of an idealized
// wavefront hitting the configured array.
//
// The result is indexed [flattened (n, m) index][frequency bin] with
// (cfg.Order+1)^2 rows. Only orders up to seg.Order and bins within
// [seg.LowerBin, seg.UpperBin] are populated; everything else is zero,
// so segment contributions from several calls can be summed directly.
func IdealWave(cfg WaveConfig, seg Segment) ([][]complex128, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(seg); err != nil {
		return nil, err
	}

	bins := cfg.NFFT/2 + 1
	freqs := sph.FrequencyBins(cfg.SampleRate, cfg.NFFT)
	krm := sph.Kr(freqs, cfg.ArrayRadius, cfg.SpeedOfSound)
	krs := sph.Kr(freqs, cfg.ScatterRadius, cfg.SpeedOfSound)

	// A zero leading bin is degenerate for the radial terms.
	if krm[0] == 0 && bins >= 2 {
		krm[0] = krm[1]
		krs[0] = krs[1]
	}

	// Per-bin time-shift phase exp(-i*omega*delay).
	timeShift := make([]complex128, bins)
	for i, f := range freqs {
		timeShift[i] = cmplx.Exp(complex(0, -2*math.Pi*f*cfg.Delay))
	}

	var kDist []float64
	if cfg.WaveType == sph.WaveSpherical {
		kDist = sph.Kr(freqs, cfg.Distance, cfg.SpeedOfSound)
		if kDist[0] == 0 && bins >= 2 {
			kDist[0] = kDist[1]
		}
	}

	// Per-order radial term over the segment's bin range.
	radial := make([][]complex128, seg.Order+1)
	for n := 0; n <= seg.Order; n++ {
		bn, err := sph.ArrayExtrapolation(n, krm[seg.LowerBin:seg.UpperBin+1], krs[seg.LowerBin:seg.UpperBin+1], cfg.ArrayConfig, cfg.TransducerType)
		if err != nil {
			return nil, err
		}
		row := make([]complex128, len(bn))
		for i, b := range bn {
			bin := seg.LowerBin + i
			v := timeShift[bin] * b
			if cfg.WaveType == sph.WaveSpherical {
				// Outgoing spherical-wave Green's function term.
				omega := 2 * math.Pi * freqs[bin]
				v *= complex(0, -4*math.Pi*omega/cfg.SpeedOfSound) * sph.SphHankel2(n, kDist[bin])
			}
			row[i] = v
		}
		radial[n] = row
	}

	size := (cfg.Order + 1) * (cfg.Order + 1)
	coeffs := make([][]complex128, size)
	for idx := range coeffs {
		coeffs[idx] = make([]complex128, bins)
	}

	idx := 0
	for n := 0; n <= seg.Order; n++ {
		for m := -n; m <= n; m++ {
			y := cmplx.Conj(sph.Harm(m, n, cfg.Azimuth, cfg.Colatitude))
			dst := coeffs[idx]
			for i, r := range radial[n] {
				dst[seg.LowerBin+i] = y * r
			}
			idx++
		}
	}
	return coeffs, nil
}
