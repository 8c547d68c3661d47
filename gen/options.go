package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-sfa/sph"
)

// PLCMode selects the on-axis powerloss compensation applied to the
// order-0 radial filter.
type PLCMode int

const (
	// PLCOff applies no compensation.
	PLCOff PLCMode = iota
	// PLCFullSpectrum replaces the order-0 filter with the compensated
	// curve over the whole kr spectrum.
	PLCFullSpectrum
	// PLCLowKr blends into the compensated curve below the crossover bin
	// only.
	PLCLowKr

	plcModeCount // sentinel for validation
)

var plcModeNames = [plcModeCount]string{"Off", "FullSpectrum", "LowKr"}

// String returns the name of the compensation mode.
func (m PLCMode) String() string {
	if m >= 0 && m < plcModeCount {
		return plcModeNames[m]
	}
	return fmt.Sprintf("PLCMode(%d)", m)
}

// Valid reports whether m is a known compensation mode.
func (m PLCMode) Valid() bool {
	return m >= 0 && m < plcModeCount
}

type filterConfig struct {
	maxGainDB  float64
	plc        PLCMode
	fadeover   int
	transducer sph.TransducerType
}

func defaultFilterConfig() filterConfig {
	return filterConfig{
		maxGainDB:  0,
		plc:        PLCOff,
		fadeover:   0,
		transducer: sph.TransducerPressure,
	}
}

// FilterOption configures RadialFilter.
type FilterOption func(*filterConfig) error

// WithMaxGainDB sets the maximum modal amplification in dB. A value of 0
// disables the soft limiter (default).
func WithMaxGainDB(db float64) FilterOption {
	return func(cfg *filterConfig) error {
		if db < 0 {
			return fmt.Errorf("gen: maximum gain must be >= 0 dB: %f", db)
		}
		cfg.maxGainDB = db
		return nil
	}
}

// WithPLC sets the powerloss compensation mode (default PLCOff).
func WithPLC(mode PLCMode) FilterOption {
	return func(cfg *filterConfig) error {
		if !mode.Valid() {
			return fmt.Errorf("gen: invalid PLC mode: %d", mode)
		}
		cfg.plc = mode
		return nil
	}
}

// WithFadeover sets the number of bins to fade over on either side of the
// PLC crossover bin. 0 selects an automatic width (default).
func WithFadeover(bins int) FilterOption {
	return func(cfg *filterConfig) error {
		if bins < 0 {
			return fmt.Errorf("gen: fadeover bin count must be >= 0: %d", bins)
		}
		cfg.fadeover = bins
		return nil
	}
}

// WithTransducer sets the transducer type used for the array response
// (default pressure).
func WithTransducer(tt sph.TransducerType) FilterOption {
	return func(cfg *filterConfig) error {
		if !tt.Valid() {
			return fmt.Errorf("gen: invalid transducer type: %d", tt)
		}
		cfg.transducer = tt
		return nil
	}
}

type noiseConfig struct {
	rng   *rand.Rand
	bases [][]complex128
}

// NoiseOption configures the noise injectors.
type NoiseOption func(*noiseConfig) error

// WithRNG sets a deterministic random number generator for reproducible
// noise sequences.
func WithRNG(rng *rand.Rand) NoiseOption {
	return func(cfg *noiseConfig) error {
		cfg.rng = rng
		return nil
	}
}

// WithBases supplies precomputed spherical-harmonic bases to
// SphericalNoise, indexed [point][flattened (n, m) index].
func WithBases(bases [][]complex128) NoiseOption {
	return func(cfg *noiseConfig) error {
		cfg.bases = bases
		return nil
	}
}

func (cfg *noiseConfig) source() *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
