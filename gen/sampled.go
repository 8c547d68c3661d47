package gen

import (
	"fmt"
	"math"

	"github.com/cheggaaa/pb"

	"github.com/cwbudde/algo-sfa/grid"
	"github.com/cwbudde/algo-sfa/process"
	"github.com/cwbudde/algo-sfa/sph"
)

// Order segmentation limits. Orders below the floor are delivered at the
// floor; orders above the configured ceiling are clipped with a warning.
const (
	MinSegmentOrder   = 70
	DefaultOrderLimit = 120
)

// DefaultRadius is the microphone radius used when SampledConfig leaves
// Radius zero.
const DefaultRadius = 0.01

// SampledConfig describes a discretely sampled wave capture. Zero values
// for Radius, Grid, SampleRate, NFFT, Distance, SpeedOfSound and
// OrderLimit select the package defaults.
type SampledConfig struct {
	// Radius is the microphone radius in meters.
	Radius float64
	// ScatterRadius enables a second kr row for rigid/dual
	// configurations when > 0.
	ScatterRadius float64
	// Grid holds the angular sampling positions; nil selects the
	// Lebedev grid of degree 110.
	Grid grid.Grid

	ArrayConfig    sph.ArrayConfig
	TransducerType sph.TransducerType
	WaveType       sph.WaveType

	// Azimuth and Colatitude give the source direction in radians.
	Azimuth    float64
	Colatitude float64
	// Distance is the source distance in meters (spherical waves).
	Distance float64
	// Delay shifts the wavefront arrival in seconds.
	Delay float64

	SampleRate   float64
	NFFT         int
	SpeedOfSound float64

	// OrderLimit caps the transform order of any segment.
	OrderLimit int
	// Progress shows a terminal progress bar over the segment groups.
	Progress bool
}

// SampledField is the result of SampledWave: per-grid-point complex
// pressures with the kr vector they were synthesized for.
type SampledField struct {
	// Pressures is indexed [grid point][frequency bin].
	Pressures [][]complex128
	// KR holds the NFFT/2+1-bin wavenumber-radius rows.
	KR sph.KR
	// Warnings are advisory diagnostics; they never indicate failure.
	Warnings []string
}

// SampledWave emulates a discretely sampled wavefront capture.
//
// The transform order required for numerical validity grows with
// frequency as ceil(2*kr), so the spectrum is split into contiguous bin
// groups sharing one clipped order, each synthesized by IdealWave and
// summed into a single coefficient matrix before the inverse spatial
// transform. Aliasing artifacts of the finite grid are intentionally
// observable in the result.
func SampledWave(cfg SampledConfig) (*SampledField, error) {
	if cfg.Radius == 0 {
		cfg.Radius = DefaultRadius
	}
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
	if cfg.OrderLimit == 0 {
		cfg.OrderLimit = DefaultOrderLimit
	}
	if cfg.Grid == nil {
		g, _, err := grid.Lebedev(110)
		if err != nil {
			return nil, err
		}
		cfg.Grid = g
	}
	if cfg.OrderLimit < MinSegmentOrder {
		return nil, fmt.Errorf("gen: order limit %d below the segmentation floor %d", cfg.OrderLimit, MinSegmentOrder)
	}

	krm, err := sph.KrLinear(cfg.Radius, cfg.SampleRate, cfg.NFFT, cfg.SpeedOfSound)
	if err != nil {
		return nil, err
	}
	kr := sph.KR{Mic: krm}
	krRef := krm
	if cfg.ScatterRadius > 0 {
		krs, err := sph.KrLinear(cfg.ScatterRadius, cfg.SampleRate, cfg.NFFT, cfg.SpeedOfSound)
		if err != nil {
			return nil, err
		}
		kr.Scatter = krs
		if cfg.ScatterRadius > cfg.Radius {
			krRef = krs
		}
	}

	field := &SampledField{KR: kr}

	// Required transform order per bin, clipped to the deliverable range.
	bins := len(krRef)
	required := make([]int, bins)
	maxRequired := 0
	for i, v := range krRef {
		rq := int(math.Ceil(2 * v))
		if rq > maxRequired {
			maxRequired = rq
		}
		if rq < MinSegmentOrder {
			rq = MinSegmentOrder
		}
		if rq > cfg.OrderLimit {
			rq = cfg.OrderLimit
		}
		required[i] = rq
	}
	fullOrder := required[bins-1]
	if maxRequired > fullOrder {
		field.Warnings = append(field.Warnings, fmt.Sprintf("gen: requested wave needs a minimum order of %d but only order %d can be delivered", maxRequired, fullOrder))
	}

	// Group contiguous bins sharing one clipped order. kr is
	// non-decreasing, so equal orders always form one run.
	type segGroup struct {
		order  int
		lo, hi int
	}
	var groups []segGroup
	for i := 0; i < bins; {
		j := i
		for j+1 < bins && required[j+1] == required[i] {
			j++
		}
		groups = append(groups, segGroup{order: required[i], lo: i, hi: j})
		i = j + 1
	}

	var bar *pb.ProgressBar
	if cfg.Progress {
		bar = pb.StartNew(len(groups)).Prefix("sampledWave")
	}

	waveCfg := WaveConfig{
		Order:          fullOrder,
		Azimuth:        cfg.Azimuth,
		Colatitude:     cfg.Colatitude,
		ArrayRadius:    cfg.Radius,
		ScatterRadius:  cfg.ScatterRadius,
		ArrayConfig:    cfg.ArrayConfig,
		TransducerType: cfg.TransducerType,
		WaveType:       cfg.WaveType,
		Distance:       cfg.Distance,
		Delay:          cfg.Delay,
		SampleRate:     cfg.SampleRate,
		NFFT:           cfg.NFFT,
		SpeedOfSound:   cfg.SpeedOfSound,
	}

	// Explicit reduce: every segment yields a sparse contribution that
	// is summed into one pre-sized matrix.
	size := (fullOrder + 1) * (fullOrder + 1)
	coeffs := make([][]complex128, size)
	for idx := range coeffs {
		coeffs[idx] = make([]complex128, bins)
	}
	for _, sg := range groups {
		part, err := IdealWave(waveCfg, Segment{Order: sg.order, LowerBin: sg.lo, UpperBin: sg.hi})
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return nil, err
		}
		for idx := range part {
			dst := coeffs[idx]
			for b := sg.lo; b <= sg.hi; b++ {
				dst[b] += part[idx][b]
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	pressures, err := process.ISpatFT(coeffs, cfg.Grid)
	if err != nil {
		return nil, err
	}
	field.Pressures = pressures
	return field, nil
}
