package gen

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sfa/sph"
)

// minPLCBins is the smallest kr vector for which powerloss-compensation
// fading is meaningful.
const minPLCBins = 32

// FilterBank holds the designed radial filters, the predicted free-field
// on-axis response, and any advisory diagnostics collected during design.
type FilterBank struct {
	// Filters is indexed [order][frequency bin]. Row 0 may hold the
	// powerloss-compensated filter depending on the PLC mode.
	Filters [][]complex128
	// Beam is the normalized on-axis response per bin; unity means the
	// filter bank exactly inverts the array response.
	Beam []complex128
	// Warnings are advisory diagnostics; they never indicate failure.
	Warnings []string
}

// RadialFilter designs modal radial filters for orders 0..order over the
// given kr vector.
//
// Each filter row is the reciprocal of the array-extrapolation response
// at that order. With WithMaxGainDB the reciprocal is soft-limited
//
//	f = 2a/pi * |b| * arctan(pi / (2a*|b|)) / b,  a = 10^(dB/20)
//
// which compresses gain smoothly near response nulls while preserving
// phase. Powerloss compensation replaces or blends the order-0 row, see
// PLCMode. A leading kr bin of exactly 0 is substituted with the second
// bin before the design.
func RadialFilter(order int, kr sph.KR, ac sph.ArrayConfig, opts ...FilterOption) (*FilterBank, error) {
	if order < 0 {
		return nil, fmt.Errorf("gen: filter order must be >= 0: %d", order)
	}
	if !ac.Valid() {
		return nil, fmt.Errorf("gen: invalid array configuration: %d", ac)
	}
	if err := kr.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultFilterConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	bins := kr.Bins()
	krm := append([]float64(nil), kr.Mic...)
	krs := append([]float64(nil), kr.ScatterRow()...)

	// A zero leading bin would divide by zero inside the extrapolation.
	if krm[0] == 0 {
		if bins < 2 {
			return nil, fmt.Errorf("gen: cannot substitute zero kr bin in a single-bin vector")
		}
		krm[0] = krm[1]
	}
	if krs[0] == 0 && bins >= 2 {
		krs[0] = krs[1]
	}

	bank := &FilterBank{}

	limiterOn := cfg.maxGainDB != 0
	aMax := math.Pow(10, cfg.maxGainDB/20)

	responses := make([][]complex128, order+1)
	filters := make([][]complex128, order+1)
	for n := 0; n <= order; n++ {
		bn, err := sph.ArrayExtrapolation(n, krm, krs, ac, cfg.transducer)
		if err != nil {
			return nil, err
		}
		row := make([]complex128, bins)
		for i, b := range bn {
			ampli := complex(1, 0)
			if limiterOn {
				mag := cmplx.Abs(b)
				ampli = complex(2*aMax/math.Pi*mag*math.Atan(math.Pi/(2*aMax*mag)), 0)
			}
			row[i] = ampli / b
		}
		responses[n] = bn
		filters[n] = row
	}

	plc := cfg.plc
	if plc != PLCOff && bins < minPLCBins {
		plc = PLCOff
		bank.Warnings = append(bank.Warnings, fmt.Sprintf("gen: only %d kr bins, fewer than %d needed for PLC fading; PLC disabled", bins, minPLCBins))
	}

	if plc != PLCOff {
		xi := compensationCurve(responses, filters)
		switch plc {
		case PLCFullSpectrum:
			filters[0] = xi
		case PLCLowKr:
			blendLowKr(filters, xi, cfg, aMax, bank)
		}
	}

	// Predicted on-axis response, normalized by (order+1)^2.
	norm := complex(float64((order+1)*(order+1)), 0)
	beam := make([]complex128, bins)
	for n := 0; n <= order; n++ {
		weight := complex(float64(2*n+1), 0)
		for i := range beam {
			beam[i] += weight * responses[n][i] * filters[n][i]
		}
	}
	for i := range beam {
		beam[i] /= norm
	}

	bank.Filters = filters
	bank.Beam = beam
	return bank, nil
}

// compensationCurve computes the powerloss-compensated order-0 filter:
//
//	xi = (sum_n (2n+1)*(1 - f_n*b_n)) / b_0 + f_0
func compensationCurve(responses, filters [][]complex128) []complex128 {
	bins := len(filters[0])
	xi := make([]complex128, bins)
	for i := 0; i < bins; i++ {
		var sum complex128
		for n := range filters {
			sum += complex(float64(2*n+1), 0) * (1 - filters[n][i]*responses[n][i])
		}
		xi[i] = sum/responses[0][i] + filters[0][i]
	}
	return xi
}

// blendLowKr replaces the low-kr region of the order-0 filter with the
// compensated curve xi, fading linearly across a window centered on the
// bin where the two curves are closest.
func blendLowKr(filters [][]complex128, xi []complex128, cfg filterConfig, aMax float64, bank *FilterBank) {
	f0 := filters[0]
	bins := len(f0)

	// Crossover: minimum absolute distance between the two curves.
	crossover := 0
	minDist := math.Inf(1)
	for i := range f0 {
		d := cmplx.Abs(f0[i] - xi[i])
		if d < minDist {
			minDist = d
			crossover = i
		}
	}

	// Compensation gap in dB at the crossover.
	gap := 20 * math.Log10(cmplx.Abs(xi[crossover])/cmplx.Abs(f0[crossover]))
	if math.Abs(gap) > 20 {
		bank.Warnings = append(bank.Warnings, fmt.Sprintf("gen: PLC fade gap of %.1f dB is too large, no powerloss compensation applied", gap))
		return
	}
	if math.Abs(gap) > 5 {
		bank.Warnings = append(bank.Warnings, fmt.Sprintf("gen: PLC fade gap is large (%.1f dB)", gap))
	}

	fade := cfg.fadeover
	if fade == 0 {
		fade = bins / 100
		if cfg.maxGainDB > 0 {
			fade /= int(math.Ceil(aMax / 4))
		}
	}
	// Keep the fade region inside the valid bin range.
	if fade > crossover {
		fade = crossover
	}
	if fade > bins-1-crossover {
		fade = bins - 1 - crossover
	}

	lo := crossover - fade
	hi := crossover + fade
	for i := 0; i < lo; i++ {
		f0[i] = xi[i]
	}
	if hi > lo {
		span := float64(hi - lo)
		for i := lo; i <= hi; i++ {
			t := complex(float64(i-lo)/span, 0)
			f0[i] = (1-t)*xi[i] + t*f0[i]
		}
	} else {
		// Degenerate fade width: hard switch at the crossover.
		f0[crossover] = xi[crossover]
	}
}
