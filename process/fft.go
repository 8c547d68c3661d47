package process

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFTBlock transforms per-channel time-domain signals into half-spectrum
// frequency blocks of len/2+1 bins. All channels must share one even
// length.
func FFTBlock(signals [][]float64) ([][]complex128, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("process: no input channels")
	}
	nfft := len(signals[0])
	if nfft < 2 || nfft%2 != 0 {
		return nil, fmt.Errorf("process: FFT size must be even and >= 2: %d", nfft)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("process: failed to create FFT plan: %w", err)
	}

	bins := nfft/2 + 1
	out := make([][]complex128, len(signals))
	buf := make([]complex128, nfft)
	spec := make([]complex128, nfft)

	for ch, sig := range signals {
		if len(sig) != nfft {
			return nil, fmt.Errorf("process: channel %d length %d, want %d", ch, len(sig), nfft)
		}
		for i, v := range sig {
			buf[i] = complex(v, 0)
		}
		if err := plan.Forward(spec, buf); err != nil {
			return nil, fmt.Errorf("process: forward FFT failed: %w", err)
		}
		row := make([]complex128, bins)
		copy(row, spec[:bins])
		out[ch] = row
	}
	return out, nil
}

// IFFTBlock transforms half-spectrum frequency blocks back into real
// time-domain signals of length 2*(bins-1), reconstructing the negative
// frequencies by Hermitian symmetry.
func IFFTBlock(blocks [][]complex128) ([][]float64, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("process: no input channels")
	}
	bins := len(blocks[0])
	if bins < 2 {
		return nil, fmt.Errorf("process: need at least 2 frequency bins: %d", bins)
	}
	nfft := 2 * (bins - 1)

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("process: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, nfft)
	buf := make([]complex128, nfft)
	out := make([][]float64, len(blocks))

	for ch, block := range blocks {
		if len(block) != bins {
			return nil, fmt.Errorf("process: channel %d has %d bins, want %d", ch, len(block), bins)
		}
		copy(spec[:bins], block)
		for i := 1; i < bins-1; i++ {
			spec[nfft-i] = cmplx.Conj(block[i])
		}
		if err := plan.Inverse(buf, spec); err != nil {
			return nil, fmt.Errorf("process: inverse FFT failed: %w", err)
		}
		row := make([]float64, nfft)
		for i := range row {
			row[i] = real(buf[i])
		}
		out[ch] = row
	}
	return out, nil
}
