package gen

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-sfa/grid"
	"github.com/cwbudde/algo-sfa/sph"
)

func TestWhiteNoiseShapeAndInputUntouched(t *testing.T) {
	const bins = 17
	in := make([][]complex128, 3)
	for ch := range in {
		in[ch] = make([]complex128, bins)
		for i := range in[ch] {
			in[ch][i] = complex(float64(ch), float64(i))
		}
	}

	out, err := WhiteNoise(in, -40, WithRNG(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("WhiteNoise error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d channels, want %d", len(out), len(in))
	}
	for ch := range out {
		if len(out[ch]) != bins {
			t.Fatalf("channel %d has %d bins, want %d", ch, len(out[ch]), bins)
		}
		for i := range out[ch] {
			if in[ch][i] != complex(float64(ch), float64(i)) {
				t.Fatal("input block was modified")
			}
			if out[ch][i] == in[ch][i] {
				t.Fatalf("channel %d bin %d unchanged by noise", ch, i)
			}
		}
	}
}

func TestWhiteNoiseLevelCalibration(t *testing.T) {
	// For a single channel the uniform time-domain noise is non-negative,
	// so its DC bin equals nfft times the calibrated mean amplitude.
	const (
		bins    = 65
		levelDB = -20.0
	)
	nfft := 2*bins - 2
	silence := make([]complex128, bins)

	out, err := WhiteNoiseChannel(silence, levelDB, WithRNG(rand.New(rand.NewPCG(7, 9))))
	if err != nil {
		t.Fatalf("WhiteNoiseChannel error: %v", err)
	}

	want := float64(nfft) * math.Pow(10, levelDB/20)
	if got := real(out[0]); math.Abs(got-want) > 1e-9*want {
		t.Fatalf("DC bin = %g, want %g", got, want)
	}
	if got := imag(out[0]); math.Abs(got) > 1e-12 {
		t.Fatalf("DC bin has imaginary part %g", got)
	}
}

func TestWhiteNoiseReproducible(t *testing.T) {
	silence := make([]complex128, 33)

	a, err := WhiteNoiseChannel(silence, -30, WithRNG(rand.New(rand.NewPCG(3, 4))))
	if err != nil {
		t.Fatalf("WhiteNoiseChannel error: %v", err)
	}
	b, err := WhiteNoiseChannel(silence, -30, WithRNG(rand.New(rand.NewPCG(3, 4))))
	if err != nil {
		t.Fatalf("WhiteNoiseChannel error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs differ at bin %d", i)
		}
	}

	c, err := WhiteNoiseChannel(silence, -30, WithRNG(rand.New(rand.NewPCG(5, 6))))
	if err != nil {
		t.Fatalf("WhiteNoiseChannel error: %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestWhiteNoiseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   [][]complex128
	}{
		{"empty block", nil},
		{"single bin", [][]complex128{make([]complex128, 1)}},
		{"ragged block", [][]complex128{make([]complex128, 8), make([]complex128, 7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WhiteNoise(tt.in, -20); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSphericalNoiseReproducible(t *testing.T) {
	g, _, err := grid.Lebedev(14)
	if err != nil {
		t.Fatalf("Lebedev: %v", err)
	}
	az, col := g.Azimuths(), g.Colatitudes()

	a, err := SphericalNoise(az, col, 3, WithRNG(rand.New(rand.NewPCG(11, 12))))
	if err != nil {
		t.Fatalf("SphericalNoise error: %v", err)
	}
	if len(a) != len(g) {
		t.Fatalf("got %d values, want %d", len(a), len(g))
	}
	b, err := SphericalNoise(az, col, 3, WithRNG(rand.New(rand.NewPCG(11, 12))))
	if err != nil {
		t.Fatalf("SphericalNoise error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs differ at point %d", i)
		}
		if cmplx.IsNaN(a[i]) || cmplx.IsInf(a[i]) {
			t.Fatalf("point %d not finite: %v", i, a[i])
		}
	}
}

func TestSphericalNoiseWithBases(t *testing.T) {
	g, _, err := grid.Lebedev(14)
	if err != nil {
		t.Fatalf("Lebedev: %v", err)
	}
	az, col := g.Azimuths(), g.Colatitudes()
	bases := sph.HarmAll(3, az, col)

	a, err := SphericalNoise(az, col, 3, WithRNG(rand.New(rand.NewPCG(21, 22))))
	if err != nil {
		t.Fatalf("SphericalNoise error: %v", err)
	}
	b, err := SphericalNoise(az, col, 3, WithRNG(rand.New(rand.NewPCG(21, 22))), WithBases(bases))
	if err != nil {
		t.Fatalf("SphericalNoise error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("precomputed bases diverge at point %d", i)
		}
	}
}

func TestSphericalNoiseErrors(t *testing.T) {
	az := []float64{0, 1, 2}
	col := []float64{1, 1, 1}

	tests := []struct {
		name string
		call func() error
	}{
		{"negative order", func() error {
			_, err := SphericalNoise(az, col, -1)
			return err
		}},
		{"length mismatch", func() error {
			_, err := SphericalNoise(az, col[:2], 2)
			return err
		}},
		{"empty grid", func() error {
			_, err := SphericalNoise(nil, nil, 2)
			return err
		}},
		{"bases point count mismatch", func() error {
			_, err := SphericalNoise(az, col, 2, WithBases(make([][]complex128, 2)))
			return err
		}},
		{"bases too narrow", func() error {
			narrow := [][]complex128{
				make([]complex128, 4),
				make([]complex128, 4),
				make([]complex128, 4),
			}
			_, err := SphericalNoise(az, col, 2, WithBases(narrow))
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
