package sph

import (
	"math"
	"testing"
)

func TestCart2SphAxes(t *testing.T) {
	tests := []struct {
		name            string
		x, y, z         float64
		wantAz, wantCol float64
	}{
		{"+x", 1, 0, 0, 0, math.Pi / 2},
		{"+y", 0, 1, 0, math.Pi / 2, math.Pi / 2},
		{"-x", -1, 0, 0, math.Pi, math.Pi / 2},
		{"+z", 0, 0, 1, 0, 0},
		{"-z", 0, 0, -1, 0, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			az, col, r := Cart2Sph(tt.x, tt.y, tt.z)
			if math.Abs(r-1) > 1e-15 {
				t.Errorf("radius = %g, want 1", r)
			}
			if math.Abs(col-tt.wantCol) > 1e-15 {
				t.Errorf("colatitude = %g, want %g", col, tt.wantCol)
			}
			if math.Abs(WrapAzimuth(az)-tt.wantAz) > 1e-15 {
				t.Errorf("azimuth = %g, want %g", WrapAzimuth(az), tt.wantAz)
			}
		})
	}
}

func TestCart2SphRoundTrip(t *testing.T) {
	pts := [][3]float64{{0.3, -0.4, 0.8}, {-1.2, 2.5, -0.7}, {0.01, 0.02, -3}}
	for _, p := range pts {
		az, col, r := Cart2Sph(p[0], p[1], p[2])
		x, y, z := Sph2Cart(az, col, r)
		if math.Abs(x-p[0]) > 1e-12 || math.Abs(y-p[1]) > 1e-12 || math.Abs(z-p[2]) > 1e-12 {
			t.Errorf("round trip of %v gave (%g, %g, %g)", p, x, y, z)
		}
	}
}

func TestWrapAzimuth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := WrapAzimuth(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAzimuth(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestKrLinear(t *testing.T) {
	kr, err := KrLinear(0.05, 48000, 512, 0)
	if err != nil {
		t.Fatalf("KrLinear error: %v", err)
	}
	if len(kr) != 257 {
		t.Fatalf("len = %d, want 257", len(kr))
	}
	if kr[0] != 0 {
		t.Errorf("first bin = %g, want 0", kr[0])
	}
	want := 0.05 * math.Pi * 48000 / SpeedOfSound
	if math.Abs(kr[256]-want) > 1e-12 {
		t.Errorf("last bin = %g, want %g", kr[256], want)
	}
	for i := 1; i < len(kr); i++ {
		if kr[i] < kr[i-1] {
			t.Fatalf("kr not monotonic at bin %d", i)
		}
	}
}

func TestKrMatchesFrequencyBins(t *testing.T) {
	// KrLinear must agree with Kr over the real-FFT bin frequencies.
	r := 0.032
	fs := 44100.0
	nfft := 256

	linear, err := KrLinear(r, fs, nfft, 0)
	if err != nil {
		t.Fatalf("KrLinear error: %v", err)
	}
	direct := Kr(FrequencyBins(fs, nfft), r, 0)
	if len(direct) != len(linear) {
		t.Fatalf("length mismatch: %d vs %d", len(direct), len(linear))
	}
	for i := range direct {
		if math.Abs(direct[i]-linear[i]) > 1e-12 {
			t.Fatalf("bin %d: Kr=%g KrLinear=%g", i, direct[i], linear[i])
		}
	}
}

func TestKrLinearRejectsBadInput(t *testing.T) {
	if _, err := KrLinear(0.05, 48000, 511, 0); err == nil {
		t.Error("expected error for odd FFT size")
	}
	if _, err := KrLinear(0.05, 0, 512, 0); err == nil {
		t.Error("expected error for zero sampling rate")
	}
}
