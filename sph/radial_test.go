package sph

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestArrayExtrapolationOpenPressure(t *testing.T) {
	kr := []float64{0.5, 1.2, 3.3}
	for n := 0; n <= 4; n++ {
		bn, err := ArrayExtrapolation(n, kr, nil, ArrayOpen, TransducerPressure)
		if err != nil {
			t.Fatalf("ArrayExtrapolation error: %v", err)
		}
		for i, x := range kr {
			want := complex(4*math.Pi*SphBesselJ(n, x), 0) * iPow(n)
			if cmplx.Abs(bn[i]-want) > 1e-12 {
				t.Errorf("n=%d bin=%d: got %v want %v", n, i, bn[i], want)
			}
		}
	}
}

func TestArrayExtrapolationDualPicksLarger(t *testing.T) {
	krm := []float64{1.0}
	krs := []float64{2.0}

	bn, err := ArrayExtrapolation(2, krm, krs, ArrayDual, TransducerPressure)
	if err != nil {
		t.Fatalf("ArrayExtrapolation error: %v", err)
	}

	b1 := math.Abs(SphBesselJ(2, 1.0))
	b2 := math.Abs(SphBesselJ(2, 2.0))
	want := math.Max(b1, b2) * 4 * math.Pi
	if math.Abs(cmplx.Abs(bn[0])-want) > 1e-12 {
		t.Errorf("|bn| = %g, want %g", cmplx.Abs(bn[0]), want)
	}
}

func TestArrayExtrapolationRigidFinite(t *testing.T) {
	kr := []float64{0.2, 1.7, 4.9}
	for _, tt := range []TransducerType{TransducerPressure, TransducerVelocity} {
		bn, err := ArrayExtrapolation(3, kr, kr, ArrayRigid, tt)
		if err != nil {
			t.Fatalf("ArrayExtrapolation(%v) error: %v", tt, err)
		}
		for i, v := range bn {
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				t.Errorf("transducer %v bin %d not finite: %v", tt, i, v)
			}
		}
	}
}

func TestArrayExtrapolationZeroScatterBin(t *testing.T) {
	// The scattering term must vanish at krs = 0 instead of producing NaN.
	bn, err := ArrayExtrapolation(1, []float64{0.5}, []float64{0}, ArrayRigid, TransducerPressure)
	if err != nil {
		t.Fatalf("ArrayExtrapolation error: %v", err)
	}
	want := complex(4*math.Pi*SphBesselJ(1, 0.5), 0) * iPow(1)
	if cmplx.Abs(bn[0]-want) > 1e-12 {
		t.Errorf("got %v, want open response %v", bn[0], want)
	}
}

func TestArrayExtrapolationErrors(t *testing.T) {
	kr := []float64{1, 2}
	tests := []struct {
		name string
		call func() error
	}{
		{"invalid config", func() error {
			_, err := ArrayExtrapolation(0, kr, nil, ArrayConfig(7), TransducerPressure)
			return err
		}},
		{"invalid transducer", func() error {
			_, err := ArrayExtrapolation(0, kr, nil, ArrayOpen, TransducerType(7))
			return err
		}},
		{"dual velocity", func() error {
			_, err := ArrayExtrapolation(0, kr, kr, ArrayDual, TransducerVelocity)
			return err
		}},
		{"row mismatch", func() error {
			_, err := ArrayExtrapolation(0, kr, []float64{1}, ArrayRigid, TransducerPressure)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.call() == nil {
				t.Fatal("expected error")
			}
		})
	}
}
