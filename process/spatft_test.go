package process

import (
	"testing"

	"github.com/cwbudde/algo-sfa/grid"
	"github.com/cwbudde/algo-sfa/internal/testutil"
)

func TestSpatFTRoundTrip(t *testing.T) {
	// Project deterministic coefficients to the spatial domain and back.
	// Lebedev degree 26 resolves order 3, so a round trip up to that
	// order must reproduce the coefficients.
	g, nMax, err := grid.Lebedev(26)
	if err != nil {
		t.Fatalf("Lebedev error: %v", err)
	}
	if nMax != 3 {
		t.Fatalf("unexpected max order %d", nMax)
	}

	size := (nMax + 1) * (nMax + 1)
	bins := 4
	coeffs := make([][]complex128, size)
	for idx := range coeffs {
		row := make([]complex128, bins)
		for b := range row {
			row[b] = complex(float64(idx+1)*0.25, float64(b)-1.5)
		}
		coeffs[idx] = row
	}

	signals, err := ISpatFT(coeffs, g)
	if err != nil {
		t.Fatalf("ISpatFT error: %v", err)
	}
	if len(signals) != len(g) {
		t.Fatalf("ISpatFT returned %d rows, want %d", len(signals), len(g))
	}

	back, err := SpatFT(signals, g, nMax)
	if err != nil {
		t.Fatalf("SpatFT error: %v", err)
	}

	for idx := range coeffs {
		testutil.RequireSpectrumNearlyEqual(t, back[idx], coeffs[idx], 1e-10)
	}
}

func TestISpatFTRejectsBadShapes(t *testing.T) {
	g, _, err := grid.Lebedev(6)
	if err != nil {
		t.Fatalf("Lebedev error: %v", err)
	}

	if _, err := ISpatFT(nil, g); err == nil {
		t.Error("expected error for empty coefficients")
	}

	// 3 rows is not a square count.
	bad := [][]complex128{{1}, {1}, {1}}
	if _, err := ISpatFT(bad, g); err == nil {
		t.Error("expected error for non-square row count")
	}

	ragged := [][]complex128{{1, 2}, {1}, {1, 2}, {1, 2}}
	if _, err := ISpatFT(ragged, g); err == nil {
		t.Error("expected error for ragged matrix")
	}

	ok := [][]complex128{{1}, {1}, {1}, {1}}
	if _, err := ISpatFT(ok, nil); err == nil {
		t.Error("expected error for empty grid")
	}
}

func TestSpatFTRejectsBadShapes(t *testing.T) {
	g, _, err := grid.Lebedev(6)
	if err != nil {
		t.Fatalf("Lebedev error: %v", err)
	}

	if _, err := SpatFT(make([][]complex128, 3), g, 1); err == nil {
		t.Error("expected error for signal/grid mismatch")
	}
	if _, err := SpatFT(make([][]complex128, len(g)), g, -1); err == nil {
		t.Error("expected error for negative order")
	}
}
