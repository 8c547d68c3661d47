package sph

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{ArrayOpen.String(), "Open"},
		{ArrayRigid.String(), "Rigid"},
		{ArrayDual.String(), "Dual"},
		{ArrayConfig(9).String(), "ArrayConfig(9)"},
		{TransducerPressure.String(), "Pressure"},
		{TransducerVelocity.String(), "Velocity"},
		{TransducerType(9).String(), "TransducerType(9)"},
		{WavePlane.String(), "Plane"},
		{WaveSpherical.String(), "Spherical"},
		{WaveType(9).String(), "WaveType(9)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEnumValid(t *testing.T) {
	if !ArrayRigid.Valid() || ArrayConfig(-1).Valid() || ArrayConfig(3).Valid() {
		t.Error("ArrayConfig validity broken")
	}
	if !TransducerVelocity.Valid() || TransducerType(2).Valid() {
		t.Error("TransducerType validity broken")
	}
	if !WaveSpherical.Valid() || WaveType(2).Valid() {
		t.Error("WaveType validity broken")
	}
}

func TestKRValidate(t *testing.T) {
	tests := []struct {
		name    string
		kr      KR
		wantErr bool
	}{
		{"single row", KR{Mic: []float64{0, 1, 2}}, false},
		{"two rows", KR{Mic: []float64{0, 1}, Scatter: []float64{0, 2}}, false},
		{"empty", KR{}, true},
		{"row mismatch", KR{Mic: []float64{0, 1}, Scatter: []float64{0}}, true},
		{"decreasing", KR{Mic: []float64{1, 0.5}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kr.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKRScatterRow(t *testing.T) {
	kr := KR{Mic: []float64{1, 2}}
	if got := kr.ScatterRow(); &got[0] != &kr.Mic[0] {
		t.Error("ScatterRow should fall back to the microphone row")
	}

	kr.Scatter = []float64{3, 4}
	if got := kr.ScatterRow(); got[0] != 3 {
		t.Error("ScatterRow should return the scatter row when set")
	}
}
