package sph

import "fmt"

// ArrayConfig selects the physical sphere configuration of the array.
type ArrayConfig int

const (
	// ArrayOpen is an open sphere (transducers in free field).
	ArrayOpen ArrayConfig = iota
	// ArrayRigid is a rigid (scattering) sphere.
	ArrayRigid
	// ArrayDual is a dual concentric open sphere.
	ArrayDual

	arrayConfigCount // sentinel for validation
)

var arrayConfigNames = [arrayConfigCount]string{"Open", "Rigid", "Dual"}

// String returns the name of the array configuration.
func (ac ArrayConfig) String() string {
	if ac >= 0 && ac < arrayConfigCount {
		return arrayConfigNames[ac]
	}
	return fmt.Sprintf("ArrayConfig(%d)", ac)
}

// Valid reports whether ac is a known array configuration.
func (ac ArrayConfig) Valid() bool {
	return ac >= 0 && ac < arrayConfigCount
}

// TransducerType selects the transducer characteristic.
type TransducerType int

const (
	// TransducerPressure is an omnidirectional pressure transducer.
	TransducerPressure TransducerType = iota
	// TransducerVelocity is a pressure-gradient (cardioid) transducer.
	TransducerVelocity

	transducerTypeCount // sentinel for validation
)

var transducerTypeNames = [transducerTypeCount]string{"Pressure", "Velocity"}

// String returns the name of the transducer type.
func (tt TransducerType) String() string {
	if tt >= 0 && tt < transducerTypeCount {
		return transducerTypeNames[tt]
	}
	return fmt.Sprintf("TransducerType(%d)", tt)
}

// Valid reports whether tt is a known transducer type.
func (tt TransducerType) Valid() bool {
	return tt >= 0 && tt < transducerTypeCount
}

// WaveType selects the idealized wavefront model.
type WaveType int

const (
	// WavePlane is a plane wave from a far-field source.
	WavePlane WaveType = iota
	// WaveSpherical is a spherical wave from a point source at finite
	// distance.
	WaveSpherical

	waveTypeCount // sentinel for validation
)

var waveTypeNames = [waveTypeCount]string{"Plane", "Spherical"}

// String returns the name of the wave type.
func (wt WaveType) String() string {
	if wt >= 0 && wt < waveTypeCount {
		return waveTypeNames[wt]
	}
	return fmt.Sprintf("WaveType(%d)", wt)
}

// Valid reports whether wt is a known wave type.
func (wt WaveType) Valid() bool {
	return wt >= 0 && wt < waveTypeCount
}

// KR holds per-bin wavenumber-radius values for the microphone radius and,
// for rigid or dual configurations, the scatterer (or second sphere)
// radius. A nil Scatter row means the scatterer radius equals the
// microphone radius.
type KR struct {
	Mic     []float64
	Scatter []float64
}

// Bins returns the number of frequency bins.
func (k KR) Bins() int {
	return len(k.Mic)
}

// ScatterRow returns the scatterer kr row, falling back to the microphone
// row when no separate scatterer row is set.
func (k KR) ScatterRow() []float64 {
	if k.Scatter != nil {
		return k.Scatter
	}
	return k.Mic
}

// Validate checks row shapes and value ordering.
func (k KR) Validate() error {
	if len(k.Mic) == 0 {
		return fmt.Errorf("sph: kr needs at least one bin")
	}
	if k.Scatter != nil && len(k.Scatter) != len(k.Mic) {
		return fmt.Errorf("sph: kr row length mismatch: mic %d, scatter %d", len(k.Mic), len(k.Scatter))
	}
	for i := 1; i < len(k.Mic); i++ {
		if k.Mic[i] < k.Mic[i-1] {
			return fmt.Errorf("sph: kr must be non-decreasing at bin %d", i)
		}
	}
	return nil
}
