package sph

import "fmt"

// iPow returns i^n for n >= 0.
func iPow(n int) complex128 {
	switch n % 4 {
	case 0:
		return 1
	case 1:
		return 1i
	case 2:
		return -1
	default:
		return -1i
	}
}

// bnOpenPressure is j_n(krm), the modal response of an open sphere with
// pressure transducers.
func bnOpenPressure(n int, krm float64) complex128 {
	return complex(SphBesselJ(n, krm), 0)
}

// bnOpenVelocity is the cardioid response of an open sphere with
// pressure-gradient transducers, 0.5*(j_n - i*j_n').
func bnOpenVelocity(n int, krm float64) complex128 {
	return 0.5 * complex(SphBesselJ(n, krm), -DSphBesselJ(n, krm))
}

// bnRigid is the response of a rigid sphere. The scattering term cancels
// the radial velocity on the scatterer surface at krs.
func bnRigid(n int, krm, krs float64, tt TransducerType) complex128 {
	open := bnOpenPressure(n, krm)
	if tt == TransducerVelocity {
		open = complex(SphBesselJ(n, krm), -DSphBesselJ(n, krm))
	}
	if krs == 0 {
		// |h2_n'(krs)| grows without bound toward 0, so the scattering
		// term vanishes.
		return open
	}
	ratio := complex(DSphBesselJ(n, krs), 0) / DSphHankel2(n, krs)
	if tt == TransducerVelocity {
		return open + (1i*DSphHankel2(n, krm)-SphHankel2(n, krm))*ratio
	}
	return open - ratio*SphHankel2(n, krm)
}

// bnDual is the response of a dual open sphere: per bin, the open-sphere
// response of whichever radius has the larger magnitude.
func bnDual(n int, krm, krs float64) complex128 {
	b1 := bnOpenPressure(n, krm)
	b2 := bnOpenPressure(n, krs)
	if abs2(b1) >= abs2(b2) {
		return b1
	}
	return b2
}

func abs2(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}

// ArrayExtrapolation computes the per-bin modal array response
// 4*pi*i^n*b_n for spherical order n over the given kr rows.
//
// krScatter may be nil, in which case the microphone row is reused. For
// rigid and dual configurations both rows must have equal length. Dual
// configurations require pressure transducers.
func ArrayExtrapolation(n int, krMic, krScatter []float64, ac ArrayConfig, tt TransducerType) ([]complex128, error) {
	if !ac.Valid() {
		return nil, fmt.Errorf("sph: invalid array configuration: %d", ac)
	}
	if !tt.Valid() {
		return nil, fmt.Errorf("sph: invalid transducer type: %d", tt)
	}
	if ac == ArrayDual && tt != TransducerPressure {
		return nil, fmt.Errorf("sph: dual sphere configuration requires pressure transducers")
	}
	if krScatter == nil {
		krScatter = krMic
	}
	if len(krScatter) != len(krMic) {
		return nil, fmt.Errorf("sph: kr row length mismatch: mic %d, scatter %d", len(krMic), len(krScatter))
	}

	scale := 4 * pi * iPow(n)
	out := make([]complex128, len(krMic))
	for i := range krMic {
		var b complex128
		switch ac {
		case ArrayOpen:
			if tt == TransducerVelocity {
				b = bnOpenVelocity(n, krMic[i])
			} else {
				b = bnOpenPressure(n, krMic[i])
			}
		case ArrayRigid:
			b = bnRigid(n, krMic[i], krScatter[i], tt)
		case ArrayDual:
			b = bnDual(n, krMic[i], krScatter[i])
		}
		out[i] = scale * b
	}
	return out, nil
}
