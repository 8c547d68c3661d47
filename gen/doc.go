// Package gen synthesizes reference sound fields for spherical
// microphone arrays and designs the modal radial filters that invert
// their geometry-dependent frequency responses.
//
// RadialFilter builds per-order inversion filter banks with optional
// soft amplitude limiting and on-axis powerloss compensation. IdealWave
// computes the spatial Fourier coefficients of an ideal plane or
// spherical wavefront, SampledWave orchestrates it across
// order-segmented frequency ranges to emulate discretely sampled
// capture, and WhiteNoise/SphericalNoise inject calibrated random
// disturbances for stress testing.
package gen
