// Package process converts between the spatial, spatial-harmonic and
// time domains of a sound field.
//
// SpatFT and ISpatFT move between pressures sampled on a quadrature grid
// and spatial Fourier coefficients; FFTBlock and IFFTBlock move between
// time-domain impulse responses and the half-spectrum frequency blocks
// used throughout the library.
package process
