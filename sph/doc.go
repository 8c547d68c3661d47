// Package sph provides the spherical-harmonic and radial building blocks
// for sound-field analysis on spherical microphone arrays.
//
// It covers orthonormal spherical-harmonic evaluation, spherical Bessel
// and Hankel functions with derivatives, wavenumber-radius (kr) vectors,
// coordinate conversion and the configuration-dependent array
// extrapolation response b_n used by the radial filter and wave
// generators in package gen.
package sph
