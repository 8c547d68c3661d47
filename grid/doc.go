// Package grid builds angular quadrature grids for spherical microphone
// arrays.
//
// Two schemes are provided: tensor-product Gauss-Legendre grids in the
// zig-zag row order used by VariSphear-style measurement rigs, and
// Lebedev grids for the classic degree set 6..194. Grid weights always
// sum to 1, so a grid can be used directly as the integration rule of a
// spatial Fourier transform.
package grid
