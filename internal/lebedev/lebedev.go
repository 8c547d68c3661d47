// Package lebedev generates Lebedev quadrature nodes and weights on the
// unit sphere.
//
// Nodes are built from the six octahedral point-group generators with
// per-degree coefficient tables. Weights are normalized so that the sum
// over all nodes of a grid equals 1.
package lebedev

import "math"

// Node is a single quadrature node in Cartesian coordinates with its
// integration weight.
type Node struct {
	X, Y, Z float64
	W       float64
}

// degrees lists the supported Lebedev degrees in ascending order.
var degrees = []int{6, 14, 26, 38, 50, 74, 86, 110, 146, 170, 194}

// Degrees returns the supported Lebedev degrees in ascending order.
func Degrees() []int {
	out := make([]int, len(degrees))
	copy(out, degrees)
	return out
}

// Available reports whether a coefficient table exists for degree.
func Available(degree int) bool {
	for _, d := range degrees {
		if d == degree {
			return true
		}
	}
	return false
}

// octA1 appends the 6 vertex points (+/-1, 0, 0) and permutations.
func octA1(dst []Node, v float64) []Node {
	return append(dst,
		Node{1, 0, 0, v}, Node{-1, 0, 0, v},
		Node{0, 1, 0, v}, Node{0, -1, 0, v},
		Node{0, 0, 1, v}, Node{0, 0, -1, v},
	)
}

// octA2 appends the 12 edge-midpoint points (0, +/-a, +/-a) and
// permutations, a = 1/sqrt(2).
func octA2(dst []Node, v float64) []Node {
	a := 1 / math.Sqrt2
	for _, s1 := range []float64{a, -a} {
		for _, s2 := range []float64{a, -a} {
			dst = append(dst,
				Node{0, s1, s2, v},
				Node{s1, 0, s2, v},
				Node{s1, s2, 0, v},
			)
		}
	}
	return dst
}

// octA3 appends the 8 face-center points (+/-a, +/-a, +/-a), a = 1/sqrt(3).
func octA3(dst []Node, v float64) []Node {
	a := 1 / math.Sqrt(3)
	for _, s1 := range []float64{a, -a} {
		for _, s2 := range []float64{a, -a} {
			for _, s3 := range []float64{a, -a} {
				dst = append(dst, Node{s1, s2, s3, v})
			}
		}
	}
	return dst
}

// octLLM appends the 24 points (+/-l, +/-l, +/-m) and permutations with
// 2l^2 + m^2 = 1.
func octLLM(dst []Node, l, v float64) []Node {
	m := math.Sqrt(math.Max(0, 1-2*l*l))
	for _, s1 := range []float64{l, -l} {
		for _, s2 := range []float64{l, -l} {
			for _, s3 := range []float64{m, -m} {
				dst = append(dst,
					Node{s1, s2, s3, v},
					Node{s1, s3, s2, v},
					Node{s3, s1, s2, v},
				)
			}
		}
	}
	return dst
}

// octPQ0 appends the 24 points (+/-p, +/-q, 0) and permutations with
// p^2 + q^2 = 1.
func octPQ0(dst []Node, p, v float64) []Node {
	q := math.Sqrt(math.Max(0, 1-p*p))
	for _, s1 := range []float64{p, -p} {
		for _, s2 := range []float64{q, -q} {
			dst = append(dst,
				Node{s1, s2, 0, v},
				Node{s2, s1, 0, v},
				Node{s1, 0, s2, v},
				Node{s2, 0, s1, v},
				Node{0, s1, s2, v},
				Node{0, s2, s1, v},
			)
		}
	}
	return dst
}

// octRSW appends the 48 points (+/-r, +/-s, +/-w) in all permutations with
// r^2 + s^2 + w^2 = 1.
func octRSW(dst []Node, r, s, v float64) []Node {
	w := math.Sqrt(math.Max(0, 1-r*r-s*s))
	for _, s1 := range []float64{r, -r} {
		for _, s2 := range []float64{s, -s} {
			for _, s3 := range []float64{w, -w} {
				dst = append(dst,
					Node{s1, s2, s3, v},
					Node{s1, s3, s2, v},
					Node{s2, s1, s3, v},
					Node{s2, s3, s1, v},
					Node{s3, s1, s2, v},
					Node{s3, s2, s1, v},
				)
			}
		}
	}
	return dst
}
