// Command sfagrid prints quadrature properties of spherical sampling
// grids.
//
// Usage:
//
//	sfagrid [flags] [lebedev-degree ...]
//
// Without arguments it prints info for all available Lebedev degrees.
//
// Examples:
//
//	sfagrid 26 110
//	sfagrid -order 5 194
//	sfagrid -gauss 16x8
//	sfagrid -all
//	sfagrid -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sfa/grid"
	"github.com/cwbudde/algo-sfa/sph"
)

type gridEntry struct {
	label    string
	g        grid.Grid
	maxOrder int
}

func main() {
	order := flag.Int("order", -1, "spherical-harmonic order for the quadrature check (-1 uses each grid's stable maximum)")
	gauss := flag.String("gauss", "", "analyze a Gauss grid instead, given as AZxEL node counts (e.g. 16x8)")
	all := flag.Bool("all", false, "show all Lebedev degrees")
	list := flag.Bool("list", false, "list available Lebedev degrees")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sfagrid [flags] [lebedev-degree ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints quadrature properties of spherical sampling grids.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all Lebedev degrees.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sfagrid 26 110\n")
		fmt.Fprintf(os.Stderr, "  sfagrid -order 5 194\n")
		fmt.Fprintf(os.Stderr, "  sfagrid -gauss 16x8\n")
		fmt.Fprintf(os.Stderr, "  sfagrid -list\n")
	}
	flag.Parse()

	if *list {
		for _, d := range grid.LebedevDegrees() {
			fmt.Println(d)
		}
		return
	}

	var entries []gridEntry
	if *gauss != "" {
		e, err := resolveGauss(*gauss)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		entries = append(entries, e)
	}

	degrees := flag.Args()
	if *gauss == "" && (len(degrees) == 0 || *all) {
		degrees = nil
		for _, d := range grid.LebedevDegrees() {
			degrees = append(degrees, strconv.Itoa(d))
		}
	}
	entries = append(entries, resolveLebedev(degrees)...)

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching grids\n")
		os.Exit(1)
	}

	printAnalysis(entries, *order)
}

func resolveGauss(spec string) (gridEntry, error) {
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return gridEntry{}, fmt.Errorf("gauss spec %q is not of the form AZxEL", spec)
	}
	az, err := strconv.Atoi(parts[0])
	if err != nil {
		return gridEntry{}, fmt.Errorf("gauss spec %q: %v", spec, err)
	}
	el, err := strconv.Atoi(parts[1])
	if err != nil {
		return gridEntry{}, fmt.Errorf("gauss spec %q: %v", spec, err)
	}
	g, err := grid.Gauss(az, el)
	if err != nil {
		return gridEntry{}, err
	}
	maxOrder := el - 1
	if half := az/2 - 1; half < maxOrder {
		maxOrder = half
	}
	return gridEntry{label: fmt.Sprintf("gauss %dx%d", az, el), g: g, maxOrder: maxOrder}, nil
}

func resolveLebedev(degrees []string) []gridEntry {
	var entries []gridEntry
	for _, arg := range degrees {
		d, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: invalid degree %q (use -list to see available)\n", arg)
			continue
		}
		g, nMax, err := grid.Lebedev(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		entries = append(entries, gridEntry{label: fmt.Sprintf("lebedev %d", d), g: g, maxOrder: nMax})
	}
	return entries
}

func printAnalysis(entries []gridEntry, orderFlag int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Grid\tPoints\tMax Order\tWeight Sum\tCheck Order\tQuadrature Err\n")
	fmt.Fprintf(tw, "----\t------\t---------\t----------\t-----------\t--------------\n")

	for _, e := range entries {
		order := e.maxOrder
		if orderFlag >= 0 {
			order = orderFlag
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%d\t%.3e\n",
			e.label,
			len(e.g),
			e.maxOrder,
			e.g.WeightSum(),
			order,
			quadratureError(e.g, order),
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// quadratureError returns the largest deviation of the discretized
// spherical-harmonic inner products from orthonormality up to the given
// order.
func quadratureError(g grid.Grid, order int) float64 {
	bases := sph.HarmAll(order, g.Azimuths(), g.Colatitudes())
	weights := g.Weights()
	size := (order + 1) * (order + 1)

	maxErr := 0.0
	for a := 0; a < size; a++ {
		for b := a; b < size; b++ {
			var sum complex128
			for p := range bases {
				sum += complex(4*math.Pi*weights[p], 0) * bases[p][a] * cmplx.Conj(bases[p][b])
			}
			want := 0.0
			if a == b {
				want = 1.0
			}
			if err := cmplx.Abs(sum - complex(want, 0)); err > maxErr {
				maxErr = err
			}
		}
	}
	return maxErr
}
