// Command kerninfo prints properties of the collocation smoothing
// kernels.
//
// Usage:
//
//	kerninfo [flags] [kernel-name ...]
//
// Without arguments it prints info for all known kernels.
//
// Examples:
//
//	kerninfo epanechnikov gaussian
//	kerninfo -weights -points 9 triangular
//	kerninfo -span 10 -samples 100
//	kerninfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-colloc/colloc"
	"github.com/cwbudde/algo-colloc/colloc/kernel"
)

type kernelEntry struct {
	name string
	typ  kernel.Type
}

var registry = []kernelEntry{
	{"epanechnikov", kernel.Epanechnikov},
	{"uniform", kernel.Uniform},
	{"triangular", kernel.Triangular},
	{"quartic", kernel.Quartic},
	{"triweight", kernel.Triweight},
	{"tricube", kernel.Tricube},
	{"cosine", kernel.Cosine},
	{"gaussian", kernel.Gaussian},
	{"logistic", kernel.Logistic},
	{"sigmoid", kernel.Sigmoid},
	{"silverman", kernel.Silverman},
}

func main() {
	list := flag.Bool("list", false, "list available kernel names")
	all := flag.Bool("all", false, "show all kernels")
	weights := flag.Bool("weights", false, "print a weight table over [-1.5, 1.5] instead of properties")
	points := flag.Int("points", 7, "number of points in the weight table")
	span := flag.Float64("span", 0, "preview the default bandwidth for a uniform grid of this time span")
	samples := flag.Int("samples", 100, "sample count for the -span bandwidth preview")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kerninfo [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of collocation smoothing kernels.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kerninfo epanechnikov gaussian\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -weights -points 9 triangular\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -span 10 -samples 100\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *span > 0 {
		printBandwidth(*span, *samples)
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	if *weights {
		printWeights(entries, *points)
		return
	}

	printProperties(entries)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []kernelEntry {
	byName := make(map[string]kernelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []kernelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown kernel %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printProperties(entries []kernelEntry) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSupport\tPeak\t2nd Moment\tRoughness\tEfficiency\n")
	fmt.Fprintf(tw, "------\t-------\t----\t----------\t---------\t----------\n")

	for _, e := range entries {
		m := kernel.Info(e.typ)
		a := kernel.Analyze(e.typ)

		support := "(-inf, inf)"
		if m.Bounded {
			support = "[-1, 1]"
		}

		eff := fmt.Sprintf("%.4f", a.Efficiency)
		if a.Efficiency == 0 {
			eff = "-" // higher-order kernel, no second-order efficiency
		}

		fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.6f\t%.6f\t%s\n",
			m.Name, support, m.Peak, a.SecondMoment, a.Roughness, eff)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printWeights(entries []kernelEntry, points int) {
	if points < 2 {
		points = 2
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "x")
	for _, e := range entries {
		fmt.Fprintf(tw, "\t%s", kernel.Info(e.typ).Name)
	}
	fmt.Fprintln(tw)

	for i := 0; i < points; i++ {
		x := -1.5 + 3*float64(i)/float64(points-1)
		fmt.Fprintf(tw, "%+.3f", x)

		for _, e := range entries {
			fmt.Fprintf(tw, "\t%.6f", kernel.Weight(e.typ, x))
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printBandwidth(span float64, samples int) {
	if samples < 2 {
		fmt.Fprintf(os.Stderr, "error: -samples must be at least 2\n")
		os.Exit(1)
	}

	ts := make(colloc.Times, samples)
	for i := range ts {
		ts[i] = span * float64(i) / float64(samples-1)
	}

	fmt.Printf("uniform grid: span=%g samples=%d -> default bandwidth %.6g\n",
		span, samples, colloc.DefaultBandwidth(ts))
}
