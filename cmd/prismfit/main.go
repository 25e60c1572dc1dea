// Command prismfit assesses the geometry of a prismatic rule from a
// measurement file.
//
// Usage:
//
//	prismfit [--show-evaluations] [--residuals] [--plot] measurements.txt
//
// The measurement file holds one measurement per line, four fields:
// top vertex (A1/A2/A3), pin diameter, spacer height, measured value.
// The fitted circumradius, the two free angles with their standard
// deviations, the derived third angle and the RMS are printed to stdout;
// --residuals adds a per-face residual table and --plot renders the same
// data through gnuplot.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/Arafatk/glot"

	"github.com/katalvlaran/prismfit/measure"
	"github.com/katalvlaran/prismfit/prism"
	"github.com/katalvlaran/prismfit/triangle"
)

var (
	showEvaluations = flag.Bool("show-evaluations", false, "print each solver evaluation")
	showResiduals   = flag.Bool("residuals", false, "print residuals distributed along the rule faces")
	plotResiduals   = flag.Bool("plot", false, "plot residuals along the rule faces with gnuplot")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: prismfit [--show-evaluations] [--residuals] [--plot] measurements.txt")
		os.Exit(1)
	}
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	observed, err := measure.Read(file)
	if err != nil {
		return err
	}

	var opts []prism.Option
	if *showEvaluations {
		fmt.Println("evaluation     R        α₁       α₂       α₃")
		opts = append(opts, prism.WithObserver(func(evaluation int, point []float64) {
			fmt.Printf("    %2d      %7.3f  %6.4f  %6.4f  %6.4f\n",
				evaluation,
				point[triangle.ParamR],
				degrees(point[triangle.ParamAlpha1]),
				degrees(point[triangle.ParamAlpha2]),
				degrees(math.Pi-point[triangle.ParamAlpha1]-point[triangle.ParamAlpha2]))
		}))
	}

	result, err := prism.Fit(observed, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("R = %.6f (±%.6f), α₁ = %.3f (±%.3f), α₂ = %.3f (±%.3f) ⇒ α₃ ≈ %.3f\nRMS = %.6f\n",
		result.Triangle.R(),
		result.Sigma[triangle.ParamR],
		degrees(result.Triangle.Alpha1()),
		degrees(result.Sigma[triangle.ParamAlpha1]),
		degrees(result.Triangle.Alpha2()),
		degrees(result.Sigma[triangle.ParamAlpha2]),
		degrees(result.Triangle.Alpha3()),
		result.RMS)

	if *showResiduals {
		printResiduals(result)
	}
	if *plotResiduals {
		return plot(result)
	}
	return nil
}

// printResiduals writes the face-distributed residual table to stdout.
func printResiduals(result *prism.FitResult) {
	buckets := result.DistributeResiduals()
	for _, face := range triangle.Faces() {
		fmt.Printf("face %s (length %.3f):\n", face, result.Triangle.Side(face))
		for _, res := range buckets[face] {
			fmt.Printf("  %8.3f  %+.6f\n", res.Location, res.Value)
		}
	}
}

// plot renders one point group per face: residual against contact location.
func plot(result *prism.FitResult) error {
	p, err := glot.NewPlot(2, true, false)
	if err != nil {
		return err
	}
	p.SetTitle("residuals along rule faces")
	p.SetXLabel("contact location")
	p.SetYLabel("residual")

	buckets := result.DistributeResiduals()
	for _, face := range triangle.Faces() {
		bucket := buckets[face]
		if len(bucket) == 0 {
			continue
		}
		locations := make([]float64, len(bucket))
		values := make([]float64, len(bucket))
		for i, res := range bucket {
			locations[i] = res.Location
			values[i] = res.Value
		}
		if err := p.AddPointGroup(face.String(), "points", [][]float64{locations, values}); err != nil {
			return err
		}
	}
	return nil
}

// degrees converts radians to degrees for reporting.
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
