package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Noofbiz/sampleBowl/samples"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// inspect loads a sample table from CSV files and writes a scatter plot of
// its input samples, so a dataset can be eyeballed before training on it.

func main() {
	patternFlag := flag.String("pattern", "assets/*.csv", "glob pattern for CSV files to load")
	inputColsFlag := flag.String("input-cols", "x,y", "comma-separated input column names")
	targetColsFlag := flag.String("target-cols", "", "comma-separated target column names; empty builds a self-paired table")
	outDir := flag.String("out", "plots", "output directory for generated plots")
	maxPoints := flag.Int("max-points", 2000, "maximum number of samples to plot")
	flag.Parse()

	inputCols := splitCols(*inputColsFlag)
	targetCols := splitCols(*targetColsFlag)

	table, err := samples.FromCSV(*patternFlag, inputCols, targetCols)
	if err != nil {
		log.Fatalf("failed to load table: %v", err)
	}
	log.Printf("Loaded %d samples from CSV pattern %s", table.Len(), *patternFlag)

	fmt.Printf("Samples: %d\n", table.Len())
	fmt.Printf("Input dim: %d\n", table.InputDim())
	fmt.Printf("Target dim: %d\n", table.TargetDim())
	fmt.Printf("Self-paired: %v\n", table.SelfPaired())

	n := table.Len()
	if n > *maxPoints {
		n = *maxPoints
	}
	inputs, _, err := table.Slice(0, n)
	if err != nil {
		log.Fatalf("failed to read samples: %v", err)
	}

	if err := plotInputs(*outDir, inputs); err != nil {
		log.Fatalf("failed to generate plot: %v", err)
	}
	log.Printf("Inspection plot written to %s", *outDir)
}

func splitCols(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cols = append(cols, trimmed)
		}
	}
	return cols
}

// plotInputs writes a PNG scattering the first two input dimensions against
// each other. One-dimensional inputs are plotted against sample position.
func plotInputs(outDir string, inputs [][]float32) error {
	xys := make(plotter.XYs, 0, len(inputs))
	for i, in := range inputs {
		switch {
		case len(in) >= 2:
			xys = append(xys, plotter.XY{X: float64(in[0]), Y: float64(in[1])})
		case len(in) == 1:
			xys = append(xys, plotter.XY{X: float64(i), Y: float64(in[0])})
		}
	}

	p := plot.New()
	p.Title.Text = "Input samples"
	p.X.Label.Text = "dim 0"
	p.Y.Label.Text = "dim 1"
	if len(inputs) > 0 && len(inputs[0]) == 1 {
		p.X.Label.Text = "sample"
		p.Y.Label.Text = "dim 0"
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = color.RGBA{R: 20, G: 80, B: 200, A: 220}
	sc.GlyphStyle.Radius = vg.Points(1.8)
	p.Add(sc)
	p.Add(plotter.NewGrid())

	xmin, xmax, ymin, ymax := autoRange(xys)
	p.X.Min = xmin
	p.X.Max = xmax
	p.Y.Min = ymin
	p.Y.Max = ymax

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	outPath := filepath.Join(outDir, "inputs.png")
	return p.Save(8*vg.Inch, 6*vg.Inch, outPath)
}

// autoRange computes padded min/max for X and Y for a set of points.
func autoRange(xys plotter.XYs) (xmin, xmax, ymin, ymax float64) {
	if len(xys) == 0 {
		return -1, 1, -1, 1
	}
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, pt := range xys {
		xmin = math.Min(xmin, pt.X)
		xmax = math.Max(xmax, pt.X)
		ymin = math.Min(ymin, pt.Y)
		ymax = math.Max(ymax, pt.Y)
	}
	padX := (xmax - xmin) * 0.05
	padY := (ymax - ymin) * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	return xmin - padX, xmax + padX, ymin - padY, ymax + padY
}
