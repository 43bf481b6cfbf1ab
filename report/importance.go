package report

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Coefficients is the weight matrix of a trained linear classifier: one row
// per decision function, one column per feature.
type Coefficients struct {
	W       *mat.Dense
	Classes []string
}

// PlotFeatureImportance renders one bar chart per coefficient row showing the
// top most negative (red) and most positive (green) feature weights. For a
// binary classifier with a single row the figure is labeled with both
// classes. Figures are named "importance_<label>".
func PlotFeatureImportance(c Coefficients, featureNames []string, top int, sinks SinkFunc) error {
	rows, cols := c.W.Dims()
	if cols != len(featureNames) {
		return fmt.Errorf("feature name count mismatch: %d coefficients vs %d names", cols, len(featureNames))
	}

	for i := 0; i < rows; i++ {
		label := c.Classes[i]
		if rows < len(c.Classes) {
			label += "/" + c.Classes[i+1]
		}

		coef := mat.Row(nil, i, c.W)
		p, err := importancePanel(coef, featureNames, top, label)
		if err != nil {
			return err
		}

		// the binary label contains a slash, keep figure names path-safe
		name := "importance_" + strings.ReplaceAll(label, "/", "_")
		if err := sinks(name).SavePlot(p); err != nil {
			return err
		}
	}

	return nil
}

// topCoefficients returns the indices of the top most negative coefficients
// followed by the top most positive ones, each group in ascending coefficient
// order.
func topCoefficients(coef []float64, top int) []int {
	if top > len(coef)/2 {
		top = len(coef) / 2
	}

	order := make([]int, len(coef))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return coef[order[a]] < coef[order[b]]
	})

	picked := make([]int, 0, 2*top)
	picked = append(picked, order[:top]...)
	picked = append(picked, order[len(order)-top:]...)

	return picked
}

func importancePanel(coef []float64, featureNames []string, top int, label string) (*plot.Plot, error) {
	picked := topCoefficients(coef, top)

	neg := make(plotter.Values, len(picked))
	pos := make(plotter.Values, len(picked))
	names := make([]string, len(picked))
	for i, idx := range picked {
		names[i] = featureNames[idx]
		if coef[idx] < 0 {
			neg[i] = coef[idx]
		} else {
			pos[i] = coef[idx]
		}
	}

	p := plot.New()
	p.Title.Text = label
	p.Y.Label.Text = "coefficient"

	negBars, err := plotter.NewBarChart(neg, vg.Points(15))
	if err != nil {
		return nil, err
	}
	negBars.Color = color.RGBA{R: 200, A: 255}

	posBars, err := plotter.NewBarChart(pos, vg.Points(15))
	if err != nil {
		return nil, err
	}
	posBars.Color = color.RGBA{G: 160, A: 255}

	p.Add(negBars, posBars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.0472 // ~60 degrees

	return p, nil
}
