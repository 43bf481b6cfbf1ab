package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// ErrNoLabels is returned when a confusion matrix or classification report
// is requested for empty label slices.
var ErrNoLabels = errors.New("no labels to evaluate")

// ConfusionMatrix is a square count matrix over the sorted union of true and
// predicted labels. Rows are true classes, columns predicted classes.
type ConfusionMatrix struct {
	Classes []string
	Counts  *mat.Dense
}

// NewConfusionMatrix builds the confusion matrix for two equally long label
// slices.
func NewConfusionMatrix(yTrue, yPred []string) (*ConfusionMatrix, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("label count mismatch: %d true vs %d predicted", len(yTrue), len(yPred))
	}

	seen := map[string]bool{}
	classes := []string{}
	for _, y := range append(append([]string{}, yTrue...), yPred...) {
		if !seen[y] {
			seen[y] = true
			classes = append(classes, y)
		}
	}
	sort.Strings(classes)

	if len(classes) == 0 {
		return nil, ErrNoLabels
	}

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	counts := mat.NewDense(len(classes), len(classes), nil)
	for i := range yTrue {
		r, c := index[yTrue[i]], index[yPred[i]]
		counts.Set(r, c, counts.At(r, c)+1)
	}

	return &ConfusionMatrix{Classes: classes, Counts: counts}, nil
}

// Population returns the total number of samples.
func (m *ConfusionMatrix) Population() int {
	return int(mat.Sum(m.Counts))
}

// Accuracy returns the share of samples on the diagonal.
func (m *ConfusionMatrix) Accuracy() float64 {
	pop := mat.Sum(m.Counts)
	if pop == 0 {
		return 0
	}

	return mat.Trace(m.Counts) / pop
}

// At returns the count of samples with true class i predicted as class j.
func (m *ConfusionMatrix) At(i, j int) int {
	return int(m.Counts.At(i, j))
}

// ConfusionOptions configures PlotConfusionMatrix.
type ConfusionOptions struct {
	Title string

	// Percentage annotates each cell with its share of the population
	// instead of the absolute count.
	Percentage bool

	// Out receives the population and accuracy summary. Defaults to stdout.
	Out io.Writer
}

// PlotConfusionMatrix computes the confusion matrix of the two label slices,
// prints population and accuracy, and renders the matrix as a heat map.
func PlotConfusionMatrix(yTrue, yPred []string, opts ConfusionOptions, sink Sink) error {
	m, err := NewConfusionMatrix(yTrue, yPred)
	if err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "Set Population: %d\n", m.Population())
	fmt.Fprintf(out, "Accuracy: %.4f\n", m.Accuracy())

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Predicted label"
	p.Y.Label.Text = "True label"

	h := plotter.NewHeatMap(matrixGrid{m}, palette.Heat(12, 1))
	p.Add(h)

	ticks := make([]plot.Tick, len(m.Classes))
	for i, c := range m.Classes {
		ticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	labels, err := cellLabels(m, opts.Percentage)
	if err != nil {
		return err
	}
	p.Add(labels)

	return sink.SavePlot(p)
}

// matrixGrid adapts a ConfusionMatrix to the heat map grid interface.
type matrixGrid struct {
	m *ConfusionMatrix
}

func (g matrixGrid) Dims() (int, int) {
	n := len(g.m.Classes)
	return n, n
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

func (g matrixGrid) Z(c, r int) float64 {
	return g.m.Counts.At(r, c)
}

func cellLabels(m *ConfusionMatrix, percentage bool) (*plotter.Labels, error) {
	pop := float64(m.Population())

	var xys plotter.XYs
	var texts []string
	for i := range m.Classes {
		for j := range m.Classes {
			count := m.At(i, j)
			if count == 0 {
				continue
			}

			xys = append(xys, plotter.XY{X: float64(j), Y: float64(i)})
			if percentage {
				texts = append(texts, fmt.Sprintf("%.3f", float64(count)/pop))
			} else {
				texts = append(texts, fmt.Sprintf("%d", count))
			}
		}
	}

	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}
