package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/revelaction/textnorm/freq"
)

// PlotTermFrequencies renders a bar chart of the n most common terms of the
// counter, each bar annotated with its count.
func PlotTermFrequencies(c freq.Counter, n int, title string, sink Sink) error {
	pairs := c.MostCommon(n)
	if len(pairs) == 0 {
		return fmt.Errorf("empty counter")
	}

	values := make(plotter.Values, len(pairs))
	names := make([]string, len(pairs))
	for i, pair := range pairs {
		values[i] = float64(pair.Count)
		names[i] = pair.Term
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Frequency"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.5708 // vertical labels, matplotlib rotation=90 style

	labels, err := countLabels(pairs)
	if err != nil {
		return err
	}
	p.Add(labels)

	return sink.SavePlot(p)
}

func countLabels(pairs []freq.Pair) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(pairs))
	texts := make([]string, len(pairs))
	for i, pair := range pairs {
		xys[i] = plotter.XY{X: float64(i), Y: float64(pair.Count)}
		texts[i] = fmt.Sprintf(" %d ", pair.Count)
	}

	return plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
}
