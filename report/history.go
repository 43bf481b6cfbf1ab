package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// History records per-epoch metrics of a training run.
type History struct {
	Acc     []float64
	ValAcc  []float64
	Loss    []float64
	ValLoss []float64
}

// PlotHistory renders the accuracy and loss curves of a training run, train
// against validation. Figures are named "accuracy" and "loss".
func PlotHistory(h History, sinks SinkFunc) error {
	if err := historyPanel("Accuracy", h.Acc, h.ValAcc, sinks("accuracy")); err != nil {
		return err
	}

	return historyPanel("Loss", h.Loss, h.ValLoss, sinks("loss"))
}

func historyPanel(title string, train, val []float64, sink Sink) error {
	if len(train) == 0 {
		return fmt.Errorf("empty %s history", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "epoch"

	err := plotutil.AddLines(p,
		"train", epochPoints(train),
		"test", epochPoints(val),
	)
	if err != nil {
		return err
	}

	return sink.SavePlot(p)
}

func epochPoints(ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(ys))
	for i, y := range ys {
		xys[i] = plotter.XY{X: float64(i), Y: y}
	}

	return xys
}
