package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GridSearch holds the result of a hyper-parameter grid search: the winning
// parameter assignment, the candidate value grid and the per-candidate score
// arrays, all indexed the same way.
type GridSearch struct {
	// BestParams is the winning value per parameter.
	BestParams map[string]string

	// ParamGrid lists the candidate values per parameter, in grid order.
	ParamGrid map[string][]string

	// Candidates is the parameter assignment of every search candidate.
	Candidates []map[string]string

	MeanTest  []float64
	StdTest   []float64
	MeanTrain []float64
	StdTrain  []float64
}

// PlotGridSearch renders one score-versus-value panel per parameter with more
// than one candidate value. For each value of the plotted parameter the
// candidate agreeing with the best assignment on every other parameter
// supplies the scores. Figures are named "score_<parameter>".
func PlotGridSearch(gs GridSearch, sinks SinkFunc) error {
	params := make([]string, 0, len(gs.ParamGrid))
	for p := range gs.ParamGrid {
		if len(gs.ParamGrid[p]) > 1 {
			params = append(params, p)
		}
	}
	sort.Strings(params)

	for _, param := range params {
		p, err := gridSearchPanel(gs, param)
		if err != nil {
			return err
		}

		if err := sinks("score_" + param).SavePlot(p); err != nil {
			return err
		}
	}

	return nil
}

func gridSearchPanel(gs GridSearch, param string) (*plot.Plot, error) {
	values := gs.ParamGrid[param]

	var test, train plotter.XYs
	var testErr, trainErr plotter.YErrors
	for xi, value := range values {
		i, err := candidateIndex(gs, param, value)
		if err != nil {
			return nil, err
		}

		x := float64(xi)
		test = append(test, plotter.XY{X: x, Y: gs.MeanTest[i]})
		testErr = append(testErr, struct{ Low, High float64 }{gs.StdTest[i], gs.StdTest[i]})
		train = append(train, plotter.XY{X: x, Y: gs.MeanTrain[i]})
		trainErr = append(trainErr, struct{ Low, High float64 }{gs.StdTrain[i], gs.StdTrain[i]})
	}

	p := plot.New()
	p.Title.Text = "Score per parameter"
	p.X.Label.Text = param
	p.Y.Label.Text = "mean score"
	p.NominalX(values...)

	testLine, err := plotter.NewLine(test)
	if err != nil {
		return nil, err
	}
	testLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	trainLine, err := plotter.NewLine(train)
	if err != nil {
		return nil, err
	}

	testBars, err := plotter.NewYErrorBars(errPoints{test, testErr})
	if err != nil {
		return nil, err
	}
	trainBars, err := plotter.NewYErrorBars(errPoints{train, trainErr})
	if err != nil {
		return nil, err
	}

	p.Add(testLine, testBars, trainLine, trainBars)
	p.Legend.Add("test", testLine)
	p.Legend.Add("train", trainLine)

	return p, nil
}

// candidateIndex finds the candidate holding the given value for param and
// the best value for every other parameter.
func candidateIndex(gs GridSearch, param, value string) (int, error) {
CANDIDATE:
	for i, c := range gs.Candidates {
		if c[param] != value {
			continue
		}

		for other, best := range gs.BestParams {
			if other == param {
				continue
			}
			if c[other] != best {
				continue CANDIDATE
			}
		}

		return i, nil
	}

	return 0, fmt.Errorf("no candidate with %s=%s and best values elsewhere", param, value)
}

// errPoints pairs XY points with their Y errors for the error-bar plotter.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}
