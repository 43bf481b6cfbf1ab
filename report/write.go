package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/revelaction/textnorm/table"
	"github.com/revelaction/textnorm/token"
)

// Predictor predicts one class label per text unit.
type Predictor interface {
	Predict(units []token.Unit) ([]string, error)
}

// WriteOptions gates the artifacts of the aggregate reporter.
type WriteOptions struct {
	// Verbose prints the confusion summary and the text classification
	// report to Out.
	Verbose bool

	// Dir, when set, receives confusion_matrix.png and
	// classification_report.csv.
	Dir string

	// Out defaults to stdout.
	Out io.Writer

	// TextField and LabelField name the table columns holding the inputs
	// and the true labels. Defaults: "text" and "label".
	TextField  string
	LabelField string
}

// Write runs the predictor over the text column of tbl and reports the
// classification results against the label column: a confusion matrix plot
// and a classification-report CSV into Dir when set, plus verbose text output
// when requested.
func Write(opts WriteOptions, p Predictor, tbl *table.Table) error {
	textField := opts.TextField
	if textField == "" {
		textField = table.DefaultReadField
	}
	labelField := opts.LabelField
	if labelField == "" {
		labelField = "label"
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	texts, err := tbl.Column(textField)
	if err != nil {
		return err
	}
	labels, err := tbl.Column(labelField)
	if err != nil {
		return err
	}

	yTrue := make([]string, len(labels))
	for i, u := range labels {
		yTrue[i] = u.Raw()
	}

	yPred, err := p.Predict(texts)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	if opts.Dir != "" {
		sink := FileSink{Path: filepath.Join(opts.Dir, "confusion_matrix.png")}
		if err := PlotConfusionMatrix(yTrue, yPred, ConfusionOptions{Out: io.Discard}, sink); err != nil {
			return err
		}
	}
	if opts.Verbose {
		m, err := NewConfusionMatrix(yTrue, yPred)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Set Population: %d\n", m.Population())
		fmt.Fprintf(out, "Accuracy: %.4f\n", m.Accuracy())
	}

	cls, err := NewClassification(yTrue, yPred)
	if err != nil {
		return err
	}

	if opts.Dir != "" {
		f, err := os.Create(filepath.Join(opts.Dir, "classification_report.csv"))
		if err != nil {
			return err
		}

		if err := cls.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if opts.Verbose {
		fmt.Fprint(out, cls.String())
	}

	return nil
}
