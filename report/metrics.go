package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ClassMetrics holds precision, recall, F1 and support for one class or one
// average row of a classification report.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Classification is a per-class evaluation summary of predicted against true
// labels, with accuracy and macro/weighted averages.
type Classification struct {
	Classes     []string
	PerClass    map[string]ClassMetrics
	Accuracy    float64
	MacroAvg    ClassMetrics
	WeightedAvg ClassMetrics
}

// NewClassification computes a classification report from two equally long
// label slices.
func NewClassification(yTrue, yPred []string) (*Classification, error) {
	m, err := NewConfusionMatrix(yTrue, yPred)
	if err != nil {
		return nil, err
	}

	r := &Classification{
		Classes:  m.Classes,
		PerClass: map[string]ClassMetrics{},
		Accuracy: m.Accuracy(),
	}

	total := 0
	for i, class := range m.Classes {
		tp := m.At(i, i)
		support := 0
		predicted := 0
		for j := range m.Classes {
			support += m.At(i, j)
			predicted += m.At(j, i)
		}

		cm := ClassMetrics{Support: support}
		if predicted > 0 {
			cm.Precision = float64(tp) / float64(predicted)
		}
		if support > 0 {
			cm.Recall = float64(tp) / float64(support)
		}
		if cm.Precision+cm.Recall > 0 {
			cm.F1 = 2 * cm.Precision * cm.Recall / (cm.Precision + cm.Recall)
		}

		r.PerClass[class] = cm
		total += support

		r.MacroAvg.Precision += cm.Precision
		r.MacroAvg.Recall += cm.Recall
		r.MacroAvg.F1 += cm.F1
		r.WeightedAvg.Precision += cm.Precision * float64(support)
		r.WeightedAvg.Recall += cm.Recall * float64(support)
		r.WeightedAvg.F1 += cm.F1 * float64(support)
	}

	n := float64(len(m.Classes))
	if n > 0 {
		r.MacroAvg.Precision /= n
		r.MacroAvg.Recall /= n
		r.MacroAvg.F1 /= n
	}
	if total > 0 {
		r.WeightedAvg.Precision /= float64(total)
		r.WeightedAvg.Recall /= float64(total)
		r.WeightedAvg.F1 /= float64(total)
	}
	r.MacroAvg.Support = total
	r.WeightedAvg.Support = total

	return r, nil
}

// WriteCSV writes the report with one row per class plus accuracy and
// average rows.
func (r *Classification) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"", "precision", "recall", "f1-score", "support"}); err != nil {
		return err
	}

	row := func(name string, m ClassMetrics) error {
		return cw.Write([]string{
			name,
			strconv.FormatFloat(m.Precision, 'f', 4, 64),
			strconv.FormatFloat(m.Recall, 'f', 4, 64),
			strconv.FormatFloat(m.F1, 'f', 4, 64),
			strconv.Itoa(m.Support),
		})
	}

	for _, class := range r.Classes {
		if err := row(class, r.PerClass[class]); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"accuracy", "", "", strconv.FormatFloat(r.Accuracy, 'f', 4, 64), strconv.Itoa(r.MacroAvg.Support)}); err != nil {
		return err
	}
	if err := row("macro avg", r.MacroAvg); err != nil {
		return err
	}
	if err := row("weighted avg", r.WeightedAvg); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// String renders the report as an aligned text table.
func (r *Classification) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%20s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	for _, class := range r.Classes {
		m := r.PerClass[class]
		fmt.Fprintf(&b, "%20s %9.4f %9.4f %9.4f %9d\n", class, m.Precision, m.Recall, m.F1, m.Support)
	}

	fmt.Fprintf(&b, "%20s %9s %9s %9.4f %9d\n", "accuracy", "", "", r.Accuracy, r.MacroAvg.Support)
	fmt.Fprintf(&b, "%20s %9.4f %9.4f %9.4f %9d\n", "macro avg", r.MacroAvg.Precision, r.MacroAvg.Recall, r.MacroAvg.F1, r.MacroAvg.Support)
	fmt.Fprintf(&b, "%20s %9.4f %9.4f %9.4f %9d\n", "weighted avg", r.WeightedAvg.Precision, r.WeightedAvg.Recall, r.WeightedAvg.F1, r.WeightedAvg.Support)

	return b.String()
}
