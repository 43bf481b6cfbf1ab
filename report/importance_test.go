package report

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTopCoefficients(t *testing.T) {
	coef := []float64{0.5, -2.0, 0.1, 3.0, -0.3, 1.0}

	got := topCoefficients(coef, 2)

	// two most negative ascending, then two most positive ascending
	want := []int{1, 4, 5, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTopCoefficientsClamped(t *testing.T) {
	coef := []float64{1.0, -1.0}

	got := topCoefficients(coef, 10)
	if len(got) != 2 {
		t.Errorf("expected clamp to 2 indices, got %v", got)
	}
}

func TestPlotFeatureImportanceMultiClass(t *testing.T) {
	dir := t.TempDir()

	c := Coefficients{
		W:       mat.NewDense(2, 4, []float64{1, -1, 2, -2, 0.5, -0.5, 1.5, -1.5}),
		Classes: []string{"neg", "pos"},
	}

	err := PlotFeatureImportance(c, []string{"f1", "f2", "f3", "f4"}, 2, DirSinks(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"importance_neg.png", "importance_pos.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestPlotFeatureImportanceBinaryLabel(t *testing.T) {
	dir := t.TempDir()

	// a single decision function over two classes gets the combined label
	c := Coefficients{
		W:       mat.NewDense(1, 2, []float64{1, -1}),
		Classes: []string{"neg", "pos"},
	}

	err := PlotFeatureImportance(c, []string{"f1", "f2"}, 1, DirSinks(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "importance_neg_pos.png")); err != nil {
		t.Errorf("expected combined-label figure: %v", err)
	}
}

func TestPlotFeatureImportanceNameMismatch(t *testing.T) {
	c := Coefficients{
		W:       mat.NewDense(1, 2, []float64{1, -1}),
		Classes: []string{"a", "b"},
	}

	err := PlotFeatureImportance(c, []string{"only-one"}, 1, StreamSinks(os.Stderr))
	if err == nil {
		t.Error("expected feature name mismatch error")
	}
}
