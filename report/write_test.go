package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/textnorm/table"
	"github.com/revelaction/textnorm/token"
)

// constPredictor predicts the same label for every unit.
type constPredictor string

func (p constPredictor) Predict(units []token.Unit) ([]string, error) {
	out := make([]string, len(units))
	for i := range out {
		out[i] = string(p)
	}

	return out, nil
}

func testTable(t *testing.T) *table.Table {
	t.Helper()

	tbl := table.New()
	if err := tbl.Set("text", table.Column{token.Raw("good movie"), token.Raw("bad movie")}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Set("label", table.Column{token.Raw("pos"), token.Raw("neg")}); err != nil {
		t.Fatal(err)
	}

	return tbl
}

func TestWriteToDir(t *testing.T) {
	dir := t.TempDir()

	err := Write(WriteOptions{Dir: dir}, constPredictor("pos"), testTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"confusion_matrix.png", "classification_report.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestWriteVerbose(t *testing.T) {
	var out bytes.Buffer

	err := Write(WriteOptions{Verbose: true, Out: &out}, constPredictor("pos"), testTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Accuracy: 0.5000") {
		t.Errorf("missing accuracy in output: %q", got)
	}
	if !strings.Contains(got, "weighted avg") {
		t.Errorf("missing classification report in output: %q", got)
	}
}

func TestWriteSilent(t *testing.T) {
	var out bytes.Buffer

	// neither verbose nor dir: nothing rendered, nothing printed
	err := Write(WriteOptions{Out: &out}, constPredictor("pos"), testTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestWriteMissingColumn(t *testing.T) {
	tbl := table.New()

	if err := Write(WriteOptions{}, constPredictor("x"), tbl); err == nil {
		t.Error("expected error for missing columns")
	}
}
