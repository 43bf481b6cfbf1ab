package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/textnorm/freq"
)

func TestPlotTermFrequencies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.png")

	c := freq.Counter{"cat": 5, "dog": 3, "bird": 1}
	if err := PlotTermFrequencies(c, 2, "Term frequencies", FileSink{Path: path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected png file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty png file")
	}
}

func TestPlotTermFrequenciesEmpty(t *testing.T) {
	err := PlotTermFrequencies(freq.Counter{}, 5, "", FileSink{Path: filepath.Join(t.TempDir(), "x.png")})
	if err == nil {
		t.Error("expected error for empty counter")
	}
}

func TestWordCloudRequiresFont(t *testing.T) {
	c := freq.Counter{"cat": 5}

	err := WordCloud(c, CloudOptions{}, FileSink{Path: filepath.Join(t.TempDir(), "wc.png")})
	if err == nil {
		t.Error("expected error without font file")
	}
}

func TestWordCloudEmptyCounter(t *testing.T) {
	err := WordCloud(freq.Counter{}, CloudOptions{FontPath: "font.ttf"}, FileSink{Path: filepath.Join(t.TempDir(), "wc.png")})
	if err == nil {
		t.Error("expected error for empty counter")
	}
}
