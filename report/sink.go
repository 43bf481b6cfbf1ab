// Package report renders classification evaluation artifacts: confusion
// matrices, grid-search score curves, word clouds, term-frequency bars,
// feature-importance bars and training-history curves. Every helper is a
// stateless function writing one artifact to a Sink.
package report

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Sink receives a rendered artifact. It abstracts the save-to-file versus
// show-on-screen choice so the plot helpers do not branch on it.
type Sink interface {
	// SavePlot renders a plot as PNG.
	SavePlot(p *plot.Plot) error

	// SaveImage writes a raw image as PNG.
	SaveImage(img image.Image) error
}

// SinkFunc produces a Sink for a named figure. Helpers that emit more than
// one figure (grid search, feature importance, history) take a SinkFunc.
type SinkFunc func(name string) Sink

// FileSink writes PNG files at 300 DPI.
type FileSink struct {
	Path string

	// Width and Height of the canvas. Zero values default to 8x6 inches.
	Width  vg.Length
	Height vg.Length

	// DPI of the rendered PNG. Zero defaults to 300.
	DPI int
}

func (s FileSink) SavePlot(p *plot.Plot) error {
	w, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer w.Close()

	width, height := s.size()
	return writePlot(p, w, width, height, s.dpi())
}

func (s FileSink) SaveImage(img image.Image) error {
	w, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer w.Close()

	return png.Encode(w, img)
}

func (s FileSink) size() (vg.Length, vg.Length) {
	w, h := s.Width, s.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}

	return w, h
}

func (s FileSink) dpi() int {
	if s.DPI == 0 {
		return 300
	}

	return s.DPI
}

// StreamSink writes PNG data to a writer. It is the screen sink of a host
// without an interactive display: the stream can be piped to a viewer.
type StreamSink struct {
	W io.Writer

	Width  vg.Length
	Height vg.Length
}

func (s StreamSink) SavePlot(p *plot.Plot) error {
	w, h := s.Width, s.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}

	return writePlot(p, s.W, w, h, 96)
}

func (s StreamSink) SaveImage(img image.Image) error {
	return png.Encode(s.W, img)
}

// DirSinks returns a SinkFunc placing every figure as <name>.png in dir.
func DirSinks(dir string) SinkFunc {
	return func(name string) Sink {
		return FileSink{Path: filepath.Join(dir, name+".png")}
	}
}

// StreamSinks returns a SinkFunc writing every figure to the same writer.
func StreamSinks(w io.Writer) SinkFunc {
	return func(name string) Sink {
		return StreamSink{W: w}
	}
}

func writePlot(p *plot.Plot, w io.Writer, width, height vg.Length, dpi int) error {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}

	return nil
}
