package report

import (
	"fmt"
	"image/color"

	"github.com/psykhi/wordclouds"

	"github.com/revelaction/textnorm/freq"
)

// CloudOptions configures WordCloud rendering.
type CloudOptions struct {
	// FontPath is the TTF font used to draw terms. Required.
	FontPath string

	// MaxWords caps the number of terms drawn. Zero defaults to 1000.
	MaxWords int

	// Width and Height in pixels. Zero defaults to 2048.
	Width  int
	Height int

	// Background defaults to white.
	Background color.Color
}

// WordCloud renders a word cloud of the counter's most frequent terms.
func WordCloud(c freq.Counter, opts CloudOptions, sink Sink) error {
	if opts.FontPath == "" {
		return fmt.Errorf("word cloud rendering requires a font file")
	}

	maxWords := opts.MaxWords
	if maxWords == 0 {
		maxWords = 1000
	}
	width := opts.Width
	if width == 0 {
		width = 2048
	}
	height := opts.Height
	if height == 0 {
		height = 2048
	}
	background := opts.Background
	if background == nil {
		background = color.White
	}

	counts := map[string]int{}
	for _, pair := range c.MostCommon(maxWords) {
		counts[pair.Term] = pair.Count
	}
	if len(counts) == 0 {
		return fmt.Errorf("empty counter")
	}

	w := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(opts.FontPath),
		wordclouds.Width(width),
		wordclouds.Height(height),
		wordclouds.BackgroundColor(background),
	)

	return sink.SaveImage(w.Draw())
}
