package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/textnorm/freq"
	"github.com/revelaction/textnorm/report"
	"github.com/revelaction/textnorm/storage/sqlite/zombiezen"
)

func freqCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "freq",
		Usage: "plot term frequencies across stored normalization results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Usage:    "sqlite database holding normalization results",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "top",
				Value: 20,
				Usage: "number of most common terms to plot",
			},
			&cli.StringFlag{
				Name:  "title",
				Value: "Term frequencies",
				Usage: "plot title",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output png file (stdout when empty)",
			},
			&cli.BoolFlag{
				Name:  "cloud",
				Usage: "render a word cloud instead of a bar chart",
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: "ttf font file for the word cloud",
			},
		},
		Action: func(c *cli.Context) error {
			return freqAction(c, ui)
		},
	}
}

func freqAction(c *cli.Context, ui UI) error {
	rh, err := zombiezen.NewResultHandler(c.String("db"))
	if err != nil {
		return err
	}
	defer rh.Close()

	names, err := rh.Names()
	if err != nil {
		return err
	}

	counter := freq.New()
	for _, name := range names {
		res, err := rh.Read(name)
		if err != nil {
			return err
		}

		counter.Update(res.Tokens)
	}

	var sink report.Sink
	if out := c.String("out"); out != "" {
		sink = report.FileSink{Path: out}
	} else {
		sink = report.StreamSink{W: ui.Out}
	}

	if c.Bool("cloud") {
		opts := report.CloudOptions{
			FontPath: c.String("font"),
			MaxWords: c.Int("top"),
		}
		return report.WordCloud(counter, opts, sink)
	}

	return report.PlotTermFrequencies(counter, c.Int("top"), c.String("title"), sink)
}
