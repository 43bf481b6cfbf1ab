package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/textnorm/report"
)

func reportCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "plot classification results from a csv of true,predicted label pairs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "labels",
				Usage:    "csv file with one true,predicted pair per line",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "directory for confusion_matrix.png and classification_report.csv",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print the classification report",
			},
		},
		Action: func(c *cli.Context) error {
			return reportAction(c, ui)
		},
	}
}

func reportAction(c *cli.Context, ui UI) error {
	yTrue, yPred, err := readLabels(c.String("labels"))
	if err != nil {
		return err
	}

	dir := c.String("out")

	if dir != "" {
		sink := report.FileSink{Path: filepath.Join(dir, "confusion_matrix.png")}
		opts := report.ConfusionOptions{Out: ui.Out}
		if err := report.PlotConfusionMatrix(yTrue, yPred, opts, sink); err != nil {
			return err
		}
	}

	cls, err := report.NewClassification(yTrue, yPred)
	if err != nil {
		return err
	}

	if dir != "" {
		f, err := os.Create(filepath.Join(dir, "classification_report.csv"))
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

	if c.Bool("verbose") {
		fmt.Fprint(ui.Out, cls.String())
	}

	return nil
}

func readLabels(path string) ([]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}

	var yTrue, yPred []string
	for i, row := range rows {
		if len(row) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 columns, got %d", i+1, len(row))
		}

		yTrue = append(yTrue, row[0])
		yPred = append(yPred, row[1])
	}

	return yTrue, yPred, nil
}
