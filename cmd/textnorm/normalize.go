package main

import (
	"encoding/json"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/textnorm/norm"
	"github.com/revelaction/textnorm/stem"
	"github.com/revelaction/textnorm/storage"
	"github.com/revelaction/textnorm/storage/filesystem"
	"github.com/revelaction/textnorm/storage/sqlite/zombiezen"
	"github.com/revelaction/textnorm/token"
)

func normalizeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "normalize",
		Usage: "normalize all documents of a corpus directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: "./corpus",
				Usage: "corpus directory (.txt raw text, .json annotated docs)",
			},
			&cli.StringFlag{
				Name:  "stopwords",
				Usage: "stopword file, one word per line",
			},
			&cli.StringFlag{
				Name:  "stem",
				Usage: "stem tokens with the given snowball language",
			},
			&cli.BoolFlag{
				Name:  "lemma",
				Usage: "lemmatize using the pre-annotated .json docs",
			},
			&cli.BoolFlag{
				Name:  "ner",
				Usage: "keep named entities in one token (implies --lemma)",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "write results to this sqlite database instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			return normalizeAction(c, ui)
		},
	}
}

func normalizeAction(c *cli.Context, ui UI) error {
	stops, err := readStopwords(c.String("stopwords"))
	if err != nil {
		return err
	}

	if c.String("stem") != "" && (c.Bool("lemma") || c.Bool("ner")) {
		return fmt.Errorf("stemming and lemmatization can not be combined")
	}

	h := filesystem.NewCorpusHandler(c.String("dir"))
	names, err := h.Names()
	if err != nil {
		return err
	}

	results, err := normalizeCorpus(h, names, stops, c)
	if err != nil {
		return err
	}

	if dbPath := c.String("db"); dbPath != "" {
		rh, err := zombiezen.NewResultHandler(dbPath)
		if err != nil {
			return err
		}
		defer rh.Close()

		for _, res := range results {
			if err := rh.Write(res); err != nil {
				return err
			}
		}

		return nil
	}

	return json.NewEncoder(ui.Out).Encode(results)
}

func normalizeCorpus(h *filesystem.CorpusHandler, names []string, stops token.Set, c *cli.Context) ([]storage.Result, error) {
	lemma := c.Bool("lemma") || c.Bool("ner")

	var opts norm.Options
	if lang := c.String("stem"); lang != "" {
		opts.Stemmer = stem.Snowball(lang)
	}

	// Start progress indicator
	uiprogress.Start()
	bar := uiprogress.AddBar(len(names))
	bar.AppendCompleted()
	bar.PrependElapsed()
	// Append doc name to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		if b.Current() == 0 {
			return ""
		}
		return names[b.Current()-1]
	})

	var results []storage.Result
	for _, name := range names {
		toks, err := normalizeDoc(h, name, stops, opts, lemma, c.Bool("ner"))
		if err != nil {
			uiprogress.Stop()
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		results = append(results, storage.Result{Name: name, Tokens: toks})
		bar.Incr()
	}

	uiprogress.Stop()
	return results, nil
}

func normalizeDoc(h *filesystem.CorpusHandler, name string, stops token.Set, opts norm.Options, lemma, ner bool) ([]string, error) {
	if lemma {
		doc, err := h.Doc(name)
		if err != nil {
			return nil, err
		}

		return norm.LemmatizeDoc(doc, stops, ner)
	}

	u, err := h.Unit(name)
	if err != nil {
		return nil, err
	}

	return norm.Normalize(u, stops, opts)
}

func readStopwords(path string) (token.Set, error) {
	if path == "" {
		return token.Set{}, nil
	}

	return token.ReadSet(path)
}
