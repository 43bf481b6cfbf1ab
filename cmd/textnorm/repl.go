package main

import (
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/textnorm/norm"
	"github.com/revelaction/textnorm/stem"
	"github.com/revelaction/textnorm/token"
)

func replCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "normalize text interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "stopwords",
				Usage: "stopword file, one word per line",
			},
			&cli.StringFlag{
				Name:  "stem",
				Value: "english",
				Usage: "snowball language for the stemming toggle",
			},
		},
		Action: func(c *cli.Context) error {
			stops, err := readStopwords(c.String("stopwords"))
			if err != nil {
				return err
			}

			r := &repl{
				ui:      ui,
				stops:   stops,
				stemmer: stem.Snowball(c.String("stem")),
			}
			return r.run()
		},
	}
}

type repl struct {
	ui      UI
	stops   token.Set
	stemmer token.Stemmer

	// stemming toggle state
	stemming bool
}

func (r *repl) run() error {
	fmt.Fprintln(r.ui.Out, "🔑 Ctrl+F: toggle stemming, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      ✂  ", r.completer,
			prompt.OptionTitle("textnorm repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					r.stemming = !r.stemming
					fmt.Fprintf(r.ui.Out, "Stemming set to %t\n", r.stemming)
				}}),
		)

		if in == "quit" {
			return nil
		}
		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		var opts norm.Options
		if r.stemming {
			opts.Stemmer = r.stemmer
		}

		toks, err := norm.Normalize(token.Raw(in), r.stops, opts)
		if err != nil {
			fmt.Fprintf(r.ui.Out, "❌ %s\n", err)
			continue
		}

		fmt.Fprintln(r.ui.Out, strings.Join(toks, " "))
	}
}

func (r *repl) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "quit", Description: "exit the repl"},
	}

	return prompt.FilterHasPrefix(s, in.GetWordBeforeCursor(), true)
}
