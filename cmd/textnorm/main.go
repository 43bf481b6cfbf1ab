package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Build information, set at link time.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	app := newApp(ui)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "textnorm: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:   "textnorm",
		Usage:  "normalize text corpora and plot classification results",
		Writer: ui.Out,
		Commands: []*cli.Command{
			normalizeCommand(ui),
			freqCommand(ui),
			reportCommand(ui),
			replCommand(ui),
			versionCommand(ui),
		},
	}
}

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "textnorm version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
