// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"msgc/internal/config"
	"msgc/internal/i18n"
)

func main() {

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "msgc: %v\n", err)
		os.Exit(1)
	}
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "msgc: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer, stderr io.Writer) *cli.App {

	return &cli.App{
		Name:      "msgc",
		Usage:     i18n.Msg("Translation table compiler"),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Before: func(cctx *cli.Context) error {
			level := slog.LevelWarn
			if cctx.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		// Без команды ведёт себя как исходный генератор: message.txt -> C на stdout.
		Action: generateAction(targetC),
		Commands: []*cli.Command{
			newCCmd(),
			newGoCmd(),
			newJSONCmd(),
			newReportCmd(),
			newCheckCmd(),
			newLookupCmd(),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
