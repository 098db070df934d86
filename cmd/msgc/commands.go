// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"msgc/internal/i18n"
	"msgc/internal/locale"
	"msgc/internal/validate"
	"msgc/plugins/gettext/generator"
)

const (
	targetC      = generator.TargetC
	targetGo     = generator.TargetGo
	targetJSON   = generator.TargetJSON
	targetReport = generator.TargetReport
)

func newCCmd() *cli.Command {

	return &cli.Command{
		Name:    "c",
		Aliases: []string{"generate"},
		Usage:   i18n.Msg("Generate the C gettext function"),
		Action:  generateAction(targetC),
	}
}

func newGoCmd() *cli.Command {

	return &cli.Command{
		Name:   "go",
		Usage:  i18n.Msg("Generate an equivalent Go function"),
		Flags:  goFlags(),
		Action: generateAction(targetGo),
	}
}

func newJSONCmd() *cli.Command {

	return &cli.Command{
		Name:   "json",
		Usage:  i18n.Msg("Dump the catalog as JSON"),
		Action: generateAction(targetJSON),
	}
}

func newReportCmd() *cli.Command {

	return &cli.Command{
		Name:  "report",
		Usage: i18n.Msg("Write a markdown coverage report"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "langs", Usage: "comma-separated language codes to include (default: all)"},
		},
		Action: generateAction(targetReport),
	}
}

func newCheckCmd() *cli.Command {

	return &cli.Command{
		Name:  "check",
		Usage: i18n.Msg("Check the translation file"),
		Action: func(cctx *cli.Context) error {

			cfg, err := loadConfig(cctx)
			if err != nil {
				return err
			}
			var diags validate.Diagnostics
			if diags, err = generator.Check(cfg.Input); err != nil {
				return err
			}
			printDiagnostics(cctx, cfg.Input, diags)
			if diags.HasErrors() {
				return errors.New(i18n.Msg("catalog check found problems"))
			}
			fmt.Fprintf(cctx.App.ErrWriter, "%s: %s\n", cfg.Input, i18n.Msg("catalog is valid"))
			return nil
		},
	}
}

func newLookupCmd() *cli.Command {

	return &cli.Command{
		Name:      "lookup",
		Usage:     i18n.Msg("Translate a message the way the generated code does"),
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Value: "auto",
				Usage: "language code, \"auto\" derives it from LC_ALL, LC_MESSAGES or LANG",
			},
		},
		Action: func(cctx *cli.Context) error {

			if cctx.NArg() != 1 {
				return errors.New(i18n.Msg("message argument is required"))
			}
			cfg, err := loadConfig(cctx)
			if err != nil {
				return err
			}
			lang := cctx.String("lang")
			if lang == "auto" {
				lang = locale.SystemLanguage(os.Getenv)
			}
			var text string
			if text, err = generator.Lookup(cfg.Input, cctx.Args().First(), lang); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cctx.App.Writer, text)
			return err
		},
	}
}

func generateAction(target generator.Target) cli.ActionFunc {

	return func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		return generator.Generate(cctx.Context, target, generatorOptions(cctx, cfg), cctx.App.Writer)
	}
}

func printDiagnostics(cctx *cli.Context, source string, diags validate.Diagnostics) {

	errorColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	if isTerminal(cctx.App.ErrWriter) {
		errorColor.EnableColor()
		warnColor.EnableColor()
	} else {
		errorColor.DisableColor()
		warnColor.DisableColor()
	}
	for _, d := range diags {
		severity := warnColor.Sprint(d.Severity)
		if d.Severity == validate.SeverityError {
			severity = errorColor.Sprint(d.Severity)
		}
		fmt.Fprintf(cctx.App.ErrWriter, "%s:%d: %s: %s\n", source, d.Line, severity, d.Message)
	}
	if len(diags) > 0 {
		fmt.Fprintf(cctx.App.ErrWriter, "%d error(s), %d warning(s)\n",
			diags.Count(validate.SeverityError), diags.Count(validate.SeverityWarning))
	}
}

func isTerminal(w io.Writer) bool {

	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
