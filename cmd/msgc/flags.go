// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"msgc/internal/config"
	"msgc/internal/helper"
	"msgc/internal/i18n"
	"msgc/plugins/gettext/generator"
	"msgc/plugins/gettext/renderer"
)

// urfave/cli хранит состояние разбора во флагах, поэтому на каждое приложение свой набор.
func globalFlags() []cli.Flag {

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to msgc.yaml (default: ./msgc.yaml when present)",
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "translation source file (default: message.txt)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file, \"-\" for stdout",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "C symbol prefix: <prefix>_gettext, <prefix>_get_system_language (default: noct)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "refuse to generate when the translation file is malformed",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "debug logging on stderr",
		},
	}
}

func goFlags() []cli.Flag {

	return []cli.Flag{
		&cli.StringFlag{Name: "package", Usage: "Go package name"},
		&cli.StringFlag{Name: "func", Usage: "name of the generated function"},
		&cli.StringFlag{Name: "lang-func", Usage: "name of the host function returning the language code"},
	}
}

// loadConfig накладывает явно заданные флаги поверх конфигурации из файла и окружения.
func loadConfig(cctx *cli.Context) (cfg config.Config, err error) {

	if cfg, err = config.Load(lookupString(cctx, "config"), os.Getenv); err != nil {
		return cfg, fmt.Errorf("%s: %w", i18n.Msg("failed to load config"), err)
	}
	if v := lookupString(cctx, "input"); v != "" {
		cfg.Input = v
	}
	if v := lookupString(cctx, "output"); v != "" {
		cfg.Output = v
	}
	if v := lookupString(cctx, "prefix"); v != "" {
		cfg.Prefix = v
	}
	if isSet(cctx, "strict") {
		cfg.Strict = lookupBool(cctx, "strict")
	}
	if v := lookupString(cctx, "package"); v != "" {
		cfg.Go.Package = v
	}
	if v := lookupString(cctx, "func"); v != "" {
		cfg.Go.Func = v
	}
	if v := lookupString(cctx, "lang-func"); v != "" {
		cfg.Go.LangFunc = v
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", i18n.Msg("failed to load config"), err)
	}
	return
}

func generatorOptions(cctx *cli.Context, cfg config.Config) generator.Options {

	return generator.Options{
		Input:  cfg.Input,
		Output: cfg.Output,
		Strict: cfg.Strict,
		Render: renderer.Options{
			Prefix:     cfg.Prefix,
			GoPackage:  cfg.Go.Package,
			GoFunc:     cfg.Go.Func,
			GoLangFunc: cfg.Go.LangFunc,
			Source:     cfg.Input,
			Langs:      helper.ParseStringList(lookupString(cctx, "langs")),
		},
	}
}

// Флаги ищутся по всей цепочке контекстов, поэтому глобальные флаги работают и после имени команды.
func lookupString(cctx *cli.Context, name string) string {

	for _, c := range cctx.Lineage() {
		if c.IsSet(name) {
			return c.String(name)
		}
	}
	return ""
}

func lookupBool(cctx *cli.Context, name string) bool {

	for _, c := range cctx.Lineage() {
		if c.IsSet(name) {
			return c.Bool(name)
		}
	}
	return false
}

func isSet(cctx *cli.Context, name string) bool {

	for _, c := range cctx.Lineage() {
		if c.IsSet(name) {
			return true
		}
	}
	return false
}
