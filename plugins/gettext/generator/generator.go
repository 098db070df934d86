// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"msgc/internal/catalog"
	"msgc/internal/helper"
	"msgc/internal/i18n"
	"msgc/internal/validate"
	"msgc/plugins/gettext/renderer"
)

type Target string

const (
	TargetC      Target = "c"
	TargetGo     Target = "go"
	TargetJSON   Target = "json"
	TargetReport Target = "report"
)

type Options struct {
	Input  string
	Output string // Пусто или "-" означает stdout
	Strict bool   // Не генерировать ничего при ошибках разметки
	Render renderer.Options
}

// Generate читает файл переводов целиком и пишет результат для target.
// Вывод собирается в памяти и записывается только после успешного рендеринга.
func Generate(ctx context.Context, target Target, opts Options, stdout io.Writer) (err error) {

	slog.Debug(i18n.Msg("generation started"), slog.String("target", string(target)), slog.String("options", helper.Dump(opts)))

	var lines []catalog.Line
	if lines, err = load(opts); err != nil {
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}

	if opts.Render.Source == "" {
		opts.Render.Source = opts.Input
	}
	gen := &generator{
		target:   target,
		renderer: renderer.NewRenderer(lines, opts.Render),
	}

	var buf bytes.Buffer
	if err = gen.render(&buf); err != nil {
		slog.Error(i18n.Msg("generation failed"), slog.String("target", string(target)), slog.String("error", err.Error()))
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}
	if err = write(opts.Output, stdout, buf.Bytes()); err != nil {
		return
	}

	slog.Debug(i18n.Msg("generation completed"),
		slog.String("target", string(target)),
		slog.String("output", opts.Output),
		slog.Int("entries", len(gen.renderer.Catalog().Entries)),
		slog.Int("bytes", buf.Len()),
	)
	return
}

// Check возвращает диагностику файла переводов.
func Check(input string) (diags validate.Diagnostics, err error) {

	var lines []catalog.Line
	if lines, err = catalog.ReadFile(input); err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.Msg("failed to read translation file"), err)
	}
	return validate.Check(lines), nil
}

// Lookup переводит сообщение так же, как это сделает сгенерированная функция.
func Lookup(input string, msg string, lang string) (text string, err error) {

	var lines []catalog.Line
	if lines, err = catalog.ReadFile(input); err != nil {
		return "", fmt.Errorf("%s: %w", i18n.Msg("failed to read translation file"), err)
	}
	return catalog.Parse(lines).Lookup(msg, lang), nil
}

type generator struct {
	target   Target
	renderer *renderer.Renderer
}

func (g *generator) render(w io.Writer) (err error) {

	switch g.target {
	case TargetC:
		slog.Debug(i18n.Msg("generating C source"))
		_, err = g.renderer.RenderC().WriteTo(w)
	case TargetGo:
		slog.Debug(i18n.Msg("generating Go source"))
		err = g.renderer.RenderGo().Render(w)
	case TargetJSON:
		slog.Debug(i18n.Msg("generating JSON catalog"))
		var data []byte
		if data, err = g.renderer.RenderJSON(); err != nil {
			return
		}
		_, err = w.Write(data)
	case TargetReport:
		slog.Debug(i18n.Msg("generating coverage report"))
		err = g.renderer.RenderReport(w)
	default:
		err = fmt.Errorf("%s %q", i18n.Msg("unknown target"), g.target)
	}
	return
}

func load(opts Options) (lines []catalog.Line, err error) {

	if lines, err = catalog.ReadFile(opts.Input); err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.Msg("failed to read translation file"), err)
	}

	diags := validate.Check(lines)
	for _, d := range diags {
		slog.Debug(d.Message, slog.String("file", opts.Input), slog.Int("line", d.Line), slog.String("severity", d.Severity.String()))
	}
	if opts.Strict {
		if err = diags.Err(opts.Input); err != nil {
			return nil, fmt.Errorf("%s: %w", i18n.Msg("translation file is invalid"), err)
		}
	}
	return
}

func write(output string, stdout io.Writer, data []byte) (err error) {

	var w io.WriteCloser
	if w, err = helper.OpenOutput(output, stdout); err != nil {
		return fmt.Errorf("%s: %w", i18n.Msg("failed to open output"), err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%s: %w", i18n.Msg("failed to write output"), closeErr)
		}
	}()
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("%s: %w", i18n.Msg("failed to write output"), err)
	}
	return
}
