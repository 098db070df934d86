// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"fmt"
	"io"

	"msgc/internal/catalog"
	"msgc/internal/common"
	"msgc/internal/markdown"
)

// LanguageCoverage сколько записей каталога переведено на язык.
type LanguageCoverage struct {
	Lang       string
	Translated int
	Missing    []string
}

func (c LanguageCoverage) Percent(total int) float64 {

	if total == 0 {
		return 100
	}
	return float64(c.Translated) * 100 / float64(total)
}

// Coverage считает покрытие по каждому языку, встречающемуся в каталоге.
func (r *Renderer) Coverage() (coverage []LanguageCoverage) {

	for _, lang := range common.FilterStrings(r.catalog.Languages(), r.opts.Langs) {
		cov := LanguageCoverage{Lang: lang, Missing: make([]string, 0)}
		for _, entry := range r.catalog.Entries {
			if entry.Has(lang) {
				cov.Translated++
				continue
			}
			cov.Missing = append(cov.Missing, entry.ID)
		}
		coverage = append(coverage, cov)
	}
	return
}

// RenderReport пишет markdown-отчёт о полноте переводов.
func (r *Renderer) RenderReport(w io.Writer) error {

	total := len(r.catalog.Entries)
	coverage := r.Coverage()

	md := markdown.NewMarkdown(w).
		H1("Translation coverage").
		LF().
		PlainTextf("Source: %s, entries: %d, languages: %d.", markdown.Code(r.opts.Source), total, len(coverage)).
		LF()

	if len(coverage) == 0 {
		return md.PlainText("No translations found.").Build()
	}

	rows := make([][]string, 0, len(coverage))
	for _, cov := range coverage {
		rows = append(rows, []string{
			cov.Lang,
			fmt.Sprintf("%d", cov.Translated),
			fmt.Sprintf("%d", len(cov.Missing)),
			fmt.Sprintf("%.1f%%", cov.Percent(total)),
		})
	}
	md.CustomTable(markdown.TableSet{
		Header: []string{"Language", "Translated", "Missing", "Coverage"},
		Rows:   rows,
	}, markdown.TableOptions{})

	for _, cov := range coverage {
		if len(cov.Missing) == 0 {
			continue
		}
		md.LF().H2f("Missing in %s", markdown.Code(cov.Lang)).LF()
		missing := make([]string, 0, len(cov.Missing))
		for _, id := range cov.Missing {
			missing = append(missing, markdown.Code(catalog.Unescape(id)))
		}
		md.BulletList(missing...)
	}
	return md.Build()
}
