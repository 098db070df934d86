// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"msgc/internal/catalog"
)

const (
	DefaultPrefix     = "noct"
	DefaultGoPackage  = "translation"
	DefaultGoFunc     = "Gettext"
	DefaultGoLangFunc = "SystemLanguage"
)

type Options struct {
	Prefix     string // Префикс C-символов: <prefix>_gettext, <prefix>_get_system_language
	GoPackage  string
	GoFunc     string
	GoLangFunc string
	Source     string   // Имя исходного файла для отчётов
	Langs      []string // Языки отчёта о покрытии, пусто = все
}

func (o Options) withDefaults() Options {

	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.GoPackage == "" {
		o.GoPackage = DefaultGoPackage
	}
	if o.GoFunc == "" {
		o.GoFunc = DefaultGoFunc
	}
	if o.GoLangFunc == "" {
		o.GoLangFunc = DefaultGoLangFunc
	}
	if o.Source == "" {
		o.Source = catalog.DefaultInput
	}
	return o
}

// Renderer строит выходные файлы по строкам файла переводов.
// C-вывод идёт построчно по исходнику, остальные форматы работают с разобранным каталогом.
type Renderer struct {
	lines   []catalog.Line
	catalog *catalog.Catalog
	opts    Options
}

func NewRenderer(lines []catalog.Line, opts Options) *Renderer {
	return &Renderer{
		lines:   lines,
		catalog: catalog.Parse(lines),
		opts:    opts.withDefaults(),
	}
}

func (r *Renderer) Catalog() *catalog.Catalog {
	return r.catalog
}

func (r *Renderer) symbol(name string) string {
	return r.opts.Prefix + "_" + name
}
