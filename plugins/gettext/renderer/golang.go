// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"msgc/internal/catalog"
)

// RenderGo генерирует Go-аналог C-функции с тем же порядком проверок.
// Функция определения языка объявляется в пакете-потребителе.
func (r *Renderer) RenderGo() *jen.File {

	file := jen.NewFile(r.opts.GoPackage)
	file.HeaderComment("Code generated by msgc. DO NOT EDIT.")

	withLang := false
	for _, entry := range r.catalog.Entries {
		if len(entry.Translations) > 0 {
			withLang = true
			break
		}
	}

	file.Commentf("%s returns the translation of msg for the current system language.", r.opts.GoFunc)
	file.Func().Id(r.opts.GoFunc).Params(jen.Id("msg").String()).String().BlockFunc(func(g *jen.Group) {
		if withLang {
			g.Id("langCode").Op(":=").Id(r.opts.GoLangFunc).Call()
		}
		for _, entry := range r.catalog.Entries {
			id := catalog.Unescape(entry.ID)
			g.Comment(fmt.Sprintf("%s:%d", r.opts.Source, entry.Line))
			g.If(jen.Id("msg").Op("==").Lit(id)).BlockFunc(func(g *jen.Group) {
				for _, tr := range entry.Translations {
					g.If(jen.Id("langCode").Op("==").Lit(tr.Lang)).Block(
						jen.Return(jen.Lit(catalog.Unescape(tr.Text))),
					)
				}
				g.Return(jen.Lit(id))
			})
		}
		g.Return(jen.Id("msg"))
	})
	return file
}
