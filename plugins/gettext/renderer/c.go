// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"msgc/internal/catalog"
	"msgc/plugins/gettext/csg"
)

const (
	argMsg      = "msg"
	varLangCode = "lang_code"
	typeCString = "const char *"
)

// RenderC генерирует функцию <prefix>_gettext за один проход по строкам.
// Каждая строка порождает свой фрагмент независимо от соседних, поэтому
// некорректная разметка даёт некорректный C, а не ошибку генерации.
func (r *Renderer) RenderC() *csg.File {

	getLang := r.symbol("get_system_language")

	file := csg.NewFile().
		Include("string.h").
		Line().
		Add(csg.NewStatement().Proto(typeCString, getLang)).
		Line()

	params := []string{csg.Param(typeCString, argMsg)}
	return file.Add(csg.NewStatement().Func(typeCString, r.symbol("gettext"), params, func(g *csg.Group) {
		g.Var(typeCString, varLangCode, csg.Id(getLang).Call())

		var fallback string
		for _, line := range r.lines {
			// Экранирование выполняется до разбора строки, срезы берутся уже от экранированного текста.
			escaped := catalog.Line{Number: line.Number, Raw: csg.EscapeQuotes(line.Raw)}
			switch escaped.Kind() {
			case catalog.KindID:
				fallback = escaped.ID()
				g.Depth(1).IfOpen(strcmpEqual(argMsg, fallback))
			case catalog.KindTerminator:
				g.Depth(2).Return(csg.Str(fallback))
				g.Depth(1).End()
			default:
				g.Depth(2).IfReturn(strcmpEqual(varLangCode, escaped.Lang()), csg.Str(escaped.Text()))
			}
		}
		g.Return(csg.Id(argMsg))
	}))
}

func strcmpEqual(name string, escaped string) *csg.Statement {
	return csg.Id("strcmp").Call(csg.Id(name), csg.Str(escaped)).Op("==").Lit(0)
}
