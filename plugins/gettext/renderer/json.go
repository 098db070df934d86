// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"github.com/goccy/go-json"

	"msgc/internal/catalog"
)

type jsonCatalog struct {
	Source    string           `json:"source"`
	Languages []string         `json:"languages"`
	Entries   []*catalog.Entry `json:"entries"`
}

// RenderJSON выгружает каталог с раскрытыми escape-последовательностями в порядке файла.
func (r *Renderer) RenderJSON() (data []byte, err error) {

	out := jsonCatalog{
		Source:    r.opts.Source,
		Languages: r.catalog.Languages(),
		Entries:   make([]*catalog.Entry, 0, len(r.catalog.Entries)),
	}
	for _, entry := range r.catalog.Entries {
		unescaped := &catalog.Entry{
			ID:           catalog.Unescape(entry.ID),
			Line:         entry.Line,
			Translations: make([]catalog.Translation, 0, len(entry.Translations)),
		}
		for _, tr := range entry.Translations {
			unescaped.Translations = append(unescaped.Translations, catalog.Translation{
				Lang: tr.Lang,
				Text: catalog.Unescape(tr.Text),
				Line: tr.Line,
			})
		}
		out.Entries = append(out.Entries, unescaped)
	}
	if data, err = json.MarshalIndent(out, "", "  "); err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
