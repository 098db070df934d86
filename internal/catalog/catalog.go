// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package catalog

import (
	"strconv"
	"strings"

	"msgc/internal/common"
)

type Translation struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
	Line int    `json:"line"`
}

type Entry struct {
	ID           string        `json:"id"`
	Translations []Translation `json:"translations"`
	Line         int           `json:"line"`
}

// Text возвращает перевод для языка или сообщение по умолчанию. Побеждает первый перевод в порядке файла.
func (e *Entry) Text(lang string) string {

	for _, tr := range e.Translations {
		if tr.Lang == lang {
			return tr.Text
		}
	}
	return e.ID
}

func (e *Entry) Has(lang string) bool {

	for _, tr := range e.Translations {
		if tr.Lang == lang {
			return true
		}
	}
	return false
}

type Catalog struct {
	Entries []*Entry `json:"entries"`
}

// Parse собирает записи за один проход. Разбор нестрогий: новая строка `ID:` или конец файла
// закрывают открытую запись, переводы вне записи отбрасываются. Ошибки разметки ищет validate.Check.
func Parse(lines []Line) (cat *Catalog) {

	cat = &Catalog{Entries: make([]*Entry, 0)}

	var current *Entry
	closeEntry := func() {
		if current != nil {
			cat.Entries = append(cat.Entries, current)
			current = nil
		}
	}
	for _, line := range lines {
		switch line.Kind() {
		case KindID:
			closeEntry()
			current = &Entry{ID: line.ID(), Line: line.Number, Translations: make([]Translation, 0)}
		case KindTerminator:
			closeEntry()
		default:
			if current == nil {
				continue
			}
			current.Translations = append(current.Translations, Translation{
				Lang: line.Lang(),
				Text: line.Text(),
				Line: line.Number,
			})
		}
	}
	closeEntry()
	return
}

// Find возвращает первую запись с указанным сообщением по умолчанию.
func (c *Catalog) Find(id string) *Entry {

	for _, entry := range c.Entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// Lookup повторяет поведение сгенерированной функции gettext: msg сравнивается
// с сообщениями после раскрытия escape-последовательностей, как их видит компилятор C.
func (c *Catalog) Lookup(msg string, lang string) string {

	for _, entry := range c.Entries {
		if Unescape(entry.ID) == msg {
			return Unescape(entry.Text(lang))
		}
	}
	return msg
}

// Languages все коды языков каталога в отсортированном виде.
func (c *Catalog) Languages() []string {

	langs := make(map[string]struct{})
	for _, entry := range c.Entries {
		for _, tr := range entry.Translations {
			langs[tr.Lang] = struct{}{}
		}
	}
	return common.SortedKeys(langs)
}

// Unescape раскрывает escape-последовательности C в тексте сообщения.
// Текст с некорректной последовательностью возвращается как есть.
func Unescape(text string) string {

	if !strings.ContainsRune(text, '\\') {
		return text
	}
	unquoted, err := strconv.Unquote(`"` + strings.ReplaceAll(text, `"`, `\"`) + `"`)
	if err != nil {
		return text
	}
	return unquoted
}
