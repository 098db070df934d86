// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package i18n

import (
	"embed"
	"io/fs"
	"log/slog"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"msgc/internal/locale"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

var (
	localizer     *goi18n.Localizer
	localizerOnce sync.Once
)

// NewBundle загружает встроенные переводы сообщений утилиты. Идентификатор сообщения
// совпадает с английским текстом, поэтому английский файл не нужен.
func NewBundle() *goi18n.Bundle {

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "locales/active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Debug("i18n: failed to load message file", slog.String("file", file), slog.String("error", err.Error()))
		}
	}
	return bundle
}

// Localize переводит сообщение на язык lang, при отсутствии перевода возвращает сам id.
func Localize(l *goi18n.Localizer, id string) string {

	if id == "" {
		return ""
	}
	msg, err := l.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// Msg переводит сообщение на язык, выбранный через MSGC_LANG.
func Msg(id string) string {

	localizerOnce.Do(func() {
		localizer = goi18n.NewLocalizer(NewBundle(), string(locale.DetectLanguage()), language.English.String())
	})
	return Localize(localizer, id)
}
