// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package locale

import (
	"os"
	"strings"
	"sync"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
)

var (
	detectedLanguage   Language
	detectLanguageOnce sync.Once
)

// DetectLanguage язык сообщений самой утилиты, читает MSGC_LANG; результат кэшируется после первого вызова.
func DetectLanguage() Language {

	detectLanguageOnce.Do(func() {
		detectedLanguage = parseLanguage(os.Getenv("MSGC_LANG"))
	})
	return detectedLanguage
}

func parseLanguage(value string) Language {

	value = strings.ToLower(value)
	if strings.HasPrefix(value, "ru") {
		return LanguageRU
	}
	return LanguageEN
}

// Коды, которые понимает сгенерированный gettext. Проверяются по порядку, первый совпавший префикс побеждает.
var systemCodes = []struct {
	prefix string
	code   string
}{
	{"en", "en"},
	{"fr", "fr"},
	{"de", "de"},
	{"it", "it"},
	{"es", "es"},
	{"el", "el"},
	{"ru", "ru"},
	{"zh_CN", "zh"},
	{"zh_TW", "tw"},
	{"ja", "ja"},
}

// SystemLanguage определяет код языка каталога по POSIX-локали так же,
// как это делает среда исполнения перед вызовом gettext. По умолчанию "en".
func SystemLanguage(getenv func(string) string) string {

	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := getenv(name); value != "" {
			return LanguageCode(value)
		}
	}
	return string(LanguageEN)
}

// LanguageCode переводит имя локали вида "de_DE.UTF-8" в двухбуквенный код.
func LanguageCode(localeName string) string {

	if len(localeName) < 2 {
		return string(LanguageEN)
	}
	for _, sc := range systemCodes {
		if strings.HasPrefix(localeName, sc.prefix) {
			return sc.code
		}
	}
	return string(LanguageEN)
}
