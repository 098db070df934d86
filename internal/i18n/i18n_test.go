// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package i18n

import (
	"testing"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {

	bundle := NewBundle()

	ru := goi18n.NewLocalizer(bundle, "ru", "en")
	assert.Equal(t, "генерация завершена", Localize(ru, "generation completed"))
	assert.Equal(t, "no such message", Localize(ru, "no such message"))

	en := goi18n.NewLocalizer(bundle, "en")
	assert.Equal(t, "generation completed", Localize(en, "generation completed"))
	assert.Equal(t, "", Localize(en, ""))
}
