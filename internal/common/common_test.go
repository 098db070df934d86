// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {

	assert.Equal(t, []string{"de", "fr", "ja"}, SortedKeys(map[string]int{"fr": 2, "de": 1, "ja": 3}))
	assert.Empty(t, SortedKeys(map[string]struct{}{}))
}

func TestFilterStrings(t *testing.T) {

	langs := []string{"de", "en", "fr"}
	assert.Equal(t, langs, FilterStrings(langs, nil))
	assert.Equal(t, []string{"de", "fr"}, FilterStrings(langs, []string{"fr", "de", "ru"}))
}
