// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `ID:hello
en:hi
de:hallo
---
ID:x
---
ID:Cannot open file "%s".
fr:Impossible d'ouvrir le fichier "%s".
---
`

func TestSplit(t *testing.T) {

	assert.Nil(t, Split(""))
	assert.Equal(t, []Line{{Number: 1, Raw: ""}}, Split("\n"))
	assert.Equal(t, []Line{{Number: 1, Raw: "a"}, {Number: 2, Raw: "b"}}, Split("a\r\nb"))
	assert.Equal(t, []Line{{Number: 1, Raw: "a"}, {Number: 2, Raw: ""}, {Number: 3, Raw: "b"}}, Split("a\r\rb\n"))
}

func TestLineKinds(t *testing.T) {

	id := Line{Raw: "ID:hello"}
	assert.Equal(t, KindID, id.Kind())
	assert.Equal(t, "hello", id.ID())

	assert.Equal(t, KindTerminator, Line{Raw: "---"}.Kind())
	assert.Equal(t, KindTranslation, Line{Raw: "----"}.Kind())
	assert.Equal(t, KindTranslation, Line{Raw: "id:lower case is a language"}.Kind())

	tr := Line{Raw: "ja:こんにちは"}
	assert.Equal(t, KindTranslation, tr.Kind())
	assert.Equal(t, "ja", tr.Lang())
	assert.Equal(t, "こんにちは", tr.Text())
	assert.True(t, tr.WellFormed())
}

func TestShortLinesDoNotPanic(t *testing.T) {

	for _, raw := range []string{"", "e", "en", "en:"} {
		line := Line{Raw: raw}
		assert.NotPanics(t, func() {
			_ = line.Lang()
			_ = line.Text()
		}, raw)
		assert.Equal(t, "", line.Text(), raw)
	}
	assert.Equal(t, "en", Line{Raw: "en"}.Lang())
	assert.False(t, Line{Raw: "en"}.WellFormed())
	assert.False(t, Line{Raw: "en-hi"}.WellFormed())
	assert.Equal(t, "", Line{Raw: "ID:"}.ID())
}

func TestSliceCountsCharacters(t *testing.T) {

	line := Line{Raw: "日本語"}
	assert.Equal(t, "日本", line.Lang())
	assert.Equal(t, "", line.Text())
	assert.False(t, line.WellFormed())

	accented := Line{Raw: "é:x"}
	assert.Equal(t, "é:", accented.Lang())
	assert.Equal(t, "", accented.Text())
	assert.False(t, accented.WellFormed())

	assert.Equal(t, "ü", Line{Raw: "fr:ü"}.Text())
	assert.Equal(t, "\xffa", Slice("\xffab", 0, 2))
	assert.Equal(t, "", Slice("ab", 5, 9))
}

func TestParseAndLookup(t *testing.T) {

	cat := Parse(Split(sample))
	require.Len(t, cat.Entries, 3)

	assert.Equal(t, "hi", cat.Lookup("hello", "en"))
	assert.Equal(t, "hallo", cat.Lookup("hello", "de"))
	assert.Equal(t, "hello", cat.Lookup("hello", "ja"))
	assert.Equal(t, "hello", cat.Lookup("hello", ""))

	assert.Equal(t, "x", cat.Lookup("x", "en"))
	assert.Equal(t, "x", cat.Lookup("x", "de"))

	assert.Equal(t, "unknown", cat.Lookup("unknown", "en"))
	assert.Equal(t, `Impossible d'ouvrir le fichier "%s".`, cat.Lookup(`Cannot open file "%s".`, "fr"))

	assert.Equal(t, []string{"de", "en", "fr"}, cat.Languages())
	assert.Equal(t, 5, cat.Find("x").Line)
	assert.Nil(t, cat.Find("nope"))
}

func TestLookupFirstMatchWins(t *testing.T) {

	cat := Parse(Split("ID:a\nen:first\nen:second\n---\nID:a\nen:other entry\n---\n"))
	assert.Equal(t, "first", cat.Lookup("a", "en"))
}

func TestLookupUnescapes(t *testing.T) {

	cat := Parse(Split("ID:a\\nb\nen:x\\ty\n---\n"))
	assert.Equal(t, "x\ty", cat.Lookup("a\nb", "en"))
	assert.Equal(t, "a\nb", cat.Lookup("a\nb", "de"))
	assert.Equal(t, `a\nb`, cat.Lookup(`a\nb`, "en"))
}

func TestParseLenient(t *testing.T) {

	cat := Parse(Split("en:orphan\nID:a\nen:x\nID:b\nde:y\n---\n---\nID:c\nfr:z"))
	require.Len(t, cat.Entries, 3)
	assert.Equal(t, "a", cat.Entries[0].ID)
	assert.Len(t, cat.Entries[0].Translations, 1)
	assert.Equal(t, "y", cat.Lookup("b", "de"))
	assert.Equal(t, "z", cat.Lookup("c", "fr"))
}

func TestUnescape(t *testing.T) {

	assert.Equal(t, "plain", Unescape("plain"))
	assert.Equal(t, "a\nb", Unescape(`a\nb`))
	assert.Equal(t, `say "hi"`+"\t", Unescape(`say "hi"\t`))
	assert.Equal(t, `broken \q`, Unescape(`broken \q`))
	assert.Equal(t, `tail\`, Unescape(`tail\`))
}

func TestReadFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), DefaultInput)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0600))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, lines, strings.Count(sample, "\n"))
	assert.Equal(t, 9, lines[8].Number)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}
