// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package catalog

import (
	"strings"
	"unicode/utf8"
)

const (
	prefixID   = "ID:"
	terminator = "---"
	// Код языка занимает первые два символа строки перевода, текст начинается с третьего.
	// Смещения считаются в символах, не в байтах.
	langWidth  = 2
	textOffset = 3
)

type LineKind int

const (
	KindTranslation LineKind = iota
	KindID
	KindTerminator
)

func (k LineKind) String() string {

	switch k {
	case KindID:
		return "id"
	case KindTerminator:
		return "terminator"
	default:
		return "translation"
	}
}

// Line строка исходного файла без завершающего перевода строки.
type Line struct {
	Number int
	Raw    string
}

func (l Line) Kind() LineKind {

	switch {
	case strings.HasPrefix(l.Raw, prefixID):
		return KindID
	case l.Raw == terminator:
		return KindTerminator
	default:
		return KindTranslation
	}
}

// ID сообщение по умолчанию для строки `ID:`.
func (l Line) ID() string {

	return Slice(l.Raw, len(prefixID), utf8.RuneCountInString(l.Raw))
}

func (l Line) Lang() string {

	return Slice(l.Raw, 0, langWidth)
}

func (l Line) Text() string {

	return Slice(l.Raw, textOffset, utf8.RuneCountInString(l.Raw))
}

// WellFormed сообщает, что строка перевода имеет вид `xx:текст`.
func (l Line) WellFormed() bool {

	if l.Kind() != KindTranslation {
		return true
	}
	return Slice(l.Raw, langWidth, textOffset) == ":"
}

// Slice возвращает символы s с from по to (не включая), обрезая границы по длине
// строки вместо паники. Некорректный байт UTF-8 считается одним символом.
func Slice(s string, from, to int) string {

	if from < 0 {
		from = 0
	}
	if from >= to {
		return ""
	}
	start, end := len(s), len(s)
	for i, n := 0, 0; i < len(s); n++ {
		if n == from {
			start = i
		}
		if n == to {
			end = i
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[start:end]
}
