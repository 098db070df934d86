// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package catalog

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultInput имя файла переводов, которое читается без явного указания пути.
const DefaultInput = "message.txt"

// ReadFile читает файл целиком и закрывает его до начала разбора.
func ReadFile(path string) (lines []Line, err error) {

	var file *os.File
	if file, err = os.Open(path); err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	if lines, err = Read(file); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return
}

func Read(r io.Reader) (lines []Line, err error) {

	var data []byte
	if data, err = io.ReadAll(r); err != nil {
		return nil, errors.WithStack(err)
	}
	return Split(string(data)), nil
}

// Split режет текст на строки. Переводы строк `\r\n` и `\r` приводятся к `\n`,
// последняя строка без перевода строки сохраняется целиком.
func Split(text string) (lines []Line) {

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")

	for i, raw := range strings.Split(text, "\n") {
		lines = append(lines, Line{Number: i + 1, Raw: raw})
	}
	return
}
