// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package helper

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// IsStdout пустой путь и "-" означают стандартный вывод.
func IsStdout(output string) bool {

	return output == "" || output == "-"
}

// OpenOutput открывает файл вывода, создавая родительский каталог. Для stdout Close ничего не делает.
func OpenOutput(output string, stdout io.Writer) (w io.WriteCloser, err error) {

	if IsStdout(output) {
		return nopCloser{Writer: stdout}, nil
	}

	output = filepath.Clean(output)
	if dir := filepath.Dir(output); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "create output directory %s", dir)
		}
	}

	var file *os.File
	if file, err = os.Create(output); err != nil {
		return nil, errors.Wrapf(err, "create %s", output)
	}
	return file, nil
}
