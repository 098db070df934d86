// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package csg

import (
	"io"
	"strings"
)

type File struct {
	includes   []string
	statements []*Statement
}

func NewFile() *File {
	return &File{
		includes:   make([]string, 0),
		statements: make([]*Statement, 0),
	}
}

// Include системный заголовок. Повторы игнорируются, порядок сохраняется.
func (f *File) Include(header string) *File {
	for _, h := range f.includes {
		if h == header {
			return f
		}
	}
	f.includes = append(f.includes, header)
	return f
}

func (f *File) Add(stmt *Statement) *File {
	if stmt != nil {
		f.statements = append(f.statements, stmt)
	}
	return f
}

func (f *File) Line() *File {
	f.statements = append(f.statements, NewStatement().Line())
	return f
}

func (f *File) WriteTo(w io.Writer) (n int64, err error) {
	var written int
	written, err = io.WriteString(w, f.String())
	return int64(written), err
}

func (f *File) String() string {
	var buf strings.Builder

	for _, header := range f.includes {
		buf.WriteString("#include <" + header + ">\n")
	}

	for _, stmt := range f.statements {
		buf.WriteString(stmt.String())
	}

	return buf.String()
}
