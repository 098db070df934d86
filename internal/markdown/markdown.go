// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const lineFeed = "\n"

type Markdown struct {
	body []string
	dest io.Writer
	err  error
}

func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{
		body: []string{},
		dest: w,
	}
}

func (m *Markdown) String() string {
	return strings.Join(m.body, lineFeed)
}

func (m *Markdown) Error() error {
	return m.err
}

func (m *Markdown) PlainText(text string) *Markdown {
	m.body = append(m.body, text)
	return m
}

func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	return m.PlainText(fmt.Sprintf(format, args...))
}

func (m *Markdown) Build() error {
	if _, err := fmt.Fprint(m.dest, m.String()+lineFeed); err != nil {
		if m.err != nil {
			return fmt.Errorf("failed to write markdown text: %w: %s", err, m.err.Error()) //nolint:wrapcheck
		}
		return fmt.Errorf("failed to write markdown text: %w", err)
	}
	return m.err
}

func (m *Markdown) H1(text string) *Markdown {
	m.body = append(m.body, "# "+text)
	return m
}

func (m *Markdown) H2(text string) *Markdown {
	m.body = append(m.body, "## "+text)
	return m
}

func (m *Markdown) H2f(format string, args ...any) *Markdown {
	return m.H2(fmt.Sprintf(format, args...))
}

func (m *Markdown) BulletList(text ...string) *Markdown {
	for _, v := range text {
		m.body = append(m.body, "- "+v)
	}
	return m
}

type TableSet struct {
	Header []string
	Rows   [][]string
}

func (t *TableSet) ValidateColumns() error {
	headerColumns := len(t.Header)
	for _, record := range t.Rows {
		if len(record) != headerColumns {
			return ErrMismatchColumn
		}
	}
	return nil
}

type TableOptions struct {
	// AutoWrapText is whether to wrap the text automatically.
	AutoWrapText bool
	// AutoFormatHeaders is whether to format the header automatically.
	AutoFormatHeaders bool
}

// CustomTable рендерит таблицу через tablewriter в markdown-разметке.
func (m *Markdown) CustomTable(t TableSet, options TableOptions) *Markdown {
	if err := t.ValidateColumns(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to validate columns: %w", err))
		return m
	}

	buf := &strings.Builder{}
	table := tablewriter.NewTable(
		buf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{
						Left:   tw.On,
						Top:    tw.Off,
						Right:  tw.On,
						Bottom: tw.Off,
					},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: stateOf(options.AutoFormatHeaders),
				},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: func() int {
						if options.AutoWrapText {
							return tw.WrapNormal
						}
						return tw.WrapNone
					}(),
					AutoFormat: stateOf(options.AutoFormatHeaders),
				},
				Alignment: tw.CellAlignment{Global: tw.AlignNone},
			},
		}),
	)

	table.Header(t.Header)
	if err := table.Bulk(t.Rows); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to add rows to table: %w", err))
		return m
	}
	if err := table.Render(); err != nil {
		m.err = errors.Join(m.err, fmt.Errorf("failed to render table: %w", err))
		return m
	}

	m.body = append(m.body, strings.TrimSuffix(buf.String(), lineFeed))
	return m
}

func stateOf(on bool) tw.State {
	if on {
		return tw.Success
	}
	return tw.Fail
}

func (m *Markdown) LF() *Markdown {
	m.body = append(m.body, "")
	return m
}
