// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"msgc/internal/catalog"
)

// ErrInvalidCatalog возвращается в строгом режиме, если сгенерированный C не соберётся.
var ErrInvalidCatalog = errors.New("invalid translation catalog")

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {

	if s == SeverityError {
		return "error"
	}
	return "warning"
}

type Diagnostic struct {
	Line     int
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {

	return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Message)
}

type Diagnostics []Diagnostic

func (ds Diagnostics) HasErrors() bool {

	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (ds Diagnostics) Count(severity Severity) (n int) {

	for _, d := range ds {
		if d.Severity == severity {
			n++
		}
	}
	return
}

// Err сводит ошибки в одну, обёрнутую вокруг ErrInvalidCatalog. Предупреждения не учитываются.
func (ds Diagnostics) Err(source string) error {

	var msgs []string
	for _, d := range ds {
		if d.Severity == SeverityError {
			msgs = append(msgs, fmt.Sprintf("%s:%s", source, d))
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n%s", ErrInvalidCatalog, strings.Join(msgs, "\n"))
}

type checker struct {
	diags   Diagnostics
	ids     map[string]int
	open    bool
	entryAt int
	langs   map[string]int
}

// Check ищет разметку, из-за которой сгенерированный C будет некорректным (ошибки),
// и подозрительное содержимое, которое даёт корректный, но вряд ли желаемый код (предупреждения).
func Check(lines []catalog.Line) Diagnostics {

	c := &checker{ids: make(map[string]int)}
	for _, line := range lines {
		switch line.Kind() {
		case catalog.KindID:
			c.id(line)
		case catalog.KindTerminator:
			c.terminator(line)
		default:
			c.translation(line)
		}
	}
	if c.open {
		c.errorf(c.entryAt, "entry is not terminated with \"---\" before end of file")
	}
	return c.diags
}

func (c *checker) id(line catalog.Line) {

	if c.open {
		c.errorf(line.Number, "entry started on line %d is not terminated with \"---\"", c.entryAt)
	}
	id := line.ID()
	if first, found := c.ids[id]; found {
		c.warnf(line.Number, "duplicate message %q, first defined on line %d wins", id, first)
	} else {
		c.ids[id] = line.Number
	}
	c.checkText(line.Number, id)
	c.open = true
	c.entryAt = line.Number
	c.langs = make(map[string]int)
}

func (c *checker) terminator(line catalog.Line) {

	if !c.open {
		c.errorf(line.Number, "\"---\" without a preceding \"ID:\" line")
	}
	c.open = false
	c.langs = nil
}

func (c *checker) translation(line catalog.Line) {

	if !c.open {
		c.errorf(line.Number, "translation outside of an entry")
	}
	if !line.WellFormed() {
		c.warnf(line.Number, "translation line must look like \"xx:text\", got %q", line.Raw)
		return
	}
	lang := line.Lang()
	if _, err := language.ParseBase(lang); err != nil {
		c.warnf(line.Number, "unknown language code %q", lang)
	}
	if c.langs != nil {
		if first, found := c.langs[lang]; found {
			c.warnf(line.Number, "duplicate language %q in entry, line %d wins", lang, first)
		} else {
			c.langs[lang] = line.Number
		}
	}
	c.checkText(line.Number, line.Text())
}

func (c *checker) checkText(number int, text string) {

	if strings.ContainsRune(text, '\t') {
		c.warnf(number, "raw tab character in message, use \\t")
	}
	if trailingBackslashes(text)%2 == 1 {
		c.warnf(number, "message ends with a lone backslash")
	}
}

func trailingBackslashes(text string) (n int) {

	for i := len(text) - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return
}

func (c *checker) errorf(line int, format string, args ...any) {

	c.diags = append(c.diags, Diagnostic{Line: line, Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) warnf(line int, format string, args ...any) {

	c.diags = append(c.diags, Diagnostic{Line: line, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}
