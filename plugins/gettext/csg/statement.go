// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package csg

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

type Statement struct {
	code   strings.Builder
	indent int
}

func NewStatement() *Statement {
	return &Statement{}
}

func Id(name string) *Statement {
	return NewStatement().Id(name)
}

func Lit(value any) *Statement {
	return NewStatement().Lit(value)
}

func Str(escaped string) *Statement {
	return NewStatement().Str(escaped)
}

// EscapeQuotes экранирует только двойные кавычки, остальные escape-последовательности остаются как есть.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func (s *Statement) String() string {
	return s.code.String()
}

func (s *Statement) Line() *Statement {
	s.code.WriteString("\n")
	return s
}

func (s *Statement) Id(name string) *Statement {
	s.code.WriteString(name)
	return s
}

func (s *Statement) Lit(value any) *Statement {
	var str string
	switch v := value.(type) {
	case string:
		str = `"` + strings.ReplaceAll(EscapeQuotes(v), "\n", `\n`) + `"`
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		str = fmt.Sprintf("%d", v)
	case bool:
		if v {
			str = "1"
		} else {
			str = "0"
		}
	case nil:
		str = "NULL"
	default:
		str = fmt.Sprintf("%v", v)
	}
	s.code.WriteString(str)
	return s
}

// Str строковый литерал из уже экранированного содержимого.
func (s *Statement) Str(escaped string) *Statement {
	s.code.WriteString(`"` + escaped + `"`)
	return s
}

func (s *Statement) Op(operator string) *Statement {
	s.code.WriteString(" " + operator + " ")
	return s
}

func (s *Statement) Call(args ...*Statement) *Statement {
	s.code.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			s.code.WriteString(", ")
		}
		if arg != nil {
			s.code.WriteString(arg.String())
		}
	}
	s.code.WriteString(")")
	return s
}

// Proto объявление функции без тела: `const char *name(void);`.
func (s *Statement) Proto(returnType string, name string, params ...string) *Statement {
	s.writeIndent()
	s.code.WriteString(decl(returnType, name) + paramList(params) + ";\n")
	return s
}

// Func определение функции. Фигурные скобки тела стоят на отдельных строках.
func (s *Statement) Func(returnType string, name string, params []string, fn func(*Group)) *Statement {
	s.writeIndent()
	s.code.WriteString(decl(returnType, name) + paramList(params) + "\n")
	s.writeIndent()
	s.code.WriteString("{\n")
	if fn != nil {
		fn(&Group{statement: s, depth: s.indent + 1})
	}
	s.writeIndent()
	s.code.WriteString("}\n")
	return s
}

func (s *Statement) writeIndent() {
	s.code.WriteString(strings.Repeat(indentUnit, s.indent))
}

// decl склеивает тип и имя: указатель прилипает к имени (`const char *msg`).
func decl(typ string, name string) string {
	if strings.HasSuffix(typ, "*") {
		return typ + name
	}
	return typ + " " + name
}

func paramList(params []string) string {
	if len(params) == 0 {
		return "(void)"
	}
	return "(" + strings.Join(params, ", ") + ")"
}

// Param параметр функции в виде `тип имя`.
func Param(typ string, name string) string {
	return decl(typ, name)
}

// Group пишет операторы в тело функции на заданной глубине вложенности.
type Group struct {
	statement *Statement
	depth     int
}

// Depth группа той же функции с явной глубиной отступа.
// Нужна, когда блоки открываются и закрываются в разных местах генератора.
func (g *Group) Depth(depth int) *Group {
	return &Group{statement: g.statement, depth: depth}
}

func (g *Group) writeIndent() {
	g.statement.code.WriteString(strings.Repeat(indentUnit, g.depth))
}

func (g *Group) Var(typ string, name string, value *Statement) {
	g.writeIndent()
	g.statement.code.WriteString(decl(typ, name))
	if value != nil {
		g.statement.code.WriteString(" = " + value.String())
	}
	g.statement.code.WriteString(";\n")
}

func (g *Group) Return(value ...*Statement) {
	g.writeIndent()
	g.statement.code.WriteString("return")
	if len(value) > 0 && value[0] != nil {
		g.statement.code.WriteString(" " + value[0].String())
	}
	g.statement.code.WriteString(";\n")
}

func (g *Group) If(condition *Statement, fn func(*Group)) {
	g.IfOpen(condition)
	if fn != nil {
		fn(g.Depth(g.depth + 1))
	}
	g.End()
}

// IfOpen открывает блок `if (...) {`, закрывается вызовом End на той же глубине.
func (g *Group) IfOpen(condition *Statement) {
	g.writeIndent()
	g.statement.code.WriteString("if (")
	if condition != nil {
		g.statement.code.WriteString(condition.String())
	}
	g.statement.code.WriteString(") {\n")
}

func (g *Group) End() {
	g.writeIndent()
	g.statement.code.WriteString("}\n")
}

// IfReturn однострочная проверка: `if (cond) return value;`.
func (g *Group) IfReturn(condition *Statement, value *Statement) {
	g.writeIndent()
	g.statement.code.WriteString("if (")
	if condition != nil {
		g.statement.code.WriteString(condition.String())
	}
	g.statement.code.WriteString(") return")
	if value != nil {
		g.statement.code.WriteString(" " + value.String())
	}
	g.statement.code.WriteString(";\n")
}
