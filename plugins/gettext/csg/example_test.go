// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

//go:build linux || darwin

package csg_test

import (
	"os"

	"msgc/plugins/gettext/csg"
)

func ExampleFile() {
	file := csg.NewFile().
		Include("string.h").
		Include("string.h").
		Line().
		Add(csg.NewStatement().Proto("const char *", "get_lang")).
		Line().
		Add(csg.NewStatement().Func("const char *", "greet", []string{csg.Param("const char *", "who")}, func(g *csg.Group) {
			g.Var("const char *", "lang", csg.Id("get_lang").Call())
			g.If(csg.Id("strcmp").Call(csg.Id("who"), csg.Lit(`say "hi"`)).Op("==").Lit(0), func(g *csg.Group) {
				g.IfReturn(csg.Id("strcmp").Call(csg.Id("lang"), csg.Lit("de")).Op("==").Lit(0), csg.Lit("hallo"))
				g.Return(csg.Lit("hi"))
			})
			g.Return(csg.Id("who"))
		}))

	_, _ = file.WriteTo(os.Stdout)

	// Output:
	// #include <string.h>
	//
	// const char *get_lang(void);
	//
	// const char *greet(const char *who)
	// {
	//     const char *lang = get_lang();
	//     if (strcmp(who, "say \"hi\"") == 0) {
	//         if (strcmp(lang, "de") == 0) return "hallo";
	//         return "hi";
	//     }
	//     return who;
	// }
}

func ExampleGroup_Depth() {
	stmt := csg.NewStatement().Func("int", "f", []string{csg.Param("int", "x")}, func(g *csg.Group) {
		g.IfOpen(csg.Id("x"))
		g.Depth(2).Return(csg.Lit(1))
		g.End()
		g.Return(csg.Lit(0))
	})

	_, _ = os.Stdout.WriteString(stmt.String())

	// Output:
	// int f(int x)
	// {
	//     if (x) {
	//         return 1;
	//     }
	//     return 0;
	// }
}
