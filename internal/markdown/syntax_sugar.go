// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "fmt"

// Code оборачивает текст в обратные кавычки; для текста с обратной кавычкой берутся двойные.
func Code(text string) string {
	for _, r := range text {
		if r == '`' {
			return fmt.Sprintf("`` %s ``", text)
		}
	}
	return fmt.Sprintf("`%s`", text)
}
