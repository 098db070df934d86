// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

// SliceStringToMap индекс элементов среза; при повторах остаётся последний индекс.
func SliceStringToMap(slice []string) (m map[string]int) {

	m = make(map[string]int)

	for i, v := range slice {
		m[v] = i
	}
	return
}

// FilterStrings оставляет элементы slice, входящие в allowed. Пустой allowed ничего не фильтрует.
func FilterStrings(slice []string, allowed []string) []string {

	if len(allowed) == 0 {
		return slice
	}
	index := SliceStringToMap(allowed)
	result := make([]string, 0, len(slice))
	for _, v := range slice {
		if _, found := index[v]; found {
			result = append(result, v)
		}
	}
	return result
}
