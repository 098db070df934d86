// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

import (
	"cmp"
	"maps"
	"slices"
)

// SortedKeys ключи map в порядке возрастания.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {

	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
