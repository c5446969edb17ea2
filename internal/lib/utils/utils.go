// Package utils contains small helper functions used across the project.
package utils

import (
	"sort"
	"unicode/utf8"
)

// MaskKey keeps the first visible characters of a secret and appends "...".
// Keys no longer than visible are fully masked.
func MaskKey(key string, visible int) string {
	if key == "" {
		return ""
	}
	if utf8.RuneCountInString(key) <= visible {
		return "..."
	}

	runes := []rune(key)
	return string(runes[:visible]) + "..."
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
