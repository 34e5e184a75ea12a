package sanitizer

import "strings"

// Deduplicate removes duplicate values while preserving first-occurrence order.
func Deduplicate[T comparable](slice []T) []T {
	if len(slice) == 0 {
		return slice
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if _, exists := seen[item]; !exists {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}

	return result
}

// ClassTokens splits a class attribute value into unique, non-empty tokens.
// Values may themselves carry several space separated classes.
func ClassTokens(values ...string) []string {
	var tokens []string
	for _, v := range values {
		tokens = append(tokens, strings.Fields(v)...)
	}
	return Deduplicate(tokens)
}
