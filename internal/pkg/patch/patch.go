package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceString is Coalesce for strings where blank input also falls back.
func CoalesceString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Apply overwrites *dst when src is set.
func Apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
