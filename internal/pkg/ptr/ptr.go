package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// NonBlank returns nil for empty or whitespace-only input, otherwise the trimmed value.
func NonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func Value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
