package lox

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// Ptr returns nil for the zero value and a pointer to a copy otherwise.
func Ptr[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}

	return &v
}

// Deref returns the pointed value or fallback for nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}
