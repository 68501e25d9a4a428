// Package ptr holds small generic helpers for optional values modelled as pointers.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a fresh copy of *p, or nil when p is nil.
// The result never aliases p.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Deref returns *p, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Equal reports whether both pointers are nil, or both are set to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
