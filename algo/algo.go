// Generic container and algorithm primitives for firmware code
// Reimplements the small set of sequence operations the toolkit relies
// on, over plain slices with no allocation
package algo

import "cmp"

// Find returns the index of the first element equal to v, or -1
func Find[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// FindIf returns the index of the first element satisfying pred, or -1
func FindIf[T any](s []T, pred func(T) bool) int {
	for i := range s {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// Count returns the number of elements equal to v
func Count[T comparable](s []T, v T) int {
	n := 0
	for i := range s {
		if s[i] == v {
			n++
		}
	}
	return n
}

// Min returns the smaller of a and b
func Min[T cmp.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b
func Max[T cmp.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Clamp limits v to the closed range [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if hi < v {
		return hi
	}
	return v
}

// Reverse reverses s in place
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Rotate left-rotates s in place so that s[n] becomes the first element
func Rotate[T any](s []T, n int) {
	if len(s) == 0 {
		return
	}
	n %= len(s)
	if n < 0 {
		n += len(s)
	}
	Reverse(s[:n])
	Reverse(s[n:])
	Reverse(s)
}
