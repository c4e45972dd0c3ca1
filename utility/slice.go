package utility

import "reflect"

// Map returns a new slice of []b from slice []a.
func Map[A any, B any](input []A, f func(A) B) []B {
	output, _ := mapInternal(input, func(a A) (B, error) {
		return f(a), nil
	})
	return output
}

// MapE returns a new slice of []b and error from slice []a.
// It stops at the first error.
func MapE[A any, B any](input []A, f func(A) (B, error)) ([]B, error) {
	s, err := mapInternal(input, f)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func mapInternal[A any, B any](input []A, f func(A) (B, error)) ([]B, error) {
	output := make([]B, len(input))
	for i, v := range input {
		mapped, err := f(v)
		if err != nil {
			return nil, err
		}
		output[i] = mapped
	}
	return output, nil
}

// Filter returns a new slice holding the elements of input for which keep
// returns true, in their original order. The result is never nil.
func Filter[T any](input []T, keep func(T) bool) []T {
	output := make([]T, 0, len(input))
	for _, v := range input {
		if keep(v) {
			output = append(output, v)
		}
	}
	return output
}

// Find returns the first element of input matching the predicate.
// The boolean is false when nothing matches.
func Find[T any](input []T, match func(T) bool) (T, bool) {
	for _, v := range input {
		if match(v) {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// Any reports whether at least one element of input matches the predicate.
func Any[T any](input []T, match func(T) bool) bool {
	_, ok := Find(input, match)
	return ok
}

// UniqueBy returns a new slice without duplicates, keeping the first
// occurrence of every key. Elements for which key reports false have no
// identity and are always kept.
//
// Example:
//
//	names := UniqueBy(users, func(u User) (string, bool) { return u.Name, true })
func UniqueBy[T any, K comparable](input []T, key func(T) (K, bool)) []T {
	seen := make(map[K]struct{}, len(input))
	output := make([]T, 0, len(input))
	for _, v := range input {
		k, ok := key(v)
		if ok {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
		}
		output = append(output, v)
	}
	return output
}

// AsSlice copies the elements of v into a []any when v is a slice or an
// array. A typed nil slice yields an empty slice. It returns false for any
// other value, including an untyped nil.
func AsSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return append(make([]any, 0, len(s)), s...), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}

	output := make([]any, rv.Len())
	for i := range output {
		output[i] = rv.Index(i).Interface()
	}
	return output, true
}
