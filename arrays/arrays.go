package arrays

import (
	"math"
	"reflect"

	"github.com/paccolamano/lazykit/utility"
)

// FindMax returns the largest numeric element of seq as a float64.
// NaN and non-numeric elements are ignored; an empty sequence yields -Inf.
func FindMax(seq any) (float64, error) {
	floats, err := numbers(seq)
	if err != nil {
		return 0, err
	}
	return Max(floats), nil
}

// FindMin returns the smallest numeric element of seq as a float64.
// NaN and non-numeric elements are ignored; an empty sequence yields +Inf.
func FindMin(seq any) (float64, error) {
	floats, err := numbers(seq)
	if err != nil {
		return 0, err
	}
	return Min(floats), nil
}

// RemoveDuplicates returns the distinct elements of seq in first-occurrence
// order. Two elements are duplicates when both their dynamic type and value
// are equal, so 1 and "1" are kept apart. Every NaN is a duplicate of the
// first NaN. Non-comparable elements such as slices and maps are never
// duplicates.
func RemoveDuplicates(seq any) ([]any, error) {
	items, ok := utility.AsSlice(seq)
	if !ok {
		return nil, ErrNotArray
	}

	return utility.UniqueBy(items, identity), nil
}

// nanKey stands in for NaN, which is never equal to itself as a map key.
type nanKey struct{ bits int }

func identity(v any) (any, bool) {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) {
			return nanKey{bits: 64}, true
		}
	case float32:
		if math.IsNaN(float64(f)) {
			return nanKey{bits: 32}, true
		}
	case nil:
		return nil, true
	}

	if !reflect.ValueOf(v).Comparable() {
		return nil, false
	}
	return v, true
}

func numbers(seq any) ([]float64, error) {
	items, ok := utility.AsSlice(seq)
	if !ok {
		return nil, ErrNotArray
	}

	return utility.Map(items, func(v any) float64 {
		f, ok := utility.Float64(v)
		if !ok {
			return math.NaN()
		}
		return f
	}), nil
}
