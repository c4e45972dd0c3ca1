// Package arrays implements folds and deduplication over dynamically typed
// sequences.
//
// FindMax, FindMin and RemoveDuplicates accept any Go slice or array and
// return ErrNotArray for everything else. Numeric folds ignore NaN and
// non-numeric elements and fall back to the identity of the fold on empty
// input:
//
//	m, _ := arrays.FindMax([]any{5, 10, math.NaN(), 3}) // 10
//	m, _ = arrays.FindMax([]int{})                      // -Inf
//
// Max and Min are the typed variants for callers holding a []float64 or
// []float32.
package arrays
