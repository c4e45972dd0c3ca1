package arrays

import "errors"

// ErrNotArray is returned when the input is not a slice or an array.
var ErrNotArray = errors.New("Input must be an array") //nolint:staticcheck // ST1005: fixed message
