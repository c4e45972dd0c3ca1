// Package strutil implements small text helpers: capitalization, reversal
// and a literal palindrome check.
//
// Every function takes its argument as any and returns ErrNotString when the
// dynamic type is not a string. Named string types are accepted.
package strutil

import (
	"errors"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// ErrNotString is returned when the input is not a string.
var ErrNotString = errors.New("Input must be a string") //nolint:staticcheck // ST1005: fixed message

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s any) (string, error) {
	str, err := text(s)
	if err != nil {
		return "", err
	}

	r, size := utf8.DecodeRuneInString(str)
	if size == 0 {
		return str, nil
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return str, nil
	}
	return string(upper) + str[size:], nil
}

// ReverseString returns the runes of s in reverse order.
func ReverseString(s any) (string, error) {
	str, err := text(s)
	if err != nil {
		return "", err
	}
	return reverse(str), nil
}

// IsPalindrome reports whether s reads the same reversed. The comparison is
// literal: case, spaces and punctuation all count, so "Madam" is not a
// palindrome while "a b c b a" is.
func IsPalindrome(s any) (bool, error) {
	str, err := text(s)
	if err != nil {
		return false, err
	}
	return str == reverse(str), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func text(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", ErrNotString
	}
	return rv.String(), nil
}
