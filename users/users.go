// Package users implements lookups and orderings over lists of user records.
//
// Every operation takes the list as any and returns ErrNotArray unless it is
// a []User. Results are always new slices; the input list is never modified.
//
// Example usage:
//
//	list := []users.User{
//		{ID: 1, Name: "Olga", Age: utility.Ptr(25.0)},
//		{ID: 4, Name: "egor", Age: utility.Ptr(18.0)},
//	}
//
//	young, _ := users.FilterUsersByAge(list, 18, 25)
//	sorted, _ := users.SortUsersByName(list, users.WithLanguage(language.Spanish))
//	u, _ := users.FindUserByID(list, 4)
package users

import (
	"errors"
	"log/slog"
	"math"
	"reflect"
	"slices"

	"golang.org/x/text/collate"

	"github.com/paccolamano/lazykit/utility"
)

// ErrNotArray is returned when the user list is not a []User.
var ErrNotArray = errors.New("Users must be an array") //nolint:staticcheck // ST1005: fixed message

// FilterUsersByAge returns the users whose age lies in [minAge, maxAge].
// Users without an age never match.
func FilterUsersByAge(users any, minAge, maxAge float64, opts ...Option) ([]User, error) {
	list, ok := users.([]User)
	if !ok {
		return nil, ErrNotArray
	}
	c := newConfig(opts)

	return utility.Filter(list, func(u User) bool {
		age := utility.DerefOr(u.Age, math.NaN())
		if math.IsNaN(age) {
			c.log("skipping user without age", slog.Any("id", u.ID), slog.String("name", u.Name))
			return false
		}
		return age >= minAge && age <= maxAge
	}), nil
}

// SortUsersByName returns a copy of users ordered by name under the
// collation rules of the configured language. Users with equal names keep
// their relative order.
func SortUsersByName(users any, opts ...Option) ([]User, error) {
	list, ok := users.([]User)
	if !ok {
		return nil, ErrNotArray
	}
	c := newConfig(opts)

	col := collate.New(c.lang)
	sorted := slices.Clone(list)
	if sorted == nil {
		sorted = []User{}
	}
	slices.SortStableFunc(sorted, func(a, b User) int {
		return col.CompareString(a.Name, b.Name)
	})
	return sorted, nil
}

// FindUserByID returns a copy of the first user whose ID is strictly equal
// to id: 2 and "2" are different ids, and so are int(2) and float64(2).
// It returns nil when id is nil or nothing matches.
func FindUserByID(users any, id any, opts ...Option) (*User, error) {
	list, ok := users.([]User)
	if !ok {
		return nil, ErrNotArray
	}
	c := newConfig(opts)

	if id == nil || !reflect.ValueOf(id).Comparable() {
		c.log("user lookup without usable id", slog.Any("id", id))
		return nil, nil
	}

	u, found := utility.Find(list, func(u User) bool {
		return u.ID != nil && reflect.ValueOf(u.ID).Comparable() && u.ID == id
	})
	if !found {
		return nil, nil
	}
	return utility.Ptr(u), nil
}

// IsEmailTaken reports whether some user's email is exactly email.
// The comparison is case-sensitive. A nil, empty or non-string email is
// never taken.
func IsEmailTaken(users any, email any, opts ...Option) (bool, error) {
	list, ok := users.([]User)
	if !ok {
		return false, ErrNotArray
	}
	c := newConfig(opts)

	addr, ok := email.(string)
	if !ok || addr == "" {
		c.log("email lookup without address", slog.Any("email", email))
		return false, nil
	}

	return utility.Any(list, func(u User) bool {
		return u.Email != nil && *u.Email == addr
	}), nil
}
