package users

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/paccolamano/lazykit/utility"
)

// User is a user record. Only Name is always present; ID may be any
// comparable value, zero included, and Age and Email are optional.
type User struct {
	ID    any      `json:"id,omitempty"`
	Name  string   `json:"name"`
	Age   *float64 `json:"age,omitempty"`
	Email *string  `json:"email,omitempty"`
}

// ParseUsers decodes a JSON array of user records. JSON numbers become
// float64 values, so numeric ids must be looked up as float64.
// A document that is not an array, null included, yields ErrNotArray.
func ParseUsers(data []byte) ([]User, error) {
	list, err := utility.UnmarshalJSONAs[[]User](data)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Type == reflect.TypeOf((*[]User)(nil)).Elem() {
			return nil, ErrNotArray
		}
		return nil, err
	}
	if *list == nil {
		return nil, ErrNotArray
	}
	return *list, nil
}
