package answers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paccolamano/lazykit/utility"
)

// Answer is a single question-answer pair of a Sheet.
type Answer struct {
	Key   string
	Value any
}

// Sheet is an answer sheet: key-value pairs kept in insertion order.
type Sheet []Answer

// Get returns the value stored under key.
func (s Sheet) Get(key string) (any, bool) {
	for _, a := range s {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys of s in order.
func (s Sheet) Keys() []string {
	keys := make([]string, len(s))
	for i, a := range s {
		keys[i] = a.Key
	}
	return keys
}

// Set replaces the value stored under key, keeping its position, or appends
// a new pair when the key is not present yet.
func (s *Sheet) Set(key string, value any) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Answer{Key: key, Value: value})
}

// MarshalJSON encodes s as a JSON object with keys in sheet order.
func (s Sheet) MarshalJSON() ([]byte, error) {
	pairs, err := utility.MapE(s, marshalAnswer)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(bytes.Join(pairs, []byte{','}))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalAnswer(a Answer) ([]byte, error) {
	key, err := json.Marshal(a.Key)
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(a.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answer %q: %w", a.Key, err)
	}

	pair := append(key, ':')
	return append(pair, value...), nil
}

// UnmarshalJSON decodes a JSON object into s, preserving the order in which
// keys appear. A repeated key keeps its first position and its last value.
func (s *Sheet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("answer sheet must be a JSON object")
	}

	sheet := Sheet{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in answer sheet", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode answer %q: %w", key, err)
		}
		sheet.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = sheet
	return nil
}
