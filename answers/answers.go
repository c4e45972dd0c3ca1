// Package answers compares student answer sheets against the correct ones.
//
// A Sheet is an ordered list of question-answer pairs. Two sheets match only
// when they hold the same questions in the same order with strictly equal
// answers: the string "1" and the number 1 are different answers, and so are
// "a" and "A".
//
// Example usage:
//
//	student := answers.Sheet{{Key: "q1", Value: "A"}, {Key: "q2", Value: "B"}}
//	correct := answers.Sheet{{Key: "q2", Value: "B"}, {Key: "q1", Value: "A"}}
//
//	ok, err := answers.CheckStudentKnowledge(student, correct,
//		answers.WithLogger(slog.Default()),
//	)
//	// ok == false: same answers, different order
package answers

import (
	"context"
	"errors"
	"log/slog"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// ErrNotSheet is returned when an argument is not an answer sheet.
var ErrNotSheet = errors.New("Answers must be objects") //nolint:staticcheck // ST1005: fixed message

// Logger is the minimal structured logger used to report mismatches.
// It matches slog.Logger.LogAttrs.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

type config struct {
	logger Logger
	level  slog.Level
}

// Option configures CheckStudentKnowledge.
type Option func(*config)

// WithLogger sets the logger that receives the first mismatch found.
// Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithLogLevel sets the level mismatches are logged at. Defaults to
// slog.LevelDebug.
func WithLogLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// CheckStudentKnowledge reports whether student holds exactly the answers of
// correct: same keys, same order, strictly equal values. Both arguments must
// be a Sheet or a non-nil *Sheet, otherwise ErrNotSheet is returned.
func CheckStudentKnowledge(student, correct any, opts ...Option) (bool, error) {
	got, ok := asSheet(student)
	if !ok {
		return false, ErrNotSheet
	}
	want, ok := asSheet(correct)
	if !ok {
		return false, ErrNotSheet
	}

	c := &config{
		logger: slog.Default(),
		level:  slog.LevelDebug,
	}
	for _, opt := range opts {
		opt(c)
	}

	if len(got) != len(want) {
		c.logger.LogAttrs(context.Background(), c.level, "answer count mismatch",
			slog.Int("student", len(got)),
			slog.Int("correct", len(want)))
		return false, nil
	}

	for i := range want {
		if got[i].Key != want[i].Key {
			c.logger.LogAttrs(context.Background(), c.level, "question order mismatch",
				slog.Int("index", i),
				slog.String("student", got[i].Key),
				slog.String("correct", want[i].Key))
			return false, nil
		}
		if !strictEqual(got[i].Value, want[i].Value) {
			c.logger.LogAttrs(context.Background(), c.level, "wrong answer",
				slog.Int("index", i),
				slog.String("question", want[i].Key))
			return false, nil
		}
	}

	return true, nil
}

func asSheet(v any) (Sheet, bool) {
	switch s := v.(type) {
	case Sheet:
		return s, true
	case *Sheet:
		if s == nil {
			return nil, false
		}
		return *s, true
	default:
		return nil, false
	}
}

// strictEqual compares dynamic type and value. Values that cannot be compared
// with == (slices and maps decoded from JSON) are compared structurally.
func strictEqual(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if a == nil || (reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable()) {
		return a == b
	}
	return cmp.Equal(a, b, allFields)
}

// allFields lets cmp descend into unexported struct fields instead of
// panicking on them.
var allFields = cmp.Exporter(func(reflect.Type) bool { return true })
