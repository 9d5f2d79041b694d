package assert

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// Equal fails the test if actual is not equal to expected.  Integer values of
// differing types (e.g. an untyped constant against a uint) are compared by
// value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}
	//
	fail(t, msg, "expected: %v, actual: %v", expected, actual)
}

// NotEqual fails the test if actual is equal to expected.
func NotEqual(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if !reflect.DeepEqual(expected, actual) && !intEqual(expected, actual) {
		return
	}
	//
	fail(t, msg, "unexpected: %v", actual)
}

// True fails the test if a condition does not hold.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		fail(t, msg, "condition is false")
	}
}

// False fails the test if a condition holds.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		fail(t, msg, "condition is true")
	}
}

// NoError fails the test if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		fail(t, msg, "unexpected error: %v", err)
	}
}

// ErrorIs fails the test unless err wraps the given target.
func ErrorIs(t *testing.T, err error, target error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		fail(t, msg, "expected error %v, got none", target)
	} else if !errors.Is(err, target) {
		fail(t, msg, "expected error %v, got: %v", target, err)
	}
}

func fail(t *testing.T, msg []any, format string, args ...any) {
	t.Helper()
	t.Errorf(format, args...)
	// Append caller supplied message (if applicable)
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

func intEqual(expected, actual any) bool {
	a, aInt64 := asInt64(expected)
	b, bInt64 := asInt64(actual)
	//
	if aInt64 && bInt64 {
		return a == b
	}
	// Large unsigned values cannot be represented as int64
	x, xOk := expected.(uint64)
	y, yOk := actual.(uint64)
	//
	return xOk && yOk && x == y
}

func asInt64(x any) (int64, bool) {
	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	}
	//
	return 0, false
}
