// Package invariant provides contract assertions for the name-database core.
//
// Assertions here are a force multiplier for catching bugs in the compiler
// and reader: use Precondition to express argument contracts, Invariant for
// internal consistency checks (loop progress, sorted-order maintenance), and
// ExpectNoError for operations that must not fail. All functions panic on
// violation - these are programming errors, not caller errors, and should be
// treated as ship-stoppers rather than something to recover from.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks an internal invariant during function execution.
//
// Example:
//
//	prev := -1
//	for _, r := range ranges {
//	    invariant.Invariant(r.InitialHeadPoint > prev, "ranges must be sorted")
//	    prev = r.InitialHeadPoint
//	}
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil, including a typed nil pointer/slice/map.
func NotNil(value interface{}, name string) {
	if value == nil || isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

func isNilValue(value interface{}) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// InRange panics if value is outside [min, max].
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d", name, minVal, maxVal, value)
	}
}

// ExpectNoError panics if err is not nil.
func ExpectNoError(err error, msg string) {
	if err != nil {
		fail("POSTCONDITION", "%s must not fail: %v", msg, err)
	}
}

func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}
	panic(msg)
}
