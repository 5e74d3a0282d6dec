package debug

import (
	"fmt"
	"runtime"
)

// Assert panics with the caller's location when truth is false. it guards
// invariants of the codec itself (never user input), so hitting one means
// there's a bug in this module.
//
// NOTE: originally stolen from
// https://github.com/golang/go/blob/eaa7d9ff86b35c72cc35bd7c14b349fa414c392f/src/go/types/errors.go#L18
func Assert(truth bool, msg ...string) {
	if len(msg) > 1 {
		panic("invalid assert args")
	}
	if truth {
		return
	}

	text := "assertion failed"
	if len(msg) == 1 {
		text = fmt.Sprintf("assertion failed: %s", msg[0])
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		text = fmt.Sprintf("%s:%d: %s", file, line, text)
	}
	panic(text)
}
