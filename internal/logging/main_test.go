package logging

import (
	"testing"

	"go.uber.org/goleak"
)

// lumberjack starts its mill goroutine on the first file write and has no way
// to stop it; every other goroutine must be gone when the tests finish.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	)
}
