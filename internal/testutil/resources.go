package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyTestMain runs the package tests and fails if any goroutine is still
// running once they finish. Call it from TestMain:
//
//	func TestMain(m *testing.M) {
//	    testutil.VerifyTestMain(m)
//	}
func VerifyTestMain(m *testing.M, options ...goleak.Option) {
	goleak.VerifyTestMain(m, append(defaultOptions(), options...)...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
		goleak.IgnoreTopFunction("time.Sleep"),
	}
}
