package storage

import (
	"testing"

	"github.com/wizzomafizzo/hammer/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.VerifyTestMain(m)
}
