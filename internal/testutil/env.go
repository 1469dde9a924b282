package testutil

import (
	"os"
	"testing"
)

// WithEnv sets key to val for the rest of the test; an empty val unsets it.
// The previous value is restored on cleanup.
func WithEnv(t *testing.T, key, val string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}
