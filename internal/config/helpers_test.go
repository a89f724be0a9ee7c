package config

import (
	"os"
	"testing"
)

// unsetenv removes key for the rest of the test. Call t.Setenv on the same
// key first so the old value is restored afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
