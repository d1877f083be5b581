package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GetEnvsOrSkip returns values of all keys in order, skipping the test unless every
// one is set. Integration tests against GitHub, Gemini and Google Cloud use it.
func GetEnvsOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = GetEnvOrSkip(t, key)
	}
	return values
}
