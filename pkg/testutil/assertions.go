package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertFileContains fails unless path exists and contains substr.
func AssertFileContains(t *testing.T, path, substr string, msgAndArgs ...interface{}) bool {
	t.Helper()
	data, err := os.ReadFile(path)
	if !assert.NoError(t, err, msgAndArgs...) {
		return false
	}
	return assert.Contains(t, string(data), substr, msgAndArgs...)
}

// AssertFileExists fails unless path exists and is a regular file.
func AssertFileExists(t *testing.T, path string, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.FileExists(t, path, msgAndArgs...)
}

// AssertNoFile fails if anything exists at path.
func AssertNoFile(t *testing.T, path string, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.NoFileExists(t, path, msgAndArgs...)
}
