package testutils

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

// CreateTestFiles creates each path with "content of <path>" as its content
func CreateTestFiles(t *testing.T, fs afero.Fs, paths ...string) {
	t.Helper()
	for _, path := range paths {
		require.NoError(t, afero.WriteFile(fs, path, []byte("content of "+path), 0644))
	}
}

// AssertExists fails the test when path is absent from fs
func AssertExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, ok, "expected %s to exist", path)
}

// AssertMissing fails the test when path is present in fs
func AssertMissing(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, ok, "expected %s to be gone", path)
}
