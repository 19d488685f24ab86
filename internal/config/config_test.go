package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"BATCHRESIZE_QUALITY", "BATCHRESIZE_SUFFIX", "BATCHRESIZE_AUTO_ORIENT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 92, s.Quality)
	assert.Equal(t, "", s.Suffix)
	assert.False(t, s.AutoOrient)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BATCHRESIZE_QUALITY", "70")
	t.Setenv("BATCHRESIZE_SUFFIX", "_small")
	t.Setenv("BATCHRESIZE_AUTO_ORIENT", "true")
	t.Setenv("BATCHRESIZE_VERBOSE", "1")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 70, s.Quality)
	assert.Equal(t, "_small", s.Suffix)
	assert.True(t, s.AutoOrient)
	assert.True(t, s.Verbose)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("BATCHRESIZE_QUALITY", "high")

	_, err := Load()
	assert.Error(t, err)
}
