package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(dir, false)
	require.NoError(t, err)

	logger.Info("Starting application")
	_ = logger.Sync()

	body, err := os.ReadFile(filepath.Join(dir, "movie-rating.log"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "Starting application")
	assert.Contains(t, string(body), `"timestamp"`)
}
