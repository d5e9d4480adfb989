package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=ratings\nPORT=9090\nDB_NAME=movies\nDB_USER=app\nJWT_SECRET=s3cret\nJWT_EXPIRY_HOURS=12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "ratings", config.App.Name)
	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "movies", config.Database.Name)
	assert.Equal(t, "app", config.Database.User)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, "s3cret", config.Session.Secret)
	assert.Equal(t, 12, config.Session.ExpiryHours)
}

func TestLoadConfigFrom_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "7070")

	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.Session.Secret)
	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, 24, config.Session.ExpiryHours)
}

func TestLoadConfigFrom_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.EqualError(t, err, "JWT_SECRET must be set")
}
