package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetPasswordReplacesHash(t *testing.T) {
	user := &User{Username: "alice"}

	require.NoError(t, user.SetPassword("pw123"))
	first := user.PasswordHash
	assert.True(t, user.CheckPassword("pw123"))
	assert.False(t, user.CheckPassword("pw124"))

	require.NoError(t, user.SetPassword("changed"))
	assert.NotEqual(t, first, user.PasswordHash)
	assert.True(t, user.CheckPassword("changed"))
	assert.False(t, user.CheckPassword("pw123"))
}

func TestUser_CheckPasswordWithoutHash(t *testing.T) {
	user := &User{Username: "nobody"}

	assert.False(t, user.CheckPassword(""))
}

func TestGenre_Valid(t *testing.T) {
	for _, g := range Genres {
		assert.True(t, g.Valid(), string(g))
	}
	assert.False(t, Genre("western").Valid())
	assert.False(t, Genre("Sci-Fi").Valid())
	assert.False(t, Genre("").Valid())
}

func TestValidRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.True(t, ValidRating(rating))
	}
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}
