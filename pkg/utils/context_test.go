package utils

import (
	"context"
	"testing"

	"movie-rating/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_DefaultsToAnonymous(t *testing.T) {
	identity := GetIdentity(context.Background())

	assert.False(t, identity.Authenticated())
	assert.ErrorIs(t, identity.Require(), apperror.ErrUnauthorized)
}

func TestIdentity_RoundTripThroughContext(t *testing.T) {
	token := uuid.New()
	ctx := SetIdentity(context.Background(), Identity{UserID: 7, Username: "alice", Token: token})

	identity := GetIdentity(ctx)

	assert.True(t, identity.Authenticated())
	assert.NoError(t, identity.Require())
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, token, identity.Token)
}
