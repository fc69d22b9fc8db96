package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/storage"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	users := storage.NewMemoryUsers()

	created, err := users.EnsureUser(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = users.EnsureUser(ctx, "admin", "other")
	require.NoError(t, err)
	assert.False(t, created, "existing user keeps its password")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "valid", username: "admin", password: "secret", want: true},
		{name: "wrong password", username: "admin", password: "other", want: false},
		{name: "unknown user", username: "ghost", password: "secret", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := users.ValidateUser(ctx, tc.username, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
