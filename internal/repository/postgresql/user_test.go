package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/repository/postgresql"
)

type passwordRow struct {
	hash string
	err  error
}

func (r passwordRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.hash
	return nil
}

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row      passwordRow
		password string
		want     bool
		wantErr  bool
	}{
		{name: "match", row: passwordRow{hash: string(hash)}, password: "secret", want: true},
		{name: "wrong password", row: passwordRow{hash: string(hash)}, password: "guess"},
		{name: "unknown user", row: passwordRow{err: pgx.ErrNoRows}, password: "secret"},
		{name: "db error", row: passwordRow{err: errors.New("database error")}, password: "secret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewUserRepo(mockDB)

			mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).Return(tt.row)

			ok, err := repo.ValidateUser(ctx, "admin", tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestUserRepo_EnsureUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq("admin"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(args[1].(string)), []byte("secret")))
			return pgconn.CommandTag("INSERT 0 1"), nil
		})
	mockDB.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq("admin"), gomock.Any()).
		Return(pgconn.CommandTag("INSERT 0 0"), nil)

	created, err := repo.EnsureUser(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.EnsureUser(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.False(t, created)
}
