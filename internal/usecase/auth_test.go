//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"billiar/internal/pkg/jwt"
	"billiar/internal/pkg/password"
	"billiar/internal/usecase"
	"billiar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byEmail map[string]*shared.UserAccount
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*shared.UserAccount, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errFakeNotFound
	}
	return u, nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	userID := uuid.New()
	users := &fakeUsers{byEmail: map[string]*shared.UserAccount{
		"owner@billiar.bo": {
			ID:           userID,
			Email:        "owner@billiar.bo",
			PasswordHash: hash,
			Role:         "OWNER",
		},
	}}

	jwtSvc := jwt.NewService("test-secret", time.Hour)
	uc := usecase.NewAuthUseCase(users, jwtSvc)

	t.Run("issues a token carrying the role", func(t *testing.T) {
		result, err := uc.Login(ctx, "owner@billiar.bo", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "OWNER", result.Role)

		claims, err := jwtSvc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "OWNER", claims.Role)
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		_, badPass := uc.Login(ctx, "owner@billiar.bo", "wrong")
		_, badMail := uc.Login(ctx, "nobody@billiar.bo", "correct-horse")

		assert.ErrorIs(t, badPass, usecase.ErrAuthenticationFailed)
		assert.ErrorIs(t, badMail, usecase.ErrAuthenticationFailed)
	})
}
