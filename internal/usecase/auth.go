package usecase

import (
	"context"

	"billiar/internal/pkg/errs"
	"billiar/internal/pkg/jwt"
	"billiar/internal/pkg/password"
	"billiar/internal/usecase/shared"
)

var ErrAuthenticationFailed = errs.New("authentication failed")

type LoginResult struct {
	Token string
	Role  string
}

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	users shared.UserRepository
	jwt   *jwt.Service
}

func NewAuthUseCase(users shared.UserRepository, jwtSvc *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{users: users, jwt: jwtSvc}
}

// Login never reveals whether the email or the password was wrong.
func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	account, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFoundAs(err, ErrAuthenticationFailed)
	}

	if err := password.Compare(account.PasswordHash, rawPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := a.jwt.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &LoginResult{Token: token, Role: account.Role}, nil
}
