package repository

import (
	"context"

	"billiar/internal/infra"
	"billiar/internal/infra/db"
	"billiar/internal/pkg/pgconv"
	"billiar/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const findUserByEmailQuery = `
SELECT id, email, password_hash, role
FROM users
WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*shared.UserAccount, error) {
	var (
		id           pgtype.UUID
		mail, role   string
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailQuery, email).Scan(&id, &mail, &passwordHash, &role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewNotFoundErr("user not found")
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &shared.UserAccount{
		ID:           pgconv.UUIDFromPgtype(id),
		Email:        mail,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
