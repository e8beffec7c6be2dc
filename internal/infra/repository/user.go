package repository

import (
	"context"

	"venuebook/internal/domain/user"
	"venuebook/internal/infra"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const createUserSQL = `
INSERT INTO users (id, name, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createUserSQL,
		u.ID(), u.Name(), u.Email(), u.PasswordHash(), string(u.Role()), u.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create user", err)
	}
	return id, nil
}

const findUserByEmailSQL = `
SELECT id, name, email, password_hash, role
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var snapshot commands.UserSnapshot
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&snapshot.ID, &snapshot.Name, &snapshot.Email, &snapshot.PasswordHash, &snapshot.Role,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to find user", err)
	}
	return &snapshot, nil
}
