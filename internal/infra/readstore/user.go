package readstore

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

const userViewSQL = `
SELECT id, name, email, role, created_at
FROM users
WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := s.db.QueryRow(ctx, userViewSQL, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role, &view.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
