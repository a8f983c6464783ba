package repository

import (
	"context"

	"dapurkita/internal/domain/entity"
)

// UserRepository reads the identity directory. This core never writes users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	ListByRoles(ctx context.Context, roles []entity.Role) ([]*entity.User, error)
}
