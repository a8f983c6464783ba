package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dapurkita/internal/domain/entity"
	"dapurkita/internal/domain/repository"
	"dapurkita/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) ListByRoles(ctx context.Context, roles []entity.Role) ([]*entity.User, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	query := r.client.Collection("users").Where("role", "in", roles)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query users by role", err)
	}

	var users []*entity.User
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			continue // Skip malformed documents
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, nil
}
