package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"

	"dapurkita/internal/domain/entity"
	"dapurkita/internal/domain/repository"
	"dapurkita/pkg/errors"
	"dapurkita/pkg/logger"
)

const defaultContactLimit = 20

type ContactUseCase struct {
	userRepo repository.UserRepository
}

func NewContactUseCase(userRepo repository.UserRepository) *ContactUseCase {
	return &ContactUseCase{
		userRepo: userRepo,
	}
}

// discoverableRoles maps a requester role to the roles it may see in contact
// search. Foodies see cooks, cooks see foodies, admins see everyone.
func discoverableRoles(role entity.Role) []entity.Role {
	switch role {
	case entity.RoleFoodie:
		return []entity.Role{entity.RoleCook}
	case entity.RoleCook:
		return []entity.Role{entity.RoleFoodie}
	case entity.RoleAdmin:
		return []entity.Role{entity.RoleAdmin, entity.RoleCook, entity.RoleFoodie}
	default:
		return nil
	}
}

func (uc *ContactUseCase) ListContacts(ctx context.Context, requesterID, search string, limit int) ([]*entity.ContactSummary, error) {
	// The requester role is resolved here, never taken from the request.
	requester, err := uc.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("ListContacts: requester %s not found: %v", requesterID, err)
			return nil, errors.NotFound("User", err)
		}
		return nil, err
	}

	roles := discoverableRoles(requester.Role)
	if len(roles) == 0 {
		return []*entity.ContactSummary{}, nil
	}

	users, err := uc.userRepo.ListByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)

	filtered := lo.Filter(users, func(user *entity.User, _ int) bool {
		if user.ID == requesterID {
			return false
		}
		if search == "" {
			return true
		}
		return matchesSearch(user, search)
	})

	sort.Slice(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].DisplayName) < strings.ToLower(filtered[j].DisplayName)
	})

	if limit <= 0 {
		limit = defaultContactLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return lo.Map(filtered, func(user *entity.User, _ int) *entity.ContactSummary {
		return toContactSummary(user)
	}), nil
}

// ResolveContact returns a single contact snapshot, used to prefill the
// composer when a valid recipient is absent from the discovery list.
func (uc *ContactUseCase) ResolveContact(ctx context.Context, userID string) (*entity.ContactSummary, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("User", err)
		}
		return nil, err
	}

	return toContactSummary(user), nil
}

// Case-insensitive substring match over display name, email and store name.
func matchesSearch(user *entity.User, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(user.DisplayName), needle) ||
		strings.Contains(strings.ToLower(user.Email), needle) ||
		strings.Contains(strings.ToLower(user.StoreName), needle)
}

func toContactSummary(user *entity.User) *entity.ContactSummary {
	return &entity.ContactSummary{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        user.Role,
		StoreName:   user.StoreName,
		Label:       user.ContactLabel(),
	}
}
