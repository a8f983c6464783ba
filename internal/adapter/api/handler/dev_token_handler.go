package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dapurkita/internal/domain/entity"
	"dapurkita/internal/domain/repository"
	"dapurkita/internal/infrastructure/firebase"
	"dapurkita/pkg/response"
)

type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	userRepo     repository.UserRepository
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
		userRepo:     userRepo,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth, userRepo)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

// GenerateToken mints a long-lived token for the first user carrying the
// role named in the path. Development only.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	role := entity.Role(strings.ToLower(c.Param("role")))
	switch role {
	case entity.RoleAdmin, entity.RoleCook, entity.RoleFoodie:
	default:
		return response.Error(c, response.NewError("INVALID_ROLE", "Unknown role: "+c.Param("role"), http.StatusBadRequest))
	}

	users, err := h.userRepo.ListByRoles(c.Request().Context(), []entity.Role{role})
	if err != nil {
		return response.Error(c, err)
	}
	if len(users) == 0 {
		return response.Error(c, response.NewError("USER_NOT_FOUND", "No user found with role "+string(role), http.StatusNotFound))
	}

	token, err := h.firebaseAuth.GenerateLongLivedToken(c.Request().Context(), users[0].ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":           users[0].ID,
			"email":        users[0].Email,
			"display_name": users[0].DisplayName,
			"role":         users[0].Role,
		},
	})
}
