package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freezer-api/internal/application/auth"
)

// UserHandler listados de usuarios (protegido).
type UserHandler struct {
	uc *auth.UseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios por rol
// @Description  role vacío lista todos. Listar admins requiere superadmin.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        role  query  string  false  "student | admin | superadmin"
// @Success      200   {array}   dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context(), GetRole(c), c.Query("role"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(users), "users": users})
}
