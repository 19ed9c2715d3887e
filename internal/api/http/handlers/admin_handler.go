package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/dto"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/service"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

// AdminHandler exposes admin identity endpoints.
type AdminHandler struct {
	auth *service.AuthService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: authService}
}

// Register handles POST /api/admin/register.
func (h *AdminHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.auth.Register(c.Context(), req.Username, req.Email, req.Password, req.SecretKey); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.StatusResponse{
		Success: true,
		Message: "Admin registered",
	})
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	admin, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AdminLoginResponse{
		Success: true,
		Token:   token,
		Admin: dto.AdminInfo{
			ID:       admin.ID,
			Username: admin.Username,
			Email:    admin.Email,
		},
	})
}
