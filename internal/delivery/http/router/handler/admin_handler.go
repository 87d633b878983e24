package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin-only handlers.
type AdminHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetUserRole returns the stored role for a subject id.
func (h *AdminHandler) GetUserRole(c echo.Context) error {
	subjectID := c.Param("uid")

	role, err := h.uc.GetRole(c.Request().Context(), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"uid":  subjectID,
		"role": role.String(),
	}, "Role fetched successfully")
}
