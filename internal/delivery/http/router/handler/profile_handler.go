package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createProfileRequest is the JSON body for first-time profile creation.
type createProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Bio     string `json:"bio"`
	PetName string `json:"petName"`
	PetType string `json:"petType"`
	PetAge  int    `json:"petAge"`
}

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProfile handles first-time signup for the authenticated subject.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	subjectID := deliverycontext.GetSubjectID(c.Request().Context())
	profile, err := h.uc.CreateProfile(c.Request().Context(), subjectID, &usecase.CreateProfileInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Bio:     req.Bio,
		PetName: req.PetName,
		PetType: req.PetType,
		PetAge:  req.PetAge,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "Profile created successfully")
}

// GetProfile returns the caller's own account view: profile, materialized
// cart and wishlist, and order history. A subject may only read itself.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	subjectID := deliverycontext.GetSubjectID(c.Request().Context())
	if c.Param("uid") != subjectID {
		return errors.WithStack(domainerrors.ErrForbidden.WrapMessage("profiles are readable by their owner only"))
	}

	output, err := h.uc.GetProfile(c.Request().Context(), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile fetched successfully")
}
