package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookshelf/internal/delivery/http/response"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"
)

// ProfileHandler serves user profiles.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns a user's profile. Private profiles are only shown to their owner.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !profile.IsPublic && !isOwnerView(c, userID) {
		return errors.WithStack(domainerrors.ErrProfileNotFound)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpsertProfile creates or updates the profile.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	userID, err := ownerParam(c)
	if err != nil {
		return err
	}

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.UpsertProfile(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// DeleteProfile removes the profile; the account stays.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	userID, err := ownerParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPublicProfile looks a profile up by username.
func (h *ProfileHandler) GetPublicProfile(c echo.Context) error {
	profile, err := h.uc.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}
