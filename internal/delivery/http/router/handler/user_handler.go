package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/delivery/http/response"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// GetUser returns the public account fields.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ownerParam parses :userId and rejects callers that name a different user.
// Anonymous callers are let through.
func ownerParam(c echo.Context) (uuid.UUID, error) {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return uuid.Nil, err
	}

	if viewerID := deliverycontext.GetViewerID(c); viewerID != uuid.Nil && viewerID != userID {
		return uuid.Nil, domainerrors.ErrForbidden.WrapMessage("cannot modify another user's data")
	}

	return userID, nil
}

// isOwnerView reports whether the caller named itself as userID.
func isOwnerView(c echo.Context, userID uuid.UUID) bool {
	return deliverycontext.GetViewerID(c) == userID
}
