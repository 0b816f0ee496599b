package handler

import (
	"errors"
	"net/http"

	"github.com/eventlane/eventlane-server/internal/apierrors"
	"github.com/eventlane/eventlane-server/internal/identity"
	"github.com/eventlane/eventlane-server/internal/model"
)

// handleError translates service errors into status-carrying API errors.
func handleError(err error) *apierrors.APIError {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var providerErr *identity.Error
	if errors.As(err, &providerErr) {
		// Provider-side failures during registration surface with the
		// provider's own message, like every other 400.
		msg := providerErr.Message
		if msg == "" {
			msg = "identity provider error"
		}
		return apierrors.New(http.StatusBadRequest, msg)
	}

	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		return apierrors.NewErrEmailIsTaken()
	case errors.Is(err, model.ErrInvalidCredentials):
		return apierrors.NewErrInvalidCredentials()
	case errors.Is(err, model.ErrUserNotFound):
		return apierrors.NewErrUserNotFound()
	case errors.Is(err, model.ErrSessionNotFound):
		return apierrors.NewErrSessionNotFound()
	default:
		return apierrors.New(http.StatusInternalServerError, "internal server error")
	}
}
