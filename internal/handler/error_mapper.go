package handler

import (
	"errors"

	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Services may surface a ProblemDetails directly (validation).
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())
	case errors.Is(err, service.ErrChatSendRequiresAuth):
		return model.NewUnauthorizedError(err.Error())

	// ===== Login Policy Errors → 403 =====
	case errors.Is(err, service.ErrAdminMustUseAdminLogin),
		errors.Is(err, service.ErrNotRegisteredAsPlayer),
		errors.Is(err, service.ErrNotAdminAccount):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrRecordNotFound):
		return model.NewNotFoundError("record")
	case errors.Is(err, service.ErrUnknownKind):
		return model.NewNotFoundError("content kind")

	// ===== Policy Errors → 422 =====
	case errors.Is(err, service.ErrUserDeletionUnsupported):
		return model.NewValidationError([]model.FieldError{{Field: "kind", Message: err.Error()}})
	case errors.Is(err, service.ErrMissingID):
		return model.NewValidationError([]model.FieldError{{Field: "id", Message: err.Error()}})
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrMessageTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "text", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
