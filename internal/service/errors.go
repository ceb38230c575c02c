package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// ErrAdminMustUseAdminLogin is returned when an admin account tries the
	// player login path. The message is shown to the user verbatim.
	ErrAdminMustUseAdminLogin = errors.New("Admin accounts must use the Admin Login page.")

	// ErrNotRegisteredAsPlayer is returned when a non-player account tries
	// the player login path. The message is shown to the user verbatim.
	ErrNotRegisteredAsPlayer = errors.New("This account is not registered as a player.")

	// ErrNotAdminAccount is returned when a non-admin account tries the
	// admin login path.
	ErrNotAdminAccount = errors.New("This account does not have admin access.")
)

// ===== Chat Errors =====
var (
	ErrChatSendRequiresAuth = errors.New("authentication required to send messages")
	ErrEmptyMessage         = errors.New("message text is required")
	ErrMessageTooLong       = errors.New("message text exceeds maximum length")
)

// ===== Admin Errors =====
var (
	ErrUnknownKind             = errors.New("unknown content kind")
	ErrMissingID               = errors.New("record id is required")
	ErrRecordNotFound          = errors.New("record not found")
	ErrUserDeletionUnsupported = errors.New("user accounts cannot be deleted here; remove them through the identity provider console")
)

// ===== Validation Errors =====
var (
	ErrValidationFailed = errors.New("validation failed")
)
