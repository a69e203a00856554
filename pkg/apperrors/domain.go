package apperrors

import "net/http"

// Predefined errors for the account lifecycle. Status codes follow the
// API contract: validation, credential and single-use-token failures are
// client errors (400), bearer-token failures are 401.

// ErrEmailAlreadyExists is returned when registering an email that is taken.
// The message is part of the public API contract.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"user with this email already exists.",
	http.StatusBadRequest,
)

// ErrEmailRequired is returned when creating a user without an email.
var ErrEmailRequired = New(
	CodeValidationFailed,
	"users",
	"User must have an email address.",
	http.StatusBadRequest,
)

// ErrInvalidCredentials covers wrong passwords on login, password change
// and account deletion.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

// ErrInvalidToken covers bad, expired or already consumed activation and
// password-reset tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

// ErrInvalidRefreshToken covers unknown or expired refresh tokens. Unlike
// activation/reset tokens the refresh token is an auth credential, so the
// failure is a 401.
var ErrInvalidRefreshToken = New(
	CodeInvalidToken,
	"auth",
	"Refresh token is invalid or expired",
	http.StatusUnauthorized,
)

// ErrPasswordMismatch is returned when new_password and re_new_password differ.
var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"users",
	"The two password fields didn't match.",
	http.StatusBadRequest,
)

// ErrWeakPassword is returned when a password fails the minimum-length policy.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"users",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// ErrUserNotFound maps a missing user record to a 404.
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)
