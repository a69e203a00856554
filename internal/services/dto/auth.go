package dto

// RegisterRequest is the body of POST /auth/users.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=255"`
}

// LoginRequest is the body of POST /auth/jwt/create.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /auth/jwt/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// ActivationRequest is the body of POST /auth/users/activation.
// UID is the base64-encoded user id from the emailed link.
type ActivationRequest struct {
	UID   string `json:"uid" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// PasswordResetRequest is the body of POST /auth/users/reset_password.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm is the body of POST /auth/users/reset_password_confirm.
type PasswordResetConfirm struct {
	UID           string `json:"uid" validate:"required"`
	Token         string `json:"token" validate:"required"`
	NewPassword   string `json:"new_password" validate:"required,min=8"`
	ReNewPassword string `json:"re_new_password" validate:"required,eqfield=NewPassword"`
}

// SetPasswordRequest is the body of POST /auth/users/set_password.
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ReNewPassword   string `json:"re_new_password" validate:"required,eqfield=NewPassword"`
}

// TokenPairResponse carries the issued bearer credentials.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
