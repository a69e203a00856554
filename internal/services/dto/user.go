package dto

// UserResponse is the outward representation of a user. The password hash
// is never serialized.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateUserRequest is the body of PATCH /auth/users/:id. Pointer fields
// distinguish absent keys from empty values. An email key is accepted but
// has no effect: the field is immutable through this surface.
type UpdateUserRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name" validate:"omitempty,max=255"`
}

// DeleteUserRequest is the body of DELETE /auth/users/:id.
type DeleteUserRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
}
