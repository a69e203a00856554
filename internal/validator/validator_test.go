package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts_backend/internal/services/dto"
	"accounts_backend/internal/validator"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&dto.RegisterRequest{
		Email:    "ok@example.com",
		Password: "strongpass1",
	}))

	err := v.Validate(&dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "strongpass1",
	})
	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])

	err = v.Validate(&dto.RegisterRequest{
		Email:    "ok@example.com",
		Password: "short",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors["password"], "at least 8 characters")

	err = v.Validate(&dto.RegisterRequest{})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["password"])
}

func TestValidateFieldsUseJSONNames(t *testing.T) {
	v := validator.New()

	err := v.Validate(&dto.PasswordResetConfirm{
		UID:           "uid",
		Token:         "tok",
		NewPassword:   "freshpass1",
		ReNewPassword: "different1",
	})
	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "re_new_password")
}

func TestValidateSetPasswordRequest(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&dto.SetPasswordRequest{
		CurrentPassword: "strongpass1",
		NewPassword:     "freshpass1",
		ReNewPassword:   "freshpass1",
	}))

	err := v.Validate(&dto.SetPasswordRequest{
		CurrentPassword: "strongpass1",
		NewPassword:     "freshpass1",
		ReNewPassword:   "mismatch1",
	})
	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Errors["re_new_password"])
}
