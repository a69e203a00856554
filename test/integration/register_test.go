package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts_backend/internal/models"
	"accounts_backend/test/helpers"
)

func TestRegistration(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	t.Run("creates an inactive user and sends the activation mail", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
			"email":    "New.User@EXAMPLE.com",
			"password": "strongpass1",
			"name":     "New User",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+body)

		var created struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "New.User@example.com", created.Email, "domain part should be lower-cased")
		assert.Equal(t, "New User", created.Name)

		var user models.User
		require.NoError(t, ts.DB.First(&user, "id = ?", created.ID).Error)
		assert.False(t, user.IsActive, "new accounts start inactive")
		assert.False(t, user.IsStaff)
		assert.False(t, user.IsSuperuser)
		assert.NotEmpty(t, user.ActivationToken)
		assert.NotEqual(t, "strongpass1", user.PasswordHash, "password must be stored hashed")

		mail := ts.Mail.Last()
		require.NotNil(t, mail)
		assert.Equal(t, "activation", mail.Kind)
		assert.Equal(t, "New.User@example.com", mail.To)
		assert.Equal(t, user.ActivationToken, mail.Token)
	})

	t.Run("rejects a duplicate email regardless of domain casing", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
			"email":    "New.User@EXAMPLE.COM",
			"password": "anotherpass1",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "user with this email already exists.")
	})

	t.Run("treats a different local-part casing as a distinct address", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
			"email":    "NEW.USER@example.com",
			"password": "anotherpass1",
		})
		assert.Equal(t, http.StatusCreated, res.StatusCode, "body: "+body)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
			"email":    "short@example.com",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
			"email":    "not-an-email",
			"password": "strongpass1",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("rejects a missing body", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users", "", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestActivation(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/users", "", map[string]interface{}{
		"email":    "activate.me@example.com",
		"password": "strongpass1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+body)

	mail := ts.Mail.Last()
	require.NotNil(t, mail)

	t.Run("rejects a tampered token", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users/activation", "", map[string]interface{}{
			"uid":   mail.UID,
			"token": mail.Token + "x",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("rejects a garbage uid", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users/activation", "", map[string]interface{}{
			"uid":   "%%%not-base64%%%",
			"token": mail.Token,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("activates the account with the mailed uid and token", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users/activation", "", map[string]interface{}{
			"uid":   mail.UID,
			"token": mail.Token,
		})
		assert.Equal(t, http.StatusNoContent, res.StatusCode)

		var user models.User
		require.NoError(t, ts.DB.First(&user, "email = ?", "activate.me@example.com").Error)
		assert.True(t, user.IsActive)
		assert.Empty(t, user.ActivationToken, "activation token is single use")
	})

	t.Run("rejects a reused token", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/auth/users/activation", "", map[string]interface{}{
			"uid":   mail.UID,
			"token": mail.Token,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
