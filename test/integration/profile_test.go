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

func TestProfile(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	userID := ts.RegisterAndActivate(t, "profile.user@example.com", "strongpass1")
	access, _ := ts.Login(t, "profile.user@example.com", "strongpass1")

	otherID := ts.RegisterAndActivate(t, "other.user@example.com", "strongpass1")

	t.Run("requires authentication", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/auth/users/"+userID, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("returns the own profile", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/auth/users/"+userID, access, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+body)

		var profile struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &profile))
		assert.Equal(t, userID, profile.ID)
		assert.Equal(t, "profile.user@example.com", profile.Email)
	})

	t.Run("answers 404 for another user's id", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/auth/users/"+otherID, access, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, "foreign ids must look nonexistent")
	})

	t.Run("updates the display name", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/auth/users/"+userID, access, map[string]interface{}{
			"name": "Renamed User",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+body)
		assert.Contains(t, body, "Renamed User")

		var user models.User
		require.NoError(t, ts.DB.First(&user, "id = ?", userID).Error)
		assert.Equal(t, "Renamed User", user.Name)
	})

	t.Run("rejects a non-string name and keeps the stored one", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPatch, "/auth/users/"+userID, access, map[string]interface{}{
			"name": map[string]interface{}{"invalid": "data"},
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var user models.User
		require.NoError(t, ts.DB.First(&user, "id = ?", userID).Error)
		assert.Equal(t, "Renamed User", user.Name, "a rejected update must not change the record")
	})

	t.Run("silently ignores an email change", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPatch, "/auth/users/"+userID, access, map[string]interface{}{
			"email": "hijacked@example.com",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+body)
		assert.Contains(t, body, "profile.user@example.com")

		var user models.User
		require.NoError(t, ts.DB.First(&user, "id = ?", userID).Error)
		assert.Equal(t, "profile.user@example.com", user.Email, "email is immutable through the profile")
	})

	t.Run("refuses deletion with a wrong password", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, "/auth/users/"+userID, access, map[string]interface{}{
			"current_password": "wrongpass1",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("deletes the account", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodDelete, "/auth/users/"+userID, access, map[string]interface{}{
			"current_password": "strongpass1",
		})
		assert.Equal(t, http.StatusNoContent, res.StatusCode, "body: "+body)

		var count int64
		require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error)
		assert.Zero(t, count)

		var tokenCount int64
		require.NoError(t, ts.DB.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&tokenCount).Error)
		assert.Zero(t, tokenCount, "refresh tokens go with the account")

		// The bearer token still parses but the record is gone.
		res, _ = ts.SendRequest(t, http.MethodGet, "/auth/users/"+userID, access, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodPost, "/auth/jwt/create", "", map[string]interface{}{
			"email":    "profile.user@example.com",
			"password": "strongpass1",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
