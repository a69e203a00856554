package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts_backend/internal/models"
	"accounts_backend/internal/repositories"
	"accounts_backend/test/helpers"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{Email: "repo@example.com", PasswordHash: "hash", Name: "Repo"}
	require.NoError(t, repo.Create(db, user))
	assert.NotEmpty(t, user.ID, "id is assigned on create")

	byID, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "repo@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(db, "repo@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(db, "missing")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = repo.FindByEmail(db, "missing@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepositoryCreateGuards(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	err := repo.Create(db, &models.User{Email: "", PasswordHash: "hash"})
	assert.ErrorIs(t, err, repositories.ErrEmailRequired)

	require.NoError(t, repo.Create(db, &models.User{Email: "taken@example.com", PasswordHash: "hash"}))
	err = repo.Create(db, &models.User{Email: "taken@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestUserRepositoryActivate(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{Email: "act@example.com", PasswordHash: "hash", ActivationToken: "tok"}
	require.NoError(t, repo.Create(db, user))

	require.NoError(t, repo.Activate(db, user.ID))

	reloaded, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsActive)
	assert.Empty(t, reloaded.ActivationToken)

	assert.ErrorIs(t, repo.Activate(db, "missing"), repositories.ErrUserNotFound)
}

func TestUserRepositorySetPasswordClearsResetToken(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{Email: "pw@example.com", PasswordHash: "old"}
	require.NoError(t, repo.Create(db, user))
	require.NoError(t, repo.SetResetToken(db, user.ID, "reset-tok", time.Now().Add(time.Hour)))

	withToken, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	require.Equal(t, "reset-tok", withToken.ResetToken)
	require.NotNil(t, withToken.ResetTokenExp)

	require.NoError(t, repo.SetPassword(db, user.ID, "new"))

	reloaded, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", reloaded.PasswordHash)
	assert.Empty(t, reloaded.ResetToken)
	assert.Nil(t, reloaded.ResetTokenExp)
}

func TestUserRepositoryClearResetToken(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{Email: "clear@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(db, user))
	require.NoError(t, repo.SetResetToken(db, user.ID, "tok", time.Now().Add(time.Hour)))
	require.NoError(t, repo.ClearResetToken(db, user.ID))

	reloaded, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.ResetToken)
	assert.Nil(t, reloaded.ResetTokenExp)
}

func TestUserRepositoryUpdateName(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{Email: "name@example.com", PasswordHash: "hash", Name: "Old"}
	require.NoError(t, repo.Create(db, user))
	require.NoError(t, repo.UpdateName(db, user.ID, "New"))

	reloaded, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", reloaded.Name)

	assert.ErrorIs(t, repo.UpdateName(db, "missing", "X"), repositories.ErrUserNotFound)
}

func TestUserRepositoryDeleteCascades(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()
	rtRepo := repositories.NewRefreshTokenRepository()

	user := &models.User{Email: "gone@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(db, user))
	require.NoError(t, rtRepo.Create(db, &models.RefreshToken{
		UserID:    user.ID,
		Token:     "rt-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.Delete(db, user.ID))

	_, err := repo.FindByID(db, user.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = rtRepo.FindByToken(db, "rt-1")
	assert.ErrorIs(t, err, repositories.ErrRefreshTokenNotFound)

	assert.ErrorIs(t, repo.Delete(db, user.ID), repositories.ErrUserNotFound)
}

func TestUserRepositoryCountAll(t *testing.T) {
	db := helpers.OpenTestDB(t)
	repo := repositories.NewUserRepository()

	count, err := repo.CountAll(db)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(db, &models.User{Email: "a@example.com", PasswordHash: "h"}))
	require.NoError(t, repo.Create(db, &models.User{Email: "b@example.com", PasswordHash: "h"}))

	count, err = repo.CountAll(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
