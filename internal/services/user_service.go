package services

import (
	"strings"

	"gorm.io/gorm"

	"accounts_backend/internal/auth"
	"accounts_backend/internal/models"
	"accounts_backend/internal/repositories"
	"accounts_backend/internal/services/dto"
	"accounts_backend/pkg/apperrors"
)

// CreateUserParams are the optional fields of user creation. Flags default
// to false, so self-service registration produces inactive non-staff users.
type CreateUserParams struct {
	Name            string
	IsActive        bool
	IsStaff         bool
	IsSuperuser     bool
	ActivationToken string
}

// UserService implements the credential-store operations: creation,
// password verification and the profile surface.
type UserService interface {
	CreateUser(db *gorm.DB, email, password string, params CreateUserParams) (*models.User, error)
	CreateSuperuser(db *gorm.DB, email, password string) (*models.User, error)
	VerifyPassword(user *models.User, plaintext string) bool
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteAccount(db *gorm.DB, userID, currentPassword string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// NormalizeEmail lower-cases the domain part of an email address while
// preserving the casing of the local part.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func (s *UserServiceImpl) CreateUser(db *gorm.DB, email, password string, params CreateUserParams) (*models.User, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:           NormalizeEmail(email),
		Name:            params.Name,
		PasswordHash:    hashedPassword,
		IsActive:        params.IsActive,
		IsStaff:         params.IsStaff,
		IsSuperuser:     params.IsSuperuser,
		ActivationToken: params.ActivationToken,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if apperrors.Is(err, repositories.ErrEmailRequired) {
			return nil, apperrors.ErrEmailRequired
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *UserServiceImpl) CreateSuperuser(db *gorm.DB, email, password string) (*models.User, error) {
	return s.CreateUser(db, email, password, CreateUserParams{
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	})
}

func (s *UserServiceImpl) VerifyPassword(user *models.User, plaintext string) bool {
	return auth.CheckPasswordHash(plaintext, user.PasswordHash)
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return userResponse(user), nil
}

// UpdateProfile changes the display name. An email value in the request is
// deliberately ignored: the field is immutable through this surface and the
// call still succeeds.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != user.Name {
		if err := s.userRepo.UpdateName(db, userID, *req.Name); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Name = *req.Name
	}

	return userResponse(user), nil
}

func (s *UserServiceImpl) DeleteAccount(db *gorm.DB, userID, currentPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !s.VerifyPassword(user, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.Delete(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func userResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
