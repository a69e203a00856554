package services

import (
	"time"

	"gorm.io/gorm"

	"accounts_backend/internal/auth"
	"accounts_backend/internal/config"
	"accounts_backend/internal/email"
	"accounts_backend/internal/logger"
	"accounts_backend/internal/models"
	"accounts_backend/internal/repositories"
	"accounts_backend/internal/services/dto"
	"accounts_backend/pkg/apperrors"
)

// resetTokenTTL bounds the validity of password-reset tokens.
const resetTokenTTL = time.Hour

// AuthService orchestrates the account lifecycle: registration with email
// activation, token issuance and the password flows.
type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Activate(db *gorm.DB, uid, token string) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.TokenPairResponse, error)
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ConfirmPasswordReset(db *gorm.DB, req *dto.PasswordResetConfirm) error
	ChangePassword(db *gorm.DB, userID string, req *dto.SetPasswordRequest) error
}

type AuthServiceImpl struct {
	userService      UserService
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userService UserService,
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userService:      userService,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates an inactive user and dispatches the activation mail.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	activationToken := auth.GenerateRandomToken()

	user, err := s.userService.CreateUser(db, req.Email, req.Password, CreateUserParams{
		Name:            req.Name,
		ActivationToken: activationToken,
	})
	if err != nil {
		return nil, err
	}

	uid := auth.EncodeUID(user.ID)
	if err := s.emailProvider.SendActivation(user.Email, uid, activationToken); err != nil {
		// Mail delivery must not fail the registration.
		logger.Warn("failed to send activation email", "error", err, "email", user.Email)
	}

	return userResponse(user), nil
}

// Activate consumes a single-use activation token and flips is_active.
// A reused token fails: it was cleared on first use.
func (s *AuthServiceImpl) Activate(db *gorm.DB, uid, token string) error {
	userID, err := auth.DecodeUID(uid)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ActivationToken == "" || user.ActivationToken != token {
		return apperrors.ErrInvalidToken
	}

	if err := s.userRepo.Activate(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Login verifies credentials and issues an access/refresh pair. Unknown
// email, wrong password and inactive accounts are indistinguishable to the
// caller.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.userService.VerifyPassword(user, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(db, user)
}

// Refresh exchanges a stored refresh token for a new pair, rotating the
// refresh credential.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.TokenPairResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokenPair(db, user)
}

// RequestPasswordReset stores a reset token and mails the link. The caller
// gets a success-shaped reply whether or not the email is known, so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.Debug("password reset requested for unknown email", "email", emailAddr)
			return nil
		}
		return apperrors.InternalError(err)
	}

	resetToken := auth.GenerateRandomToken()
	expiresAt := time.Now().Add(resetTokenTTL)

	if err := s.userRepo.SetResetToken(db, user.ID, resetToken, expiresAt); err != nil {
		return apperrors.InternalError(err)
	}

	uid := auth.EncodeUID(user.ID)
	if err := s.emailProvider.SendPasswordReset(user.Email, uid, resetToken); err != nil {
		logger.Warn("failed to send password reset email", "error", err, "email", user.Email)
	}

	return nil
}

// ConfirmPasswordReset replaces the password hash after validating the
// single-use reset token. All refresh tokens of the user are revoked.
func (s *AuthServiceImpl) ConfirmPasswordReset(db *gorm.DB, req *dto.PasswordResetConfirm) error {
	if req.NewPassword != req.ReNewPassword {
		return apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	userID, err := auth.DecodeUID(req.UID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ResetToken == "" || user.ResetToken != req.Token {
		return apperrors.ErrInvalidToken
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// SetPassword also clears the reset token, making it single-use.
		if err := s.userRepo.SetPassword(tx, user.ID, hashedPassword); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.refreshTokenRepo.DeleteByUserID(tx, user.ID); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

// ChangePassword replaces the password hash for an authenticated user after
// verifying the current password.
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.SetPasswordRequest) error {
	if req.NewPassword != req.ReNewPassword {
		return apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !s.userService.VerifyPassword(user, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetPassword(db, user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokenPair(db *gorm.DB, user *models.User) (*dto.TokenPairResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.IsStaff, user.IsSuperuser)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     auth.GenerateRandomToken(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}

	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		Access:  accessToken,
		Refresh: refreshToken.Token,
	}, nil
}
