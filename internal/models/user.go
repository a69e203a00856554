package models

import "time"

// User is the sole persisted entity of the service.
//
// IsActive starts false for self-service registration and flips to true
// only through a valid activation token. The superuser path creates
// accounts that are active, staff and superuser in one step.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string `gorm:"not null"`
	IsActive     bool   `gorm:"default:false"`
	IsStaff      bool   `gorm:"default:false"`
	IsSuperuser  bool   `gorm:"default:false"`

	// Single-use tokens for the email side channels. Cleared on use.
	ActivationToken string
	ResetToken      string
	ResetTokenExp   *time.Time

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// RefreshToken is an opaque, stored credential exchangeable for a new
// access token. Rotated on every successful refresh.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
