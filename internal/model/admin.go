package model

import "time"

// Token types accepted in admin_tokens.type.
const (
	TokenTypeSetup = "setup"
	TokenTypeReset = "reset"
)

// AdminUser is an administrator allowed to edit portfolio content.
// The password hash is set through the setup/reset token flow.
type AdminUser struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string    `json:"-" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminToken is a single-use, time-limited token mailed to the admin
// to establish or replace a password. Once UsedAt is set the token is
// never consumable again; a token past ExpiresAt is inert.
type AdminToken struct {
	ID        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string     `json:"email" gorm:"size:320;not null;index"`
	Token     string     `json:"-" gorm:"uniqueIndex;size:128;not null"`
	Type      string     `json:"type" gorm:"type:enum('setup','reset');not null"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}
