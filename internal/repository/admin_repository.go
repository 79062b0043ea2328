package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// AdminRepository defines admin-user and setup/reset token persistence.
type AdminRepository interface {
	UserCount(ctx context.Context) (int64, error)
	UserByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	UpsertUser(ctx context.Context, email, passwordHash string) error
	ActiveToken(ctx context.Context, email, tokenType string) (*model.AdminToken, error)
	CreateToken(ctx context.Context, t *model.AdminToken) error
	FindValidTokenForUpdate(ctx context.Context, token string) (*model.AdminToken, error)
	MarkTokenUsed(ctx context.Context, id int) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AdminRepository) error) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// UserCount returns the number of admin users.
func (r *adminRepository) UserCount(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.AdminUser{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// UserByEmail finds an admin user by email, or nil when absent.
func (r *adminRepository) UserByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser inserts an admin user or replaces the password hash of an
// existing one.
func (r *adminRepository) UpsertUser(ctx context.Context, email, passwordHash string) error {
	u := model.AdminUser{Email: email, PasswordHash: passwordHash}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
	}).Create(&u).Error
}

// ActiveToken returns the newest unused, unexpired token for
// (email, type), or nil when none is active.
func (r *adminRepository) ActiveToken(ctx context.Context, email, tokenType string) (*model.AdminToken, error) {
	var t model.AdminToken
	err := r.db.WithContext(ctx).
		Where("email = ? AND type = ? AND used_at IS NULL AND expires_at > ?", email, tokenType, time.Now()).
		Order("id DESC").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateToken inserts a new setup/reset token.
func (r *adminRepository) CreateToken(ctx context.Context, t *model.AdminToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindValidTokenForUpdate finds an unused, unexpired token by value
// with a row-level lock, so two concurrent consumers cannot both
// succeed. Returns nil when no such row exists.
func (r *adminRepository) FindValidTokenForUpdate(ctx context.Context, token string) (*model.AdminToken, error) {
	var t model.AdminToken
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now()).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkTokenUsed stamps a token as consumed.
func (r *adminRepository) MarkTokenUsed(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.AdminToken{}).
		Where("id = ?", id).
		Update("used_at", time.Now()).Error
}

// WithTransaction executes a function within a database transaction.
func (r *adminRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo AdminRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &adminRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
