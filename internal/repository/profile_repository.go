package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// profileID is the fixed id of the singleton profile and social rows.
const profileID = 1

// ProfileRepository defines profile, profile-i18n and social persistence.
type ProfileRepository interface {
	Get(ctx context.Context) (*model.Profile, error)
	I18n(ctx context.Context, lang string) (*model.ProfileI18n, error)
	Count(ctx context.Context) (int64, error)
	Social(ctx context.Context) (*model.Social, error)
	UpsertBase(ctx context.Context, p *model.Profile) error
	UpsertI18n(ctx context.Context, row *model.ProfileI18n) error
	UpsertSocial(ctx context.Context, s *model.Social) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProfileRepository) error) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Get returns the singleton profile row, or nil when the table is empty.
func (r *profileRepository) Get(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).Where("id = ?", profileID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// I18n returns the profile override row for lang, or nil when absent.
func (r *profileRepository) I18n(ctx context.Context, lang string) (*model.ProfileI18n, error) {
	var row model.ProfileI18n
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND lang = ?", profileID, lang).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Count returns the number of profile rows; used as the seed guard.
func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Profile{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Social returns the singleton social row, or nil when absent.
func (r *profileRepository) Social(ctx context.Context) (*model.Social, error) {
	var s model.Social
	err := r.db.WithContext(ctx).Where("id = ?", profileID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertBase inserts the singleton profile row or updates its base
// fields. Title/description are left untouched on update; they belong
// to the i18n rows.
func (r *profileRepository) UpsertBase(ctx context.Context, p *model.Profile) error {
	p.ID = profileID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone", "location", "experience_start_year"}),
	}).Create(p).Error
}

// UpsertI18n inserts or updates one profile override row.
func (r *profileRepository) UpsertI18n(ctx context.Context, row *model.ProfileI18n) error {
	row.ProfileID = profileID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description"}),
	}).Create(row).Error
}

// UpsertSocial inserts or updates the singleton social row.
func (r *profileRepository) UpsertSocial(ctx context.Context, s *model.Social) error {
	s.ID = profileID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"github", "linkedin"}),
	}).Create(s).Error
}

// WithTransaction executes a function within a database transaction.
func (r *profileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProfileRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &profileRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
