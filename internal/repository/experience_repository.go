package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// ExperienceRepository defines experience and experience-i18n persistence.
type ExperienceRepository interface {
	ListLocalized(ctx context.Context, lang string) ([]model.LocalizedExperience, error)
	List(ctx context.Context) ([]model.Experience, error)
	Create(ctx context.Context, e *model.Experience) error
	UpdateBase(ctx context.Context, e *model.Experience) error
	UpsertI18n(ctx context.Context, row *model.ExperienceI18n) error
	Delete(ctx context.Context, id int) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ExperienceRepository) error) error
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// ListLocalized returns experiences ordered start_year desc then id
// desc, with i18n text for lang coalesced onto the base row.
func (r *experienceRepository) ListLocalized(ctx context.Context, lang string) ([]model.LocalizedExperience, error) {
	var rows []model.LocalizedExperience
	err := r.db.WithContext(ctx).
		Table("experiences e").
		Select("e.id, e.start_year, e.end_year, COALESCE(i.title, e.title) AS title, COALESCE(i.subtitle, e.subtitle) AS subtitle, COALESCE(i.description, e.description) AS description").
		Joins("LEFT JOIN experience_i18n i ON i.experience_id = e.id AND i.lang = ?", lang).
		Order("e.start_year DESC, e.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// List returns base experience rows, start_year desc then id desc.
func (r *experienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	var rows []model.Experience
	if err := r.db.WithContext(ctx).Order("start_year DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new base experience row and captures the generated id.
func (r *experienceRepository) Create(ctx context.Context, e *model.Experience) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// UpdateBase rewrites all base fields of an existing experience.
func (r *experienceRepository) UpdateBase(ctx context.Context, e *model.Experience) error {
	return r.db.WithContext(ctx).Model(&model.Experience{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"start_year":  e.StartYear,
			"end_year":    e.EndYear,
			"title":       e.Title,
			"subtitle":    e.Subtitle,
			"description": e.Description,
		}).Error
}

// UpsertI18n inserts or updates one experience override row.
func (r *experienceRepository) UpsertI18n(ctx context.Context, row *model.ExperienceI18n) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "experience_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "subtitle", "description"}),
	}).Create(row).Error
}

// Delete removes an experience; i18n rows cascade away.
func (r *experienceRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Experience{}, id).Error
}

// WithTransaction executes a function within a database transaction.
func (r *experienceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ExperienceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &experienceRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
