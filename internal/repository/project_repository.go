package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// ProjectRepository defines project, project-i18n and technology persistence.
type ProjectRepository interface {
	ListLocalized(ctx context.Context, lang string) ([]model.LocalizedProject, error)
	LocalizedByID(ctx context.Context, id int, lang string) (*model.LocalizedProject, error)
	List(ctx context.Context) ([]model.Project, error)
	ListTech(ctx context.Context) ([]model.ProjectTech, error)
	TechForProject(ctx context.Context, projectID int) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p *model.Project) error
	UpdateImage(ctx context.Context, id int, image string) error
	UpsertI18n(ctx context.Context, row *model.ProjectI18n) error
	ReplaceTech(ctx context.Context, projectID int, techs []string) error
	Delete(ctx context.Context, id int) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProjectRepository) error) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// ListLocalized returns all projects newest-id-first with i18n text
// for lang coalesced onto the base row.
func (r *projectRepository) ListLocalized(ctx context.Context, lang string) ([]model.LocalizedProject, error) {
	var rows []model.LocalizedProject
	err := r.db.WithContext(ctx).
		Table("projects p").
		Select("p.id, p.image, COALESCE(i.title, p.title) AS title, COALESCE(i.description, p.description) AS description").
		Joins("LEFT JOIN project_i18n i ON i.project_id = p.id AND i.lang = ?", lang).
		Order("p.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LocalizedByID returns one project with i18n fallback, or nil when absent.
func (r *projectRepository) LocalizedByID(ctx context.Context, id int, lang string) (*model.LocalizedProject, error) {
	var row model.LocalizedProject
	err := r.db.WithContext(ctx).
		Table("projects p").
		Select("p.id, p.image, COALESCE(i.title, p.title) AS title, COALESCE(i.description, p.description) AS description").
		Joins("LEFT JOIN project_i18n i ON i.project_id = p.id AND i.lang = ?", lang).
		Where("p.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns base project rows newest-id-first.
func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListTech returns every technology row, alphabetically by tag.
func (r *projectRepository) ListTech(ctx context.Context) ([]model.ProjectTech, error) {
	var rows []model.ProjectTech
	if err := r.db.WithContext(ctx).Order("tech").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TechForProject returns one project's tags, alphabetically.
func (r *projectRepository) TechForProject(ctx context.Context, projectID int) ([]string, error) {
	var techs []string
	err := r.db.WithContext(ctx).Model(&model.ProjectTech{}).
		Where("project_id = ?", projectID).
		Order("tech").
		Pluck("tech", &techs).Error
	if err != nil {
		return nil, err
	}
	return techs, nil
}

// Count returns the authoritative project count.
func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts a new base project row and captures the generated id.
func (r *projectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// UpdateImage rewrites the image path of an existing project.
func (r *projectRepository) UpdateImage(ctx context.Context, id int, image string) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("image", image).Error
}

// UpsertI18n inserts or updates one project override row.
func (r *projectRepository) UpsertI18n(ctx context.Context, row *model.ProjectI18n) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description"}),
	}).Create(row).Error
}

// ReplaceTech swaps a project's full tag set: delete all, reinsert.
func (r *projectRepository) ReplaceTech(ctx context.Context, projectID int, techs []string) error {
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).Delete(&model.ProjectTech{}).Error; err != nil {
		return err
	}
	for _, t := range techs {
		row := model.ProjectTech{ProjectID: projectID, Tech: t}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a project; i18n and tech rows cascade away.
func (r *projectRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

// WithTransaction executes a function within a database transaction.
func (r *projectRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ProjectRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &projectRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
