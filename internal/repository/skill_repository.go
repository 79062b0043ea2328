package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// SkillRepository defines skill, category and membership persistence.
type SkillRepository interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, s *model.Skill) error
	Update(ctx context.Context, s *model.Skill) error
	Delete(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]model.SkillCategory, error)
	CreateCategory(ctx context.Context, c *model.SkillCategory) error
	UpdateCategory(ctx context.Context, c *model.SkillCategory) error
	DeleteCategory(ctx context.Context, id int) error
	ListMap(ctx context.Context) ([]model.SkillCategoryMap, error)
	DeleteMapBySkill(ctx context.Context, skillID int) error
	CreateMap(ctx context.Context, m *model.SkillCategoryMap) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SkillRepository) error) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// List returns all skills, level descending then name ascending.
func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("level DESC, name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// Create inserts a new skill.
func (r *skillRepository) Create(ctx context.Context, s *model.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Update rewrites name and level of an existing skill.
func (r *skillRepository) Update(ctx context.Context, s *model.Skill) error {
	return r.db.WithContext(ctx).Model(&model.Skill{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{"name": s.Name, "level": s.Level}).Error
}

// Delete removes a skill; map rows cascade away.
func (r *skillRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Skill{}, id).Error
}

// ListCategories returns categories ordered by position then name.
func (r *skillRepository) ListCategories(ctx context.Context) ([]model.SkillCategory, error) {
	var cats []model.SkillCategory
	if err := r.db.WithContext(ctx).Order("position ASC, name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCategory inserts a new skill category.
func (r *skillRepository) CreateCategory(ctx context.Context, c *model.SkillCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// UpdateCategory rewrites name, icon and position of a category.
func (r *skillRepository) UpdateCategory(ctx context.Context, c *model.SkillCategory) error {
	return r.db.WithContext(ctx).Model(&model.SkillCategory{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{"name": c.Name, "icon": c.Icon, "position": c.Position}).Error
}

// DeleteCategory removes a category; map rows cascade away.
func (r *skillRepository) DeleteCategory(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.SkillCategory{}, id).Error
}

// ListMap returns all skill/category membership rows.
func (r *skillRepository) ListMap(ctx context.Context) ([]model.SkillCategoryMap, error) {
	var rows []model.SkillCategoryMap
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteMapBySkill removes every membership row of one skill.
func (r *skillRepository) DeleteMapBySkill(ctx context.Context, skillID int) error {
	return r.db.WithContext(ctx).
		Where("skill_id = ?", skillID).Delete(&model.SkillCategoryMap{}).Error
}

// CreateMap inserts one membership row.
func (r *skillRepository) CreateMap(ctx context.Context, m *model.SkillCategoryMap) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// WithTransaction executes a function within a database transaction.
func (r *skillRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SkillRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &skillRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
