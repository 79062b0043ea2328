package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/mailer"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) I18n(ctx context.Context, lang string) (*model.ProfileI18n, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfileI18n), args.Error(1)
}

func (m *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) Social(ctx context.Context) (*model.Social, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Social), args.Error(1)
}

func (m *MockProfileRepository) UpsertBase(ctx context.Context, p *model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) UpsertI18n(ctx context.Context, row *model.ProfileI18n) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProfileRepository) UpsertSocial(ctx context.Context, s *model.Social) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ProfileRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

// MockSkillRepository is a mock implementation of SkillRepository.
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepository) Update(ctx context.Context, s *model.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) ListCategories(ctx context.Context) ([]model.SkillCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillCategory), args.Error(1)
}

func (m *MockSkillRepository) CreateCategory(ctx context.Context, c *model.SkillCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockSkillRepository) UpdateCategory(ctx context.Context, c *model.SkillCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockSkillRepository) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) ListMap(ctx context.Context) ([]model.SkillCategoryMap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillCategoryMap), args.Error(1)
}

func (m *MockSkillRepository) DeleteMapBySkill(ctx context.Context, skillID int) error {
	args := m.Called(ctx, skillID)
	return args.Error(0)
}

func (m *MockSkillRepository) CreateMap(ctx context.Context, row *model.SkillCategoryMap) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockSkillRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.SkillRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) ListLocalized(ctx context.Context, lang string) ([]model.LocalizedProject, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocalizedProject), args.Error(1)
}

func (m *MockProjectRepository) LocalizedByID(ctx context.Context, id int, lang string) (*model.LocalizedProject, error) {
	args := m.Called(ctx, id, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocalizedProject), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListTech(ctx context.Context) ([]model.ProjectTech, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectTech), args.Error(1)
}

func (m *MockProjectRepository) TechForProject(ctx context.Context, projectID int) ([]string, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateImage(ctx context.Context, id int, image string) error {
	args := m.Called(ctx, id, image)
	return args.Error(0)
}

func (m *MockProjectRepository) UpsertI18n(ctx context.Context, row *model.ProjectI18n) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProjectRepository) ReplaceTech(ctx context.Context, projectID int, techs []string) error {
	args := m.Called(ctx, projectID, techs)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ProjectRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

// MockExperienceRepository is a mock implementation of ExperienceRepository.
type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) ListLocalized(ctx context.Context, lang string) ([]model.LocalizedExperience, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocalizedExperience), args.Error(1)
}

func (m *MockExperienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Create(ctx context.Context, e *model.Experience) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExperienceRepository) UpdateBase(ctx context.Context, e *model.Experience) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExperienceRepository) UpsertI18n(ctx context.Context, row *model.ExperienceI18n) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExperienceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ExperienceRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) UserCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) UserByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) UpsertUser(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func (m *MockAdminRepository) ActiveToken(ctx context.Context, email, tokenType string) (*model.AdminToken, error) {
	args := m.Called(ctx, email, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminToken), args.Error(1)
}

func (m *MockAdminRepository) CreateToken(ctx context.Context, t *model.AdminToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAdminRepository) FindValidTokenForUpdate(ctx context.Context, token string) (*model.AdminToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminToken), args.Error(1)
}

func (m *MockAdminRepository) MarkTokenUsed(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.AdminRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID int, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (int, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Int(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(msg mailer.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMailer) From() string {
	args := m.Called()
	return args.String(0)
}
