package service

import (
	"context"
	"strconv"
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ProfileInput carries the admin profile form.
type ProfileInput struct {
	Name                string
	Email               string
	Phone               string
	Location            string
	FrTitle             string
	FrDescription       string
	EnTitle             string
	EnDescription       string
	ExperienceStartYear *int
}

// SocialInput carries the social links form.
type SocialInput struct {
	Github   string
	Linkedin string
}

// SkillInput carries a skill create/update.
type SkillInput struct {
	ID    int
	Name  string
	Level int
}

// CategoryInput carries a category create/update.
type CategoryInput struct {
	ID       int
	Name     string
	Icon     *string
	Position int
}

// ProjectInput carries a project upsert. A nil ID creates a new project.
type ProjectInput struct {
	ID            *int
	Image         string
	FrTitle       string
	FrDescription string
	EnTitle       string
	EnDescription string
	Technologies  []string
}

// ExperienceInput carries an experience upsert. A nil ID creates a new entry.
type ExperienceInput struct {
	ID            *int
	StartYear     int
	EndYear       *int
	FrTitle       string
	FrSubtitle    string
	FrDescription string
	EnTitle       string
	EnSubtitle    string
	EnDescription string
}

// AdminService performs the content-editing writes. Every multi-row
// operation runs in one transaction: either all of the base, i18n and
// child rows land, or none do.
type AdminService interface {
	UpdateProfile(ctx context.Context, in ProfileInput) error
	UpdateSocial(ctx context.Context, in SocialInput) error
	AddSkill(ctx context.Context, in SkillInput) error
	UpdateSkill(ctx context.Context, in SkillInput) error
	DeleteSkill(ctx context.Context, id int) error
	AddCategory(ctx context.Context, in CategoryInput) error
	UpdateCategory(ctx context.Context, in CategoryInput) error
	DeleteCategory(ctx context.Context, id int) error
	SetSkillCategories(ctx context.Context, skillID int, categoryIDs []string) error
	UpsertProject(ctx context.Context, in ProjectInput) (int, error)
	DeleteProject(ctx context.Context, id int) error
	UpsertExperience(ctx context.Context, in ExperienceInput) (int, error)
	DeleteExperience(ctx context.Context, id int) error
}

type adminService struct {
	profileRepo    repository.ProfileRepository
	skillRepo      repository.SkillRepository
	projectRepo    repository.ProjectRepository
	experienceRepo repository.ExperienceRepository
}

// NewAdminService creates a new admin write service.
func NewAdminService(
	profileRepo repository.ProfileRepository,
	skillRepo repository.SkillRepository,
	projectRepo repository.ProjectRepository,
	experienceRepo repository.ExperienceRepository,
) AdminService {
	return &adminService{
		profileRepo:    profileRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		experienceRepo: experienceRepo,
	}
}

// UpdateProfile rewrites the singleton profile base row and both i18n
// rows in one transaction.
func (s *adminService) UpdateProfile(ctx context.Context, in ProfileInput) error {
	return s.profileRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.ProfileRepository) error {
		base := model.Profile{
			Name:                in.Name,
			Email:               in.Email,
			Phone:               in.Phone,
			Location:            in.Location,
			ExperienceStartYear: in.ExperienceStartYear,
		}
		if err := repo.UpsertBase(ctx, &base); err != nil {
			return err
		}
		fr := model.ProfileI18n{Lang: "fr", Title: in.FrTitle, Description: in.FrDescription}
		if err := repo.UpsertI18n(ctx, &fr); err != nil {
			return err
		}
		en := model.ProfileI18n{Lang: "en", Title: in.EnTitle, Description: in.EnDescription}
		return repo.UpsertI18n(ctx, &en)
	})
}

// UpdateSocial rewrites the singleton social row.
func (s *adminService) UpdateSocial(ctx context.Context, in SocialInput) error {
	return s.profileRepo.UpsertSocial(ctx, &model.Social{Github: in.Github, Linkedin: in.Linkedin})
}

// AddSkill inserts a new skill.
func (s *adminService) AddSkill(ctx context.Context, in SkillInput) error {
	return s.skillRepo.Create(ctx, &model.Skill{Name: in.Name, Level: in.Level})
}

// UpdateSkill rewrites name and level of an existing skill.
func (s *adminService) UpdateSkill(ctx context.Context, in SkillInput) error {
	return s.skillRepo.Update(ctx, &model.Skill{ID: in.ID, Name: in.Name, Level: in.Level})
}

// DeleteSkill removes a skill and, via cascade, its category rows.
func (s *adminService) DeleteSkill(ctx context.Context, id int) error {
	return s.skillRepo.Delete(ctx, id)
}

// AddCategory inserts a new skill category.
func (s *adminService) AddCategory(ctx context.Context, in CategoryInput) error {
	return s.skillRepo.CreateCategory(ctx, &model.SkillCategory{Name: in.Name, Icon: in.Icon, Position: in.Position})
}

// UpdateCategory rewrites an existing category.
func (s *adminService) UpdateCategory(ctx context.Context, in CategoryInput) error {
	return s.skillRepo.UpdateCategory(ctx, &model.SkillCategory{ID: in.ID, Name: in.Name, Icon: in.Icon, Position: in.Position})
}

// DeleteCategory removes a category and, via cascade, its map rows.
func (s *adminService) DeleteCategory(ctx context.Context, id int) error {
	return s.skillRepo.DeleteCategory(ctx, id)
}

// SetSkillCategories replaces a skill's full category membership.
// Incoming ids are parsed, non-integers dropped and duplicates
// collapsed before reinsertion; the delete and the inserts share one
// transaction.
func (s *adminService) SetSkillCategories(ctx context.Context, skillID int, categoryIDs []string) error {
	ids := parseUniqueInts(categoryIDs)
	return s.skillRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.SkillRepository) error {
		if err := repo.DeleteMapBySkill(ctx, skillID); err != nil {
			return err
		}
		for _, cid := range ids {
			row := model.SkillCategoryMap{SkillID: skillID, CategoryID: cid}
			if err := repo.CreateMap(ctx, &row); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpsertProject writes the base row, both i18n rows and the full
// technology set in one transaction, returning the project id. English
// text falls back to the French text when empty.
func (s *adminService) UpsertProject(ctx context.Context, in ProjectInput) (int, error) {
	techs := cleanTags(in.Technologies)
	enTitle := fallback(in.EnTitle, in.FrTitle)
	enDesc := fallback(in.EnDescription, in.FrDescription)

	var pid int
	err := s.projectRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.ProjectRepository) error {
		if in.ID != nil {
			pid = *in.ID
			if err := repo.UpdateImage(ctx, pid, in.Image); err != nil {
				return err
			}
		} else {
			p := model.Project{Title: in.FrTitle, Description: in.FrDescription, Image: in.Image}
			if err := repo.Create(ctx, &p); err != nil {
				return err
			}
			pid = p.ID
		}
		fr := model.ProjectI18n{ProjectID: pid, Lang: "fr", Title: in.FrTitle, Description: in.FrDescription}
		if err := repo.UpsertI18n(ctx, &fr); err != nil {
			return err
		}
		en := model.ProjectI18n{ProjectID: pid, Lang: "en", Title: enTitle, Description: enDesc}
		if err := repo.UpsertI18n(ctx, &en); err != nil {
			return err
		}
		return repo.ReplaceTech(ctx, pid, techs)
	})
	if err != nil {
		return 0, err
	}
	return pid, nil
}

// DeleteProject removes a project; i18n and tech rows cascade away.
func (s *adminService) DeleteProject(ctx context.Context, id int) error {
	return s.projectRepo.Delete(ctx, id)
}

// UpsertExperience writes the base row and both i18n rows in one
// transaction, returning the experience id. English text falls back to
// the French text when empty.
func (s *adminService) UpsertExperience(ctx context.Context, in ExperienceInput) (int, error) {
	enTitle := fallback(in.EnTitle, in.FrTitle)
	enSubtitle := fallback(in.EnSubtitle, in.FrSubtitle)
	enDesc := fallback(in.EnDescription, in.FrDescription)

	var eid int
	err := s.experienceRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.ExperienceRepository) error {
		base := model.Experience{
			StartYear:   in.StartYear,
			EndYear:     in.EndYear,
			Title:       in.FrTitle,
			Subtitle:    in.FrSubtitle,
			Description: in.FrDescription,
		}
		if in.ID != nil {
			base.ID = *in.ID
			eid = *in.ID
			if err := repo.UpdateBase(ctx, &base); err != nil {
				return err
			}
		} else {
			if err := repo.Create(ctx, &base); err != nil {
				return err
			}
			eid = base.ID
		}
		fr := model.ExperienceI18n{ExperienceID: eid, Lang: "fr", Title: in.FrTitle, Subtitle: in.FrSubtitle, Description: in.FrDescription}
		if err := repo.UpsertI18n(ctx, &fr); err != nil {
			return err
		}
		en := model.ExperienceI18n{ExperienceID: eid, Lang: "en", Title: enTitle, Subtitle: enSubtitle, Description: enDesc}
		return repo.UpsertI18n(ctx, &en)
	})
	if err != nil {
		return 0, err
	}
	return eid, nil
}

// DeleteExperience removes an experience; i18n rows cascade away.
func (s *adminService) DeleteExperience(ctx context.Context, id int) error {
	return s.experienceRepo.Delete(ctx, id)
}

// parseUniqueInts keeps the first occurrence of every parseable
// integer and drops everything else.
func parseUniqueInts(values []string) []int {
	seen := make(map[int]bool, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// cleanTags trims tags and drops empty ones.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
