package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// fallbackYears is reported when the profile has no usable
// experience start year.
const fallbackYears = 2

// PortfolioData is the full aggregate consumed by the public site for
// one language.
type PortfolioData struct {
	Name        string                      `json:"name"`
	Email       string                      `json:"email"`
	Phone       string                      `json:"phone"`
	Location    string                      `json:"location"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Skills      []model.Skill               `json:"skills"`
	Categories  []CategoryView              `json:"categories"`
	Projects    []ProjectView               `json:"projects"`
	Social      model.Social                `json:"social"`
	Stats       Stats                       `json:"stats"`
	Experiences []model.LocalizedExperience `json:"experiences"`
}

// CategoryView is a skill category with its resolved skill list.
type CategoryView struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Icon     *string       `json:"icon"`
	Position int           `json:"position"`
	Skills   []model.Skill `json:"skills"`
}

// ProjectView is a localized project with its technology tags.
type ProjectView struct {
	model.LocalizedProject
	Technologies []string `json:"technologies"`
}

// Stats summarizes the portfolio for the landing page counters.
type Stats struct {
	Years    int `json:"years"`
	Projects int `json:"projects"`
	Skills   int `json:"skills"`
}

// AdminData is the both-language aggregate backing the admin editor.
type AdminData struct {
	Profile     AdminProfile          `json:"profile"`
	Social      model.Social          `json:"social"`
	Skills      []AdminSkill          `json:"skills"`
	Categories  []model.SkillCategory `json:"categories"`
	Projects    []AdminProject        `json:"projects"`
	Experiences []model.Experience    `json:"experiences"`
}

// AdminProfile carries the base profile fields plus both i18n blocks.
type AdminProfile struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Location            string   `json:"location"`
	ExperienceStartYear *int     `json:"experience_start_year"`
	Fr                  I18nText `json:"fr"`
	En                  I18nText `json:"en"`
}

// I18nText is a title/description pair for one language.
type I18nText struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AdminSkill is a skill with its category membership.
type AdminSkill struct {
	model.Skill
	CategoryIDs []int `json:"category_ids"`
}

// AdminProject carries a project with both language variants and tags.
type AdminProject struct {
	ID           int      `json:"id"`
	Image        string   `json:"image"`
	Fr           I18nText `json:"fr"`
	En           I18nText `json:"en"`
	Technologies []string `json:"technologies"`
}

// PortfolioService aggregates portfolio content for rendering.
type PortfolioService interface {
	GetPortfolioData(ctx context.Context, lang string) (*PortfolioData, error)
	GetAdminData(ctx context.Context) (*AdminData, error)
}

type portfolioService struct {
	profileRepo    repository.ProfileRepository
	skillRepo      repository.SkillRepository
	projectRepo    repository.ProjectRepository
	experienceRepo repository.ExperienceRepository
	collator       *collate.Collator
}

// NewPortfolioService creates a new portfolio aggregation service.
func NewPortfolioService(
	profileRepo repository.ProfileRepository,
	skillRepo repository.SkillRepository,
	projectRepo repository.ProjectRepository,
	experienceRepo repository.ExperienceRepository,
) PortfolioService {
	return &portfolioService{
		profileRepo:    profileRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		experienceRepo: experienceRepo,
		// French collation, accent/case-insensitive, for skill name tie-breaks.
		collator: collate.New(language.French, collate.IgnoreCase),
	}
}

// GetPortfolioData returns the full aggregate for one language.
// Missing i18n rows fall back to the base-table text everywhere:
// profile, projects and experiences alike.
func (s *portfolioService) GetPortfolioData(ctx context.Context, lang string) (*PortfolioData, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	i18n, err := s.profileRepo.I18n(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("load profile i18n: %w", err)
	}
	social, err := s.profileRepo.Social(ctx)
	if err != nil {
		return nil, fmt.Errorf("load social: %w", err)
	}
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	s.sortSkills(skills)
	categories, err := s.buildCategories(ctx, skills)
	if err != nil {
		return nil, err
	}
	projects, err := s.buildProjects(ctx, lang)
	if err != nil {
		return nil, err
	}
	experiences, err := s.experienceRepo.ListLocalized(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("load experiences: %w", err)
	}

	data := &PortfolioData{
		Skills:      skills,
		Categories:  categories,
		Projects:    projects,
		Experiences: experiences,
		Stats:       s.buildStats(ctx, profile, len(skills), len(projects)),
	}
	if profile != nil {
		data.Name = profile.Name
		data.Email = profile.Email
		data.Phone = profile.Phone
		data.Location = profile.Location
		data.Title = profile.Title
		data.Description = profile.Description
	}
	if i18n != nil {
		data.Title = i18n.Title
		data.Description = i18n.Description
	}
	if social != nil {
		data.Social = *social
	}
	return data, nil
}

// sortSkills orders by level descending with a locale-aware,
// case-insensitive name tie-break.
func (s *portfolioService) sortSkills(skills []model.Skill) {
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Level != skills[j].Level {
			return skills[i].Level > skills[j].Level
		}
		return s.collator.CompareString(skills[i].Name, skills[j].Name) < 0
	})
}

// buildCategories resolves each category's skill list from the map
// table. A category contains exactly the skills whose id appears under
// it, each sorted by the usual level/name rule.
func (s *portfolioService) buildCategories(ctx context.Context, skills []model.Skill) ([]CategoryView, error) {
	cats, err := s.skillRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	mapRows, err := s.skillRepo.ListMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skill-category map: %w", err)
	}

	skillsByID := make(map[int]model.Skill, len(skills))
	for _, sk := range skills {
		skillsByID[sk.ID] = sk
	}
	idsByCategory := make(map[int][]int)
	for _, m := range mapRows {
		idsByCategory[m.CategoryID] = append(idsByCategory[m.CategoryID], m.SkillID)
	}

	views := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		items := make([]model.Skill, 0)
		for _, id := range idsByCategory[c.ID] {
			if sk, ok := skillsByID[id]; ok && sk.Name != "" {
				items = append(items, sk)
			}
		}
		s.sortSkills(items)
		views = append(views, CategoryView{
			ID:       c.ID,
			Name:     c.Name,
			Icon:     c.Icon,
			Position: c.Position,
			Skills:   items,
		})
	}
	return views, nil
}

// buildProjects attaches the alphabetically sorted technology tags to
// each localized project row.
func (s *portfolioService) buildProjects(ctx context.Context, lang string) ([]ProjectView, error) {
	rows, err := s.projectRepo.ListLocalized(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	techRows, err := s.projectRepo.ListTech(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project technologies: %w", err)
	}

	techByProject := make(map[int][]string)
	for _, t := range techRows {
		techByProject[t.ProjectID] = append(techByProject[t.ProjectID], t.Tech)
	}

	views := make([]ProjectView, 0, len(rows))
	for _, p := range rows {
		techs := techByProject[p.ID]
		if techs == nil {
			techs = []string{}
		}
		views = append(views, ProjectView{LocalizedProject: p, Technologies: techs})
	}
	return views, nil
}

// buildStats computes the landing-page counters. The project count
// comes from an authoritative COUNT(*); when that query fails the list
// length is used instead. A missing or non-positive start year yields
// the fixed fallback.
func (s *portfolioService) buildStats(ctx context.Context, profile *model.Profile, skillCount, projectListLen int) Stats {
	projects := projectListLen
	if n, err := s.projectRepo.Count(ctx); err == nil {
		projects = int(n)
	}

	years := fallbackYears
	if profile != nil && profile.ExperienceStartYear != nil && *profile.ExperienceStartYear > 0 {
		years = time.Now().Year() - *profile.ExperienceStartYear
		if years < 0 {
			years = 0
		}
	}
	return Stats{Years: years, Projects: projects, Skills: skillCount}
}

// GetAdminData returns the both-language aggregate for the admin editor.
func (s *portfolioService) GetAdminData(ctx context.Context) (*AdminData, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	fr, err := s.profileRepo.I18n(ctx, "fr")
	if err != nil {
		return nil, fmt.Errorf("load profile fr: %w", err)
	}
	en, err := s.profileRepo.I18n(ctx, "en")
	if err != nil {
		return nil, fmt.Errorf("load profile en: %w", err)
	}
	social, err := s.profileRepo.Social(ctx)
	if err != nil {
		return nil, fmt.Errorf("load social: %w", err)
	}
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	s.sortSkills(skills)
	categories, err := s.skillRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	mapRows, err := s.skillRepo.ListMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skill-category map: %w", err)
	}
	experiences, err := s.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load experiences: %w", err)
	}

	categoryIDsBySkill := make(map[int][]int)
	for _, m := range mapRows {
		categoryIDsBySkill[m.SkillID] = append(categoryIDsBySkill[m.SkillID], m.CategoryID)
	}
	adminSkills := make([]AdminSkill, 0, len(skills))
	for _, sk := range skills {
		ids := categoryIDsBySkill[sk.ID]
		if ids == nil {
			ids = []int{}
		}
		adminSkills = append(adminSkills, AdminSkill{Skill: sk, CategoryIDs: ids})
	}

	adminProjects, err := s.buildAdminProjects(ctx)
	if err != nil {
		return nil, err
	}

	data := &AdminData{
		Social:      model.Social{},
		Skills:      adminSkills,
		Categories:  categories,
		Projects:    adminProjects,
		Experiences: experiences,
	}
	data.Profile.ID = profileSingletonID
	if profile != nil {
		data.Profile.ID = profile.ID
		data.Profile.Name = profile.Name
		data.Profile.Email = profile.Email
		data.Profile.Phone = profile.Phone
		data.Profile.Location = profile.Location
		data.Profile.ExperienceStartYear = profile.ExperienceStartYear
	}
	if fr != nil {
		data.Profile.Fr = I18nText{Title: fr.Title, Description: fr.Description}
	}
	if en != nil {
		data.Profile.En = I18nText{Title: en.Title, Description: en.Description}
	}
	if social != nil {
		data.Social = *social
	}
	return data, nil
}

func (s *portfolioService) buildAdminProjects(ctx context.Context) ([]AdminProject, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	out := make([]AdminProject, 0, len(projects))
	for _, p := range projects {
		fr, err := s.projectRepo.LocalizedByID(ctx, p.ID, "fr")
		if err != nil {
			return nil, fmt.Errorf("load project %d fr: %w", p.ID, err)
		}
		en, err := s.projectRepo.LocalizedByID(ctx, p.ID, "en")
		if err != nil {
			return nil, fmt.Errorf("load project %d en: %w", p.ID, err)
		}
		techs, err := s.projectRepo.TechForProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load project %d technologies: %w", p.ID, err)
		}
		if techs == nil {
			techs = []string{}
		}
		ap := AdminProject{ID: p.ID, Image: p.Image, Technologies: techs}
		if fr != nil {
			ap.Fr = I18nText{Title: fr.Title, Description: fr.Description}
		}
		if en != nil {
			ap.En = I18nText{Title: en.Title, Description: en.Description}
		}
		out = append(out, ap)
	}
	return out, nil
}

// profileSingletonID mirrors the repository's fixed profile id.
const profileSingletonID = 1
