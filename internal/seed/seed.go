package seed

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// IfNeeded populates an empty database with the default dataset. The
// guard is the profile row count: a non-empty profile table makes the
// whole call a no-op, so running it on every start never duplicates
// data. All inserts happen in a single transaction; any failure rolls
// the entire seed back.
func IfNeeded(ctx context.Context, db *gorm.DB) (bool, error) {
	profiles := repository.NewProfileRepository(db)
	n, err := profiles.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertAll(ctx, tx)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func insertAll(ctx context.Context, tx *gorm.DB) error {
	profiles := repository.NewProfileRepository(tx)
	skills := repository.NewSkillRepository(tx)
	projects := repository.NewProjectRepository(tx)
	experiences := repository.NewExperienceRepository(tx)

	p := defaultProfile
	startYear := p.StartYear
	base := model.Profile{
		Name:                p.Name,
		Title:               p.Title,
		Email:               p.Email,
		Phone:               p.Phone,
		Location:            p.Location,
		Description:         p.Description,
		ExperienceStartYear: &startYear,
	}
	if err := profiles.UpsertBase(ctx, &base); err != nil {
		return err
	}
	if err := profiles.UpsertI18n(ctx, &model.ProfileI18n{Lang: "fr", Title: p.Title, Description: p.Description}); err != nil {
		return err
	}
	if err := profiles.UpsertI18n(ctx, &model.ProfileI18n{Lang: "en", Title: p.EnTitle, Description: p.EnDesc}); err != nil {
		return err
	}

	social := defaultSocial
	if err := profiles.UpsertSocial(ctx, &social); err != nil {
		return err
	}

	for _, s := range defaultSkills {
		skill := model.Skill{Name: s.Name, Level: s.Level}
		if err := skills.Create(ctx, &skill); err != nil {
			return err
		}
	}

	for _, pd := range defaultProjects {
		project := model.Project{Title: pd.Title, Description: pd.Description, Image: pd.Image}
		if err := projects.Create(ctx, &project); err != nil {
			return err
		}
		fr := model.ProjectI18n{ProjectID: project.ID, Lang: "fr", Title: pd.Title, Description: pd.Description}
		if err := projects.UpsertI18n(ctx, &fr); err != nil {
			return err
		}
		en := model.ProjectI18n{ProjectID: project.ID, Lang: "en", Title: pd.EnTitle, Description: pd.EnDesc}
		if err := projects.UpsertI18n(ctx, &en); err != nil {
			return err
		}
		if err := projects.ReplaceTech(ctx, project.ID, pd.Technologies); err != nil {
			return err
		}
	}

	for _, ed := range defaultExperiences {
		exp := model.Experience{
			StartYear:   ed.StartYear,
			EndYear:     ed.EndYear,
			Title:       ed.Fr.Title,
			Subtitle:    ed.Fr.Subtitle,
			Description: ed.Fr.Desc,
		}
		if err := experiences.Create(ctx, &exp); err != nil {
			return err
		}
		fr := model.ExperienceI18n{ExperienceID: exp.ID, Lang: "fr", Title: ed.Fr.Title, Subtitle: ed.Fr.Subtitle, Description: ed.Fr.Desc}
		if err := experiences.UpsertI18n(ctx, &fr); err != nil {
			return err
		}
		en := model.ExperienceI18n{ExperienceID: exp.ID, Lang: "en", Title: ed.En.Title, Subtitle: ed.En.Subtitle, Description: ed.En.Desc}
		if err := experiences.UpsertI18n(ctx, &en); err != nil {
			return err
		}
	}

	return nil
}
