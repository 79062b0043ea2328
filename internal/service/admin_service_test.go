package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
)

func TestAdminService_SetSkillCategories(t *testing.T) {
	tests := []struct {
		name        string
		categoryIDs []string
		expectedIDs []int
	}{
		{
			name:        "duplicates collapse to one row each",
			categoryIDs: []string{"1", "2", "2", "3"},
			expectedIDs: []int{1, 2, 3},
		},
		{
			name:        "non integer ids are dropped",
			categoryIDs: []string{"4", "abc", " 5 ", ""},
			expectedIDs: []int{4, 5},
		},
		{
			name:        "empty input clears membership",
			categoryIDs: nil,
			expectedIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skillRepo := new(MockSkillRepository)
			skillRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
			skillRepo.On("DeleteMapBySkill", mock.Anything, 7).Return(nil)
			for _, id := range tt.expectedIDs {
				skillRepo.On("CreateMap", mock.Anything, &model.SkillCategoryMap{SkillID: 7, CategoryID: id}).Return(nil).Once()
			}

			service := NewAdminService(new(MockProfileRepository), skillRepo, new(MockProjectRepository), new(MockExperienceRepository))
			err := service.SetSkillCategories(context.Background(), 7, tt.categoryIDs)

			assert.NoError(t, err)
			skillRepo.AssertExpectations(t)
			skillRepo.AssertNumberOfCalls(t, "CreateMap", len(tt.expectedIDs))
		})
	}
}

func TestAdminService_UpsertProject(t *testing.T) {
	t.Run("new project inserts base, both languages and tags", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		projectRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		projectRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Project).ID = 42
			}).Return(nil)
		projectRepo.On("UpsertI18n", mock.Anything, &model.ProjectI18n{
			ProjectID: 42, Lang: "fr", Title: "Supervision", Description: "Stack Zabbix",
		}).Return(nil)
		// English falls back to the French text when left empty.
		projectRepo.On("UpsertI18n", mock.Anything, &model.ProjectI18n{
			ProjectID: 42, Lang: "en", Title: "Supervision", Description: "Stack Zabbix",
		}).Return(nil)
		projectRepo.On("ReplaceTech", mock.Anything, 42, []string{"Zabbix", "Grafana"}).Return(nil)

		service := NewAdminService(new(MockProfileRepository), new(MockSkillRepository), projectRepo, new(MockExperienceRepository))
		id, err := service.UpsertProject(context.Background(), ProjectInput{
			FrTitle:       "Supervision",
			FrDescription: "Stack Zabbix",
			Technologies:  []string{" Zabbix ", "Grafana", "  "},
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, id)
		projectRepo.AssertExpectations(t)
	})

	t.Run("existing project keeps its id and updates the image", func(t *testing.T) {
		existing := 5
		projectRepo := new(MockProjectRepository)
		projectRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		projectRepo.On("UpdateImage", mock.Anything, 5, "/img/new.webp").Return(nil)
		projectRepo.On("UpsertI18n", mock.Anything, mock.AnythingOfType("*model.ProjectI18n")).Return(nil).Twice()
		projectRepo.On("ReplaceTech", mock.Anything, 5, []string{}).Return(nil)

		service := NewAdminService(new(MockProfileRepository), new(MockSkillRepository), projectRepo, new(MockExperienceRepository))
		id, err := service.UpsertProject(context.Background(), ProjectInput{
			ID:      &existing,
			Image:   "/img/new.webp",
			FrTitle: "Homelab",
			EnTitle: "Homelab",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, id)
		projectRepo.AssertExpectations(t)
		projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAdminService_UpsertExperience(t *testing.T) {
	experienceRepo := new(MockExperienceRepository)
	experienceRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	experienceRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Experience")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Experience).ID = 9
		}).Return(nil)
	experienceRepo.On("UpsertI18n", mock.Anything, &model.ExperienceI18n{
		ExperienceID: 9, Lang: "fr", Title: "Technicien DevOps", Subtitle: "KEENTON SAS",
	}).Return(nil)
	experienceRepo.On("UpsertI18n", mock.Anything, &model.ExperienceI18n{
		ExperienceID: 9, Lang: "en", Title: "DevOps Technician", Subtitle: "KEENTON SAS",
	}).Return(nil)

	service := NewAdminService(new(MockProfileRepository), new(MockSkillRepository), new(MockProjectRepository), experienceRepo)
	id, err := service.UpsertExperience(context.Background(), ExperienceInput{
		StartYear:  2022,
		FrTitle:    "Technicien DevOps",
		FrSubtitle: "KEENTON SAS",
		EnTitle:    "DevOps Technician",
	})

	assert.NoError(t, err)
	assert.Equal(t, 9, id)
	experienceRepo.AssertExpectations(t)
}

func TestAdminService_UpdateProfile(t *testing.T) {
	year := 2022
	profileRepo := new(MockProfileRepository)
	profileRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	profileRepo.On("UpsertBase", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
		return p.Name == "Mathias Legrand" && p.ExperienceStartYear != nil && *p.ExperienceStartYear == 2022
	})).Return(nil)
	profileRepo.On("UpsertI18n", mock.Anything, &model.ProfileI18n{Lang: "fr", Title: "Technicien DevOps"}).Return(nil)
	profileRepo.On("UpsertI18n", mock.Anything, &model.ProfileI18n{Lang: "en", Title: "DevOps Technician"}).Return(nil)

	service := NewAdminService(profileRepo, new(MockSkillRepository), new(MockProjectRepository), new(MockExperienceRepository))
	err := service.UpdateProfile(context.Background(), ProfileInput{
		Name:                "Mathias Legrand",
		FrTitle:             "Technicien DevOps",
		EnTitle:             "DevOps Technician",
		ExperienceStartYear: &year,
	})

	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}
