package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMariaDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.ProfileI18n{},
		&model.Social{},
		&model.Skill{},
		&model.SkillCategory{},
		&model.SkillCategoryMap{},
		&model.Project{},
		&model.ProjectI18n{},
		&model.ProjectTech{},
		&model.Experience{},
		&model.ExperienceI18n{},
		&model.AdminUser{},
		&model.AdminToken{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	seeded, err := seed.IfNeeded(context.Background(), gormDB)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if seeded {
		log.Println("Default content inserted")
		return
	}
	log.Println("Profile already present, nothing to do")
}
