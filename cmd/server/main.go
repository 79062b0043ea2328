package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "portfolio/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/mailer"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/seed"
	"portfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Bilingual portfolio backend with content administration, token-based admin setup and contact emails.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMariaDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.AdminToken{},
			&model.AdminUser{},
			&model.ExperienceI18n{},
			&model.Experience{},
			&model.ProjectTech{},
			&model.ProjectI18n{},
			&model.Project{},
			&model.SkillCategoryMap{},
			&model.SkillCategory{},
			&model.Skill{},
			&model.Social{},
			&model.ProfileI18n{},
			&model.Profile{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
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
		log.Println("Empty database detected, default content inserted")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	experienceRepo := repository.NewExperienceRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	mail := mailer.New(cfg)

	// Initialize services
	portfolioService := service.NewPortfolioService(profileRepo, skillRepo, projectRepo, experienceRepo)
	adminService := service.NewAdminService(profileRepo, skillRepo, projectRepo, experienceRepo)
	authService := service.NewAuthService(adminRepo, jwtService, tokenStore, mail, cfg.AdminEmail, cfg.SiteURL)
	contactService := service.NewContactService(portfolioService, mail, cfg.ContactEmail)

	// Initialize handlers
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(portfolioService, adminService)

	// Register routes
	router.Register(e, cfg, portfolioHandler, contactHandler, authHandler, adminHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
