package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/config"
	"portfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	portfolioHandler *handler.PortfolioHandler,
	contactHandler *handler.ContactHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/portfolio", portfolioHandler.GetPortfolio)
	api.GET("/projects", portfolioHandler.ListProjects)
	api.POST("/contact", contactHandler.Send)
	api.GET("/auth/bootstrap", authHandler.Bootstrap)
	api.POST("/auth/setup", authHandler.Setup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	admin.GET("", adminHandler.GetData)
	admin.PUT("/profile", adminHandler.UpdateProfile)
	admin.PUT("/social", adminHandler.UpdateSocial)

	admin.POST("/skills", adminHandler.AddSkill)
	admin.PUT("/skills/:id", adminHandler.UpdateSkill)
	admin.DELETE("/skills/:id", adminHandler.DeleteSkill)
	admin.PUT("/skills/:id/categories", adminHandler.SetSkillCategories)

	admin.POST("/categories", adminHandler.AddCategory)
	admin.PUT("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

	admin.POST("/projects", adminHandler.UpsertProject)
	admin.DELETE("/projects/:id", adminHandler.DeleteProject)

	admin.POST("/experiences", adminHandler.UpsertExperience)
	admin.DELETE("/experiences/:id", adminHandler.DeleteExperience)

	admin.POST("/reset-password", authHandler.ResetPassword)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
