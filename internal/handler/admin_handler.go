package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// AdminHandler serves the content-editing endpoints behind JWT auth.
type AdminHandler struct {
	portfolioService service.PortfolioService
	adminService     service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(portfolioService service.PortfolioService, adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		portfolioService: portfolioService,
		adminService:     adminService,
	}
}

// ProfileRequest carries the profile form: base fields plus both language blocks.
type ProfileRequest struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	FrTitle             string `json:"fr_title" validate:"required"`
	FrDescription       string `json:"fr_description"`
	EnTitle             string `json:"en_title"`
	EnDescription       string `json:"en_description"`
	ExperienceStartYear *int   `json:"experience_start_year"`
}

// SocialRequest carries the social links form.
type SocialRequest struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

// SkillRequest carries a skill create or update.
type SkillRequest struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"min=0,max=100"`
}

// SkillCategoriesRequest replaces a skill's category membership.
type SkillCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids"`
}

// CategoryRequest carries a category create or update.
type CategoryRequest struct {
	Name     string  `json:"name" validate:"required"`
	Icon     *string `json:"icon"`
	Position int     `json:"position"`
}

// ProjectRequest carries a project upsert. A nil ID creates a new project.
type ProjectRequest struct {
	ID            *int     `json:"id"`
	Image         string   `json:"image"`
	FrTitle       string   `json:"fr_title" validate:"required"`
	FrDescription string   `json:"fr_description"`
	EnTitle       string   `json:"en_title"`
	EnDescription string   `json:"en_description"`
	Technologies  []string `json:"technologies"`
}

// ExperienceRequest carries an experience upsert. A nil ID creates a new entry.
type ExperienceRequest struct {
	ID            *int   `json:"id"`
	StartYear     int    `json:"start_year" validate:"required"`
	EndYear       *int   `json:"end_year"`
	FrTitle       string `json:"fr_title" validate:"required"`
	FrSubtitle    string `json:"fr_subtitle"`
	FrDescription string `json:"fr_description"`
	EnTitle       string `json:"en_title"`
	EnSubtitle    string `json:"en_subtitle"`
	EnDescription string `json:"en_description"`
}

// IDResponse returns the id written by an upsert.
type IDResponse struct {
	ID int `json:"id"`
}

// MessageResponse acknowledges a write with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// GetData godoc
// @Summary Get the full editable dataset, both languages side by side
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminData
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin [get]
func (h *AdminHandler) GetData(c echo.Context) error {
	data, err := h.portfolioService.GetAdminData(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, data)
}

// UpdateProfile godoc
// @Summary Update the profile and both language blocks
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Profile"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/profile [put]
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.adminService.UpdateProfile(c.Request().Context(), service.ProfileInput{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Location:            req.Location,
		FrTitle:             req.FrTitle,
		FrDescription:       req.FrDescription,
		EnTitle:             req.EnTitle,
		EnDescription:       req.EnDescription,
		ExperienceStartYear: req.ExperienceStartYear,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "profile updated"})
}

// UpdateSocial godoc
// @Summary Update the social links
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SocialRequest true "Social links"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/social [put]
func (h *AdminHandler) UpdateSocial(c echo.Context) error {
	var req SocialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.adminService.UpdateSocial(c.Request().Context(), service.SocialInput{
		Github:   req.Github,
		Linkedin: req.Linkedin,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "social links updated"})
}

// AddSkill godoc
// @Summary Add a skill
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SkillRequest true "Skill"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/skills [post]
func (h *AdminHandler) AddSkill(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.adminService.AddSkill(c.Request().Context(), service.SkillInput{Name: req.Name, Level: req.Level})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "skill added"})
}

// UpdateSkill godoc
// @Summary Update a skill
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body SkillRequest true "Skill"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/skills/{id} [put]
func (h *AdminHandler) UpdateSkill(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.adminService.UpdateSkill(c.Request().Context(), service.SkillInput{ID: id, Name: req.Name, Level: req.Level})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "skill updated"})
}

// DeleteSkill godoc
// @Summary Delete a skill
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/skills/{id} [delete]
func (h *AdminHandler) DeleteSkill(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.adminService.DeleteSkill(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "skill deleted"})
}

// SetSkillCategories godoc
// @Summary Replace a skill's category membership
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body SkillCategoriesRequest true "Category ids"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/skills/{id}/categories [put]
func (h *AdminHandler) SetSkillCategories(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req SkillCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.adminService.SetSkillCategories(c.Request().Context(), id, req.CategoryIDs); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "skill categories updated"})
}

// AddCategory godoc
// @Summary Add a skill category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories [post]
func (h *AdminHandler) AddCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.adminService.AddCategory(c.Request().Context(), service.CategoryInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Position: req.Position,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "category added"})
}

// UpdateCategory godoc
// @Summary Update a skill category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.adminService.UpdateCategory(c.Request().Context(), service.CategoryInput{
		ID:       id,
		Name:     req.Name,
		Icon:     req.Icon,
		Position: req.Position,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "category updated"})
}

// DeleteCategory godoc
// @Summary Delete a skill category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.adminService.DeleteCategory(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "category deleted"})
}

// UpsertProject godoc
// @Summary Create or update a project with both language blocks and technologies
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectRequest true "Project"
// @Success 200 {object} IDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/projects [post]
func (h *AdminHandler) UpsertProject(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.adminService.UpsertProject(c.Request().Context(), service.ProjectInput{
		ID:            req.ID,
		Image:         req.Image,
		FrTitle:       req.FrTitle,
		FrDescription: req.FrDescription,
		EnTitle:       req.EnTitle,
		EnDescription: req.EnDescription,
		Technologies:  req.Technologies,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, IDResponse{ID: id})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.adminService.DeleteProject(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "project deleted"})
}

// UpsertExperience godoc
// @Summary Create or update an experience with both language blocks
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExperienceRequest true "Experience"
// @Success 200 {object} IDResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/experiences [post]
func (h *AdminHandler) UpsertExperience(c echo.Context) error {
	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.adminService.UpsertExperience(c.Request().Context(), service.ExperienceInput{
		ID:            req.ID,
		StartYear:     req.StartYear,
		EndYear:       req.EndYear,
		FrTitle:       req.FrTitle,
		FrSubtitle:    req.FrSubtitle,
		FrDescription: req.FrDescription,
		EnTitle:       req.EnTitle,
		EnSubtitle:    req.EnSubtitle,
		EnDescription: req.EnDescription,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, IDResponse{ID: id})
}

// DeleteExperience godoc
// @Summary Delete an experience
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Experience ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/experiences/{id} [delete]
func (h *AdminHandler) DeleteExperience(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.adminService.DeleteExperience(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "experience deleted"})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
