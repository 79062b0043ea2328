package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// PortfolioHandler serves the public read endpoints.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetPortfolio godoc
// @Summary Get the full portfolio aggregate for one language
// @Tags portfolio
// @Produce json
// @Param lang query string false "Language code (fr or en)" default(fr)
// @Success 200 {object} service.PortfolioData
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = "fr"
	}

	data, err := h.portfolioService.GetPortfolioData(c.Request().Context(), lang)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, data)
}

// ListProjects godoc
// @Summary List projects for one language
// @Tags portfolio
// @Produce json
// @Param lang query string false "Language code (fr or en)" default(fr)
// @Success 200 {array} service.ProjectView
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *PortfolioHandler) ListProjects(c echo.Context) error {
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = "fr"
	}

	data, err := h.portfolioService.GetPortfolioData(c.Request().Context(), lang)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, data.Projects)
}
