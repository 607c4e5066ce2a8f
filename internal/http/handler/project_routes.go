package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"kakunin/internal/contract"
	"kakunin/internal/utils/apierror"
)

type ProjectService interface {
	ListProjects(page, limit int, status string) (*contract.ProjectListResponse, apierror.ErrorResponse)
	GetProject(id int) (*contract.ProjectResponse, apierror.ErrorResponse)
	CreateProject(req *contract.ProjectCreateRequest) (*contract.ProjectResponse, apierror.ErrorResponse)
	UpdateProject(id int, req *contract.ProjectUpdateRequest) (*contract.ProjectResponse, apierror.ErrorResponse)
	DeleteProject(id int) apierror.ErrorResponse
}

type DefaultProjectRoute struct {
	ProjectService ProjectService
}

func NewProjectDefault(projectService ProjectService) *DefaultProjectRoute {
	return &DefaultProjectRoute{ProjectService: projectService}
}

func (p *DefaultProjectRoute) GetProjects(c echo.Context) error {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 0)
	status := strings.TrimSpace(c.QueryParam("status"))

	resp, apierr := p.ProjectService.ListProjects(page, limit, status)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProjectRoute) GetProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	project, apierr := p.ProjectService.GetProject(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, project)
}

func (p *DefaultProjectRoute) CreateProject(c echo.Context) error {
	var req contract.ProjectCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	project, apierr := p.ProjectService.CreateProject(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, project)
}

func (p *DefaultProjectRoute) UpdateProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ProjectUpdateRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	project, apierr := p.ProjectService.UpdateProject(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, project)
}

func (p *DefaultProjectRoute) DeleteProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	apierr := p.ProjectService.DeleteProject(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// intQuery reads a numeric query param, falling back when absent or
// malformed so list endpoints stay lenient about pagination input.
func intQuery(c echo.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
