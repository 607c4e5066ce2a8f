package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kakunin/internal/contract"
	"kakunin/internal/utils/apierror"
)

type ApplicationService interface {
	GetApplications(projectID int) ([]*contract.ApplicationResponse, apierror.ErrorResponse)
	CreateApplication(projectID int, req *contract.ApplicationCreateRequest) (*contract.ApplicationResponse, apierror.ErrorResponse)
}

type DefaultApplicationRoute struct {
	ApplicationService ApplicationService
}

func NewApplicationDefault(applicationService ApplicationService) *DefaultApplicationRoute {
	return &DefaultApplicationRoute{ApplicationService: applicationService}
}

func (a *DefaultApplicationRoute) GetApplications(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	applications, apierr := a.ApplicationService.GetApplications(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"applications": applications}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultApplicationRoute) CreateApplication(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ApplicationCreateRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	application, apierr := a.ApplicationService.CreateApplication(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, application)
}
