package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kakunin/internal/contract"
	"kakunin/internal/utils/apierror"
)

type DetailService interface {
	UpdateFinancial(projectID int, req *contract.FinancialUpdateRequest) (*contract.FinancialResponse, apierror.ErrorResponse)
	UpdateSchedule(projectID int, req *contract.ScheduleUpdateRequest) (*contract.ScheduleResponse, apierror.ErrorResponse)
}

type DefaultDetailRoute struct {
	DetailService DetailService
}

func NewDetailDefault(detailService DetailService) *DefaultDetailRoute {
	return &DefaultDetailRoute{DetailService: detailService}
}

func (d *DefaultDetailRoute) UpdateFinancial(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.FinancialUpdateRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	financial, apierr := d.DetailService.UpdateFinancial(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, financial)
}

func (d *DefaultDetailRoute) UpdateSchedule(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ScheduleUpdateRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	schedule, apierr := d.DetailService.UpdateSchedule(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, schedule)
}
