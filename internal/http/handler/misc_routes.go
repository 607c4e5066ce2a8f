package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kakunin/internal/contract"
	"kakunin/internal/utils/apierror"
)

type LookupService interface {
	GetAddressByPostalCode(ctx context.Context, code string) (*contract.AddressResponse, apierror.ErrorResponse)
}

type HealthService interface {
	Check() *contract.HealthResponse
}

type DefaultMiscRoute struct {
	LookupService LookupService
	HealthService HealthService
}

func NewMiscDefault(lookupService LookupService, healthService HealthService) *DefaultMiscRoute {
	return &DefaultMiscRoute{
		LookupService: lookupService,
		HealthService: healthService,
	}
}

func (m *DefaultMiscRoute) GetAddress(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))

	address, apierr := m.LookupService.GetAddressByPostalCode(c.Request().Context(), code)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, address)
}

func (m *DefaultMiscRoute) GetHealth(c echo.Context) error {
	health := m.HealthService.Check()

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, health)
}
