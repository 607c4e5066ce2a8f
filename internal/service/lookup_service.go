package service

import (
	"context"
	"errors"

	"github.com/labstack/gommon/log"

	"kakunin/internal/contract"
	"kakunin/internal/domain/entity"
	"kakunin/internal/infrastructure/zipcloud"
	"kakunin/internal/utils"
	"kakunin/internal/utils/apierror"
)

type AddressCacheRepository interface {
	FindByZipcode(zipcode string) (*entity.AddressCache, error)
	Save(cached *entity.AddressCache) error
}

// LookupService resolves postal codes into addresses for the form's
// auto-fill, caching results in the store so repeated keystrokes do
// not hammer the external API.
type LookupService struct {
	ZipClient   *zipcloud.Client
	AddressRepo AddressCacheRepository
}

func NewLookupService(zipClient *zipcloud.Client, addressRepo AddressCacheRepository) *LookupService {
	return &LookupService{
		ZipClient:   zipClient,
		AddressRepo: addressRepo,
	}
}

func (l *LookupService) GetAddressByPostalCode(ctx context.Context, code string) (*contract.AddressResponse, apierror.ErrorResponse) {
	normalized := utils.NormalizePostalCode(code)
	if !isSevenDigits(normalized) {
		return nil, apierror.InvalidPostalError
	}

	cached, err := l.AddressRepo.FindByZipcode(normalized)
	if err != nil {
		log.Errorf("failed to read address cache for %s: %v", normalized, err)
		return nil, apierror.InternalServerError
	}
	if cached != nil {
		return toAddressResponse(cached, true), nil
	}

	address, err := l.ZipClient.Search(ctx, normalized)
	if errors.Is(err, zipcloud.ErrNotFound) {
		return nil, apierror.AddressNotFoundError
	}
	if err != nil {
		log.Errorf("postal lookup failed for %s: %v", normalized, err)
		return nil, apierror.InternalServerError
	}

	address.CachedAt = utils.NowUTC()
	if err := l.AddressRepo.Save(address); err != nil {
		// A failed cache write is not worth failing the lookup over.
		log.Warnf("failed to cache address for %s: %v", normalized, err)
	}
	return toAddressResponse(address, false), nil
}

func isSevenDigits(s string) bool {
	if len(s) != 7 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toAddressResponse(a *entity.AddressCache, cached bool) *contract.AddressResponse {
	return &contract.AddressResponse{
		Zipcode:     a.Zipcode,
		Prefecture:  a.Prefecture,
		City:        a.City,
		Town:        a.Town,
		FullAddress: a.Prefecture + a.City + a.Town,
		Cached:      cached,
	}
}
