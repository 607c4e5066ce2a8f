package service

import (
	"context"
	"net/http"
	"testing"

	"kakunin/internal/domain/entity"
)

type fakeAddressRepo struct {
	cached map[string]*entity.AddressCache
	saved  []*entity.AddressCache
}

func (r *fakeAddressRepo) FindByZipcode(zipcode string) (*entity.AddressCache, error) {
	return r.cached[zipcode], nil
}

func (r *fakeAddressRepo) Save(cached *entity.AddressCache) error {
	r.saved = append(r.saved, cached)
	return nil
}

func TestGetAddressByPostalCode_InvalidCodes(t *testing.T) {
	repo := &fakeAddressRepo{cached: map[string]*entity.AddressCache{}}
	svc := NewLookupService(nil, repo)

	for _, code := range []string{"", "12345", "123456789", "abcdefg", "12-34567x"} {
		_, apierr := svc.GetAddressByPostalCode(context.Background(), code)
		if apierr == nil || apierr.Code() != http.StatusBadRequest {
			t.Fatalf("code %q: expected 400, got %v", code, apierr)
		}
	}
}

func TestGetAddressByPostalCode_CacheHit(t *testing.T) {
	repo := &fakeAddressRepo{cached: map[string]*entity.AddressCache{
		"1600022": {Zipcode: "1600022", Prefecture: "東京都", City: "新宿区", Town: "新宿"},
	}}
	// A nil client proves the external API is never consulted on a hit.
	svc := NewLookupService(nil, repo)

	resp, apierr := svc.GetAddressByPostalCode(context.Background(), "160-0022")
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}

	if !resp.Cached {
		t.Fatalf("expected cached=true")
	}
	if resp.FullAddress != "東京都新宿区新宿" {
		t.Fatalf("unexpected full address: %q", resp.FullAddress)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("cache hit must not re-save")
	}
}

func TestGetAddressByPostalCode_NormalizesBeforeLookup(t *testing.T) {
	repo := &fakeAddressRepo{cached: map[string]*entity.AddressCache{
		"1600022": {Zipcode: "1600022", Prefecture: "東京都", City: "新宿区"},
	}}
	svc := NewLookupService(nil, repo)

	for _, code := range []string{"1600022", "160-0022", "１６０－００２２"} {
		resp, apierr := svc.GetAddressByPostalCode(context.Background(), code)
		if apierr != nil {
			t.Fatalf("code %q: unexpected error: %v", code, apierr)
		}
		if resp.Zipcode != "1600022" {
			t.Fatalf("code %q: unexpected zipcode %q", code, resp.Zipcode)
		}
	}
}
