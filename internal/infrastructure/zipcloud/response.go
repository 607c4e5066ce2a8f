package zipcloud

import "kakunin/internal/domain/entity"

type searchResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Results []addressResult `json:"results"`
}

type addressResult struct {
	Zipcode  string `json:"zipcode"`
	Address1 string `json:"address1"` // prefecture
	Address2 string `json:"address2"` // city
	Address3 string `json:"address3"` // town
}

func (a *addressResult) ToDomain() *entity.AddressCache {
	return &entity.AddressCache{
		Zipcode:    a.Zipcode,
		Prefecture: a.Address1,
		City:       a.Address2,
		Town:       a.Address3,
	}
}
