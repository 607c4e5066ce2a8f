package repository

import (
	"errors"

	"gorm.io/gorm"

	"kakunin/internal/domain/entity"
)

type DefaultAddressCacheRepository struct {
	db *gorm.DB
}

func NewAddressCacheRepository(db *gorm.DB) *DefaultAddressCacheRepository {
	return &DefaultAddressCacheRepository{db: db}
}

func (d *DefaultAddressCacheRepository) FindByZipcode(zipcode string) (*entity.AddressCache, error) {
	var cached entity.AddressCache
	err := d.db.Where("zipcode = ?", zipcode).First(&cached).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &cached, nil
}

func (d *DefaultAddressCacheRepository) Save(cached *entity.AddressCache) error {
	return d.db.Save(cached).Error
}

func (d *DefaultAddressCacheRepository) DeleteExpired(before int64) error {
	return d.db.
		Where("cached_at < ?", before).
		Delete(&entity.AddressCache{}).Error
}
