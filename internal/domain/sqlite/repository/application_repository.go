package repository

import (
	"errors"

	"gorm.io/gorm"

	"kakunin/internal/domain/entity"
)

type DefaultApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{db: db}
}

func (d *DefaultApplicationRepository) FindByProjectID(projectID int) ([]*entity.Application, error) {
	var applications []*entity.Application
	err := d.db.
		Preload("ApplicationType").
		Where("project_id = ?", projectID).
		Order("id").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (d *DefaultApplicationRepository) FindTypeByID(id int) (*entity.ApplicationType, error) {
	var appType entity.ApplicationType
	err := d.db.First(&appType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &appType, nil
}

func (d *DefaultApplicationRepository) Save(application *entity.Application) error {
	return d.db.Save(application).Error
}
