package repository

import (
	"errors"

	"gorm.io/gorm"

	"kakunin/internal/domain/entity"
)

type DefaultFinancialRepository struct {
	db *gorm.DB
}

func NewFinancialRepository(db *gorm.DB) *DefaultFinancialRepository {
	return &DefaultFinancialRepository{db: db}
}

func (d *DefaultFinancialRepository) FindByProjectID(projectID int) (*entity.Financial, error) {
	var financial entity.Financial
	err := d.db.Where("project_id = ?", projectID).First(&financial).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &financial, nil
}

func (d *DefaultFinancialRepository) Save(financial *entity.Financial) error {
	return d.db.Save(financial).Error
}

type DefaultScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *DefaultScheduleRepository {
	return &DefaultScheduleRepository{db: db}
}

func (d *DefaultScheduleRepository) FindByProjectID(projectID int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := d.db.Where("project_id = ?", projectID).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (d *DefaultScheduleRepository) Save(schedule *entity.Schedule) error {
	return d.db.Save(schedule).Error
}
