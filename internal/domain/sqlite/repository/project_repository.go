package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kakunin/internal/domain/entity"
)

// projectPreloads joins every related entity when reading projects back.
var projectPreloads = []string{
	"Customer",
	"Site",
	"Building",
	"Applications.ApplicationType",
	"Financial",
	"Schedule",
}

type DefaultProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *DefaultProjectRepository {
	return &DefaultProjectRepository{db: db}
}

// FindPage returns one page of projects with their relations plus the
// total count under the same status filter. An empty or "all" status
// disables filtering.
func (d *DefaultProjectRepository) FindPage(offset, limit int, status string) ([]*entity.Project, int64, error) {
	counter := d.db.Model(&entity.Project{})
	if status != "" && status != "all" {
		counter = counter.Where("status = ?", status)
	}

	var total int64
	if err := counter.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := d.db.Model(&entity.Project{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	for _, preload := range projectPreloads {
		query = query.Preload(preload)
	}

	var projects []*entity.Project
	err := query.
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (d *DefaultProjectRepository) FindByID(id int) (*entity.Project, error) {
	query := d.db
	for _, preload := range projectPreloads {
		query = query.Preload(preload)
	}

	var project entity.Project
	err := query.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateAggregate writes a project and its optional related rows as one
// logical unit. The project row goes first so the related rows can carry
// its generated id; everything runs in a single transaction, so a failed
// related insert rolls the whole aggregate back instead of leaving a
// project with silently missing pieces.
func (d *DefaultProjectRepository) CreateAggregate(agg *entity.Aggregate) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(agg.Project).Error; err != nil {
			return err
		}

		if agg.Customer != nil {
			agg.Customer.ProjectID = agg.Project.ID
			if err := tx.Create(agg.Customer).Error; err != nil {
				return err
			}
		}
		if agg.Site != nil {
			agg.Site.ProjectID = agg.Project.ID
			if err := tx.Create(agg.Site).Error; err != nil {
				return err
			}
		}
		if agg.Building != nil {
			agg.Building.ProjectID = agg.Project.ID
			if err := tx.Create(agg.Building).Error; err != nil {
				return err
			}
		}
		if agg.Financial != nil {
			agg.Financial.ProjectID = agg.Project.ID
			if err := tx.Create(agg.Financial).Error; err != nil {
				return err
			}
		}
		if agg.Schedule != nil {
			agg.Schedule.ProjectID = agg.Project.ID
			if err := tx.Create(agg.Schedule).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *DefaultProjectRepository) Save(project *entity.Project) error {
	return d.db.Omit(clause.Associations).Save(project).Error
}

// Delete removes the project row only. Related rows are reconciled by
// the orphan sweeper, since the store does not enforce cascading FKs.
func (d *DefaultProjectRepository) Delete(project *entity.Project) error {
	return d.db.Delete(&entity.Project{}, project.ID).Error
}

func (d *DefaultProjectRepository) Count() (int64, error) {
	var total int64
	err := d.db.Model(&entity.Project{}).Count(&total).Error
	return total, err
}
