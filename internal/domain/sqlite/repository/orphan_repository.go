package repository

import (
	"gorm.io/gorm"

	"kakunin/internal/domain/entity"
)

// DefaultOrphanRepository reconciles related rows whose owning project
// is gone. Deleting a project removes only the project row; the store
// does not cascade, so the sweeper cleans up after the fact.
type DefaultOrphanRepository struct {
	db *gorm.DB
}

func NewOrphanRepository(db *gorm.DB) *DefaultOrphanRepository {
	return &DefaultOrphanRepository{db: db}
}

// DeleteOrphans removes every related row pointing at a non-existent
// project and reports how many rows were swept per run.
func (d *DefaultOrphanRepository) DeleteOrphans() (int64, error) {
	models := []any{
		&entity.Customer{},
		&entity.Site{},
		&entity.Building{},
		&entity.Application{},
		&entity.Financial{},
		&entity.Schedule{},
	}

	var total int64
	for _, model := range models {
		result := d.db.
			Where("project_id NOT IN (?)", d.db.Model(&entity.Project{}).Select("id")).
			Delete(model)
		if result.Error != nil {
			return total, result.Error
		}
		total += result.RowsAffected
	}
	return total, nil
}
