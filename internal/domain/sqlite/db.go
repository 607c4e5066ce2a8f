package sqlite

import (
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"kakunin/internal/domain/entity"
)

func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", "kakunin.db")
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Project{},
		&entity.Customer{},
		&entity.Site{},
		&entity.Building{},
		&entity.ApplicationType{},
		&entity.Application{},
		&entity.Financial{},
		&entity.Schedule{},
		&entity.AddressCache{},
	)
	if err != nil {
		return nil, err
	}

	if err := seedApplicationTypes(db); err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// seedApplicationTypes inserts the fixed application catalog on first
// boot. Existing rows are left untouched.
func seedApplicationTypes(db *gorm.DB) error {
	types := []entity.ApplicationType{
		{Code: "KENCHIKU", Name: "建築確認申請"},
		{Code: "HAIKIN", Name: "配筋検査申請"},
		{Code: "CHUUKAN", Name: "中間検査申請"},
		{Code: "KANRYOU", Name: "完了検査申請"},
		{Code: "HENKOU", Name: "計画変更申請"},
		{Code: "KEIBI", Name: "軽微な変更届"},
		{Code: "SHINPO", Name: "進捗報告書"},
		{Code: "KANRI", Name: "工事監理報告書"},
	}

	for _, t := range types {
		t.IsActive = true

		var existing entity.ApplicationType
		err := db.Where("code = ?", t.Code).
			Attrs(t).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}
