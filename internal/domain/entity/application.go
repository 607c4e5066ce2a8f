package entity

const (
	ApplicationStatusFiled     = "申請"
	ApplicationStatusUndecided = "未定"
)

// ApplicationType is a fixed catalog row (確認申請, 配筋検査申請, ...) seeded at startup.
type ApplicationType struct {
	ID          int    `gorm:"primaryKey"`
	Code        string `gorm:"not null;uniqueIndex"`
	Name        string `gorm:"not null"`
	Description string
	IsActive    bool `gorm:"not null;default:true"`
}

type Application struct {
	ID                int    `gorm:"primaryKey"`
	ProjectID         int    `gorm:"not null;index"` // References: projects(id)
	ApplicationTypeID int    `gorm:"not null"`       // References: application_types(id)
	Status            string `gorm:"not null"`
	SubmittedDate     string
	ApprovedDate      string
	Notes             string

	// Relations
	ApplicationType ApplicationType `gorm:"foreignKey:ApplicationTypeID;references:ID"`
}
