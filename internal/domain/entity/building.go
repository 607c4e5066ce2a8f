package entity

type Building struct {
	ID               int `gorm:"primaryKey"`
	ProjectID        int `gorm:"not null;index"` // References: projects(id)
	BuildingName     string
	ConstructionType string
	PrimaryUse       string
	Structure        string
	Floors           string
	MaxHeight        *float64
	TotalArea        *float64
	BuildingArea     *float64
}
