package entity

type Site struct {
	ID             int    `gorm:"primaryKey"`
	ProjectID      int    `gorm:"not null;index"` // References: projects(id)
	Address        string `gorm:"not null"`
	LandArea       *float64
	CityPlan       string
	Zoning         string
	FireZone       string
	SlopeLimit     string
	Setback        string
	OtherBuildings string
	LandslideAlert string
	FloodZone      string
	TsunamiZone    string
}
