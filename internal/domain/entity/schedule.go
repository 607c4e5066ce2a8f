package entity

type Schedule struct {
	ID                     int `gorm:"primaryKey"`
	ProjectID              int `gorm:"not null;index"` // References: projects(id)
	ReinforcementScheduled string
	ReinforcementActual    string
	InterimScheduled       string
	InterimActual          string
	CompletionScheduled    string
	CompletionActual       string
	InspectionDate         string
	InspectionResult       string
	Corrections            string
	FinalReportDate        string
	CompletionNote         string
	ChangeMemo             string

	HasPermitReturned bool `gorm:"not null;default:false"`
	HasReportSent     bool `gorm:"not null;default:false"`
	HasItemsConfirmed bool `gorm:"not null;default:false"`
}
