package entity

type Financial struct {
	ID               int `gorm:"primaryKey"`
	ProjectID        int `gorm:"not null;index"` // References: projects(id)
	ContractPrice    *float64
	EstimateAmount   *float64
	ConstructionCost *float64
	TaxRate          *float64
	JuchuNote        string
	SettlementDate   string // YYYY-MM-DD
	SettlementStaff  string
	SettlementAmount *float64
	PaymentTerms     string
	SettlementNote   string

	HasPermitApplication  bool `gorm:"not null;default:false"`
	HasInspectionSchedule bool `gorm:"not null;default:false"`
	HasFoundationPlan     bool `gorm:"not null;default:false"`
	HasHardwarePlan       bool `gorm:"not null;default:false"`
	HasInvoice            bool `gorm:"not null;default:false"`
	HasEnergyCalculation  bool `gorm:"not null;default:false"`
	HasSettlementData     bool `gorm:"not null;default:false"`
}
