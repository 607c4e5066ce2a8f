package contract

// FinancialUpdateRequest patches the financial record of a project.
// Only non-nil fields are written.
type FinancialUpdateRequest struct {
	ContractPrice    *float64 `json:"contract_price"`
	EstimateAmount   *float64 `json:"estimate_amount"`
	ConstructionCost *float64 `json:"construction_cost"`
	TaxRate          *float64 `json:"tax_rate"`
	JuchuNote        *string  `json:"juchu_note"`
	SettlementDate   *string  `json:"settlement_date" validate:"omitempty,datetime=2006-01-02"`
	SettlementStaff  *string  `json:"settlement_staff"`
	SettlementAmount *float64 `json:"settlement_amount"`
	PaymentTerms     *string  `json:"payment_terms"`
	SettlementNote   *string  `json:"settlement_note"`

	HasPermitApplication  *bool `json:"has_permit_application"`
	HasInspectionSchedule *bool `json:"has_inspection_schedule"`
	HasFoundationPlan     *bool `json:"has_foundation_plan"`
	HasHardwarePlan       *bool `json:"has_hardware_plan"`
	HasInvoice            *bool `json:"has_invoice"`
	HasEnergyCalculation  *bool `json:"has_energy_calculation"`
	HasSettlementData     *bool `json:"has_settlement_data"`
}

type FinancialResponse struct {
	ID               int      `json:"id"`
	ProjectID        int      `json:"project_id"`
	ContractPrice    *float64 `json:"contract_price,omitempty"`
	EstimateAmount   *float64 `json:"estimate_amount,omitempty"`
	ConstructionCost *float64 `json:"construction_cost,omitempty"`
	TaxRate          *float64 `json:"tax_rate,omitempty"`
	JuchuNote        string   `json:"juchu_note,omitempty"`
	SettlementDate   string   `json:"settlement_date,omitempty"`
	SettlementStaff  string   `json:"settlement_staff,omitempty"`
	SettlementAmount *float64 `json:"settlement_amount,omitempty"`
	PaymentTerms     string   `json:"payment_terms,omitempty"`
	SettlementNote   string   `json:"settlement_note,omitempty"`

	HasPermitApplication  bool `json:"has_permit_application"`
	HasInspectionSchedule bool `json:"has_inspection_schedule"`
	HasFoundationPlan     bool `json:"has_foundation_plan"`
	HasHardwarePlan       bool `json:"has_hardware_plan"`
	HasInvoice            bool `json:"has_invoice"`
	HasEnergyCalculation  bool `json:"has_energy_calculation"`
	HasSettlementData     bool `json:"has_settlement_data"`

	Warnings []string `json:"warnings,omitempty"`
}

// ScheduleUpdateRequest patches the inspection schedule of a project.
type ScheduleUpdateRequest struct {
	ReinforcementScheduled *string `json:"reinforcement_scheduled" validate:"omitempty,datetime=2006-01-02"`
	ReinforcementActual    *string `json:"reinforcement_actual" validate:"omitempty,datetime=2006-01-02"`
	InterimScheduled       *string `json:"interim_scheduled" validate:"omitempty,datetime=2006-01-02"`
	InterimActual          *string `json:"interim_actual" validate:"omitempty,datetime=2006-01-02"`
	CompletionScheduled    *string `json:"completion_scheduled" validate:"omitempty,datetime=2006-01-02"`
	CompletionActual       *string `json:"completion_actual" validate:"omitempty,datetime=2006-01-02"`
	InspectionDate         *string `json:"inspection_date" validate:"omitempty,datetime=2006-01-02"`
	InspectionResult       *string `json:"inspection_result"`
	Corrections            *string `json:"corrections"`
	FinalReportDate        *string `json:"final_report_date" validate:"omitempty,datetime=2006-01-02"`
	CompletionNote         *string `json:"completion_note"`
	ChangeMemo             *string `json:"change_memo"`

	HasPermitReturned *bool `json:"has_permit_returned"`
	HasReportSent     *bool `json:"has_report_sent"`
	HasItemsConfirmed *bool `json:"has_items_confirmed"`
}

type ScheduleResponse struct {
	ID                     int    `json:"id"`
	ProjectID              int    `json:"project_id"`
	ReinforcementScheduled string `json:"reinforcement_scheduled,omitempty"`
	ReinforcementActual    string `json:"reinforcement_actual,omitempty"`
	InterimScheduled       string `json:"interim_scheduled,omitempty"`
	InterimActual          string `json:"interim_actual,omitempty"`
	CompletionScheduled    string `json:"completion_scheduled,omitempty"`
	CompletionActual       string `json:"completion_actual,omitempty"`
	InspectionDate         string `json:"inspection_date,omitempty"`
	InspectionResult       string `json:"inspection_result,omitempty"`
	Corrections            string `json:"corrections,omitempty"`
	FinalReportDate        string `json:"final_report_date,omitempty"`
	CompletionNote         string `json:"completion_note,omitempty"`
	ChangeMemo             string `json:"change_memo,omitempty"`

	HasPermitReturned bool `json:"has_permit_returned"`
	HasReportSent     bool `json:"has_report_sent"`
	HasItemsConfirmed bool `json:"has_items_confirmed"`
}
