package contract

type CustomerPayload struct {
	OwnerName    string `json:"owner_name"`
	OwnerKana    string `json:"owner_kana,omitempty"`
	OwnerZip     string `json:"owner_zip,omitempty"`
	OwnerAddress string `json:"owner_address,omitempty"`
	OwnerPhone   string `json:"owner_phone,omitempty"`
	JointName    string `json:"joint_name,omitempty"`
	JointKana    string `json:"joint_kana,omitempty"`
	ClientName   string `json:"client_name,omitempty"`
	ClientStaff  string `json:"client_staff,omitempty"`
}

type SitePayload struct {
	Address        string   `json:"address"`
	LandArea       *float64 `json:"land_area,omitempty"`
	CityPlan       string   `json:"city_plan,omitempty"`
	Zoning         string   `json:"zoning,omitempty"`
	FireZone       string   `json:"fire_zone,omitempty"`
	SlopeLimit     string   `json:"slope_limit,omitempty"`
	Setback        string   `json:"setback,omitempty"`
	OtherBuildings string   `json:"other_buildings,omitempty"`
	LandslideAlert string   `json:"landslide_alert,omitempty"`
	FloodZone      string   `json:"flood_zone,omitempty"`
	TsunamiZone    string   `json:"tsunami_zone,omitempty"`
}

type BuildingPayload struct {
	BuildingName     string   `json:"building_name,omitempty"`
	ConstructionType string   `json:"construction_type,omitempty"`
	PrimaryUse       string   `json:"primary_use,omitempty"`
	Structure        string   `json:"structure,omitempty"`
	Floors           string   `json:"floors,omitempty"`
	MaxHeight        *float64 `json:"max_height,omitempty"`
	TotalArea        *float64 `json:"total_area,omitempty"`
	BuildingArea     *float64 `json:"building_area,omitempty"`
}

type FinancialPayload struct {
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

	HasPermitApplication  bool `json:"has_permit_application,omitempty"`
	HasInspectionSchedule bool `json:"has_inspection_schedule,omitempty"`
	HasFoundationPlan     bool `json:"has_foundation_plan,omitempty"`
	HasHardwarePlan       bool `json:"has_hardware_plan,omitempty"`
	HasInvoice            bool `json:"has_invoice,omitempty"`
	HasEnergyCalculation  bool `json:"has_energy_calculation,omitempty"`
	HasSettlementData     bool `json:"has_settlement_data,omitempty"`
}

type SchedulePayload struct {
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

	HasPermitReturned bool `json:"has_permit_returned,omitempty"`
	HasReportSent     bool `json:"has_report_sent,omitempty"`
	HasItemsConfirmed bool `json:"has_items_confirmed,omitempty"`
}

// ProjectCreateRequest is the candidate aggregate submitted by the form.
// Status and InputDate are optional; the service fills in the defaults
// (事前相談, today) before validation.
type ProjectCreateRequest struct {
	ProjectName string            `json:"project_name"`
	Status      string            `json:"status,omitempty"`
	InputDate   string            `json:"input_date,omitempty"`
	Customer    *CustomerPayload  `json:"customer,omitempty"`
	Site        *SitePayload      `json:"site,omitempty"`
	Building    *BuildingPayload  `json:"building,omitempty"`
	Financial   *FinancialPayload `json:"financial,omitempty"`
	Schedule    *SchedulePayload  `json:"schedule,omitempty"`
}

// ProjectUpdateRequest patches project columns only; related entities
// are updated through their own endpoints.
type ProjectUpdateRequest struct {
	ProjectName *string `json:"project_name,omitempty"`
	Status      *string `json:"status,omitempty"`
	InputDate   *string `json:"input_date,omitempty"`
}

type CustomerResponse struct {
	ID           int    `json:"id"`
	ProjectID    int    `json:"project_id"`
	OwnerName    string `json:"owner_name"`
	OwnerKana    string `json:"owner_kana,omitempty"`
	OwnerZip     string `json:"owner_zip,omitempty"`
	OwnerAddress string `json:"owner_address,omitempty"`
	OwnerPhone   string `json:"owner_phone,omitempty"`
	JointName    string `json:"joint_name,omitempty"`
	JointKana    string `json:"joint_kana,omitempty"`
	ClientName   string `json:"client_name,omitempty"`
	ClientStaff  string `json:"client_staff,omitempty"`
}

type SiteResponse struct {
	ID             int      `json:"id"`
	ProjectID      int      `json:"project_id"`
	Address        string   `json:"address"`
	LandArea       *float64 `json:"land_area,omitempty"`
	CityPlan       string   `json:"city_plan,omitempty"`
	Zoning         string   `json:"zoning,omitempty"`
	FireZone       string   `json:"fire_zone,omitempty"`
	SlopeLimit     string   `json:"slope_limit,omitempty"`
	Setback        string   `json:"setback,omitempty"`
	OtherBuildings string   `json:"other_buildings,omitempty"`
	LandslideAlert string   `json:"landslide_alert,omitempty"`
	FloodZone      string   `json:"flood_zone,omitempty"`
	TsunamiZone    string   `json:"tsunami_zone,omitempty"`
}

type BuildingResponse struct {
	ID               int      `json:"id"`
	ProjectID        int      `json:"project_id"`
	BuildingName     string   `json:"building_name,omitempty"`
	ConstructionType string   `json:"construction_type,omitempty"`
	PrimaryUse       string   `json:"primary_use,omitempty"`
	Structure        string   `json:"structure,omitempty"`
	Floors           string   `json:"floors,omitempty"`
	MaxHeight        *float64 `json:"max_height,omitempty"`
	TotalArea        *float64 `json:"total_area,omitempty"`
	BuildingArea     *float64 `json:"building_area,omitempty"`
}

type ProjectResponse struct {
	ID           int                    `json:"id"`
	ProjectCode  string                 `json:"project_code"`
	ProjectName  string                 `json:"project_name"`
	Status       string                 `json:"status"`
	InputDate    string                 `json:"input_date"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
	Customer     *CustomerResponse      `json:"customer,omitempty"`
	Site         *SiteResponse          `json:"site,omitempty"`
	Building     *BuildingResponse      `json:"building,omitempty"`
	Applications []*ApplicationResponse `json:"applications,omitempty"`
	Financial    *FinancialResponse     `json:"financial,omitempty"`
	Schedule     *ScheduleResponse      `json:"schedule,omitempty"`
}

type ProjectListResponse struct {
	Projects []*ProjectResponse `json:"projects"`
	Total    int64              `json:"total"`
	Skip     int                `json:"skip"`
	Limit    int                `json:"limit"`
}
