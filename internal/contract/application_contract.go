package contract

type ApplicationCreateRequest struct {
	ApplicationTypeID int    `json:"application_type_id" validate:"required,min=1"`
	Status            string `json:"status" validate:"required,oneof=申請 未定"`
	SubmittedDate     string `json:"submitted_date" validate:"omitempty,datetime=2006-01-02"`
	ApprovedDate      string `json:"approved_date" validate:"omitempty,datetime=2006-01-02"`
	Notes             string `json:"notes" validate:"max=1000"`
}

type ApplicationResponse struct {
	ID                int    `json:"id"`
	ProjectID         int    `json:"project_id"`
	ApplicationTypeID int    `json:"application_type_id"`
	Status            string `json:"status"`
	SubmittedDate     string `json:"submitted_date,omitempty"`
	ApprovedDate      string `json:"approved_date,omitempty"`
	Notes             string `json:"notes,omitempty"`

	ApplicationType *ApplicationTypeResponse `json:"application_type,omitempty"`
}

type ApplicationTypeResponse struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
