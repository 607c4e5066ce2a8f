package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"kakunin/internal/contract"
	"kakunin/internal/domain/entity"
	"kakunin/internal/domain/validation"
	"kakunin/internal/utils"
	"kakunin/internal/utils/apierror"
)

type FinancialRepository interface {
	FindByProjectID(projectID int) (*entity.Financial, error)
	Save(financial *entity.Financial) error
}

type ScheduleRepository interface {
	FindByProjectID(projectID int) (*entity.Schedule, error)
	Save(schedule *entity.Schedule) error
}

// DefaultDetailService handles partial updates of the financial and
// schedule records hanging off a project. The record is created on
// first write if the project does not have one yet.
type DefaultDetailService struct {
	ProjectRepo   ProjectRepository
	FinancialRepo FinancialRepository
	ScheduleRepo  ScheduleRepository
	Validate      *validator.Validate
}

func NewDetailService(
	projectRepo ProjectRepository,
	financialRepo FinancialRepository,
	scheduleRepo ScheduleRepository,
	validate *validator.Validate,
) *DefaultDetailService {
	return &DefaultDetailService{
		ProjectRepo:   projectRepo,
		FinancialRepo: financialRepo,
		ScheduleRepo:  scheduleRepo,
		Validate:      validate,
	}
}

func (d *DefaultDetailService) UpdateFinancial(projectID int, req *contract.FinancialUpdateRequest) (*contract.FinancialResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	result := validation.FinancialPatch(req)
	if !result.Valid() {
		return nil, apierror.NewValidation(result.Errors, result.Warnings)
	}
	for _, warning := range result.Warnings {
		log.Warnf("financial update warning for project %d: %s", projectID, warning)
	}

	project, err := d.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	if project == nil {
		return nil, apierror.NotFoundError
	}

	financial, err := d.FinancialRepo.FindByProjectID(projectID)
	if err != nil {
		log.Errorf("failed to fetch financial record for project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	if financial == nil {
		financial = &entity.Financial{ProjectID: projectID}
	}

	applyFinancialPatch(financial, req)

	if err := d.FinancialRepo.Save(financial); err != nil {
		log.Errorf("failed to save financial record for project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	return toFinancialResponse(financial, result.Warnings), nil
}

func (d *DefaultDetailService) UpdateSchedule(projectID int, req *contract.ScheduleUpdateRequest) (*contract.ScheduleResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	project, err := d.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	if project == nil {
		return nil, apierror.NotFoundError
	}

	schedule, err := d.ScheduleRepo.FindByProjectID(projectID)
	if err != nil {
		log.Errorf("failed to fetch schedule for project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	if schedule == nil {
		schedule = &entity.Schedule{ProjectID: projectID}
	}

	applySchedulePatch(schedule, req)

	if err := d.ScheduleRepo.Save(schedule); err != nil {
		log.Errorf("failed to save schedule for project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	return toScheduleResponse(schedule), nil
}

func applyFinancialPatch(financial *entity.Financial, req *contract.FinancialUpdateRequest) {
	if req.ContractPrice != nil {
		financial.ContractPrice = req.ContractPrice
	}
	if req.EstimateAmount != nil {
		financial.EstimateAmount = req.EstimateAmount
	}
	if req.ConstructionCost != nil {
		financial.ConstructionCost = req.ConstructionCost
	}
	if req.TaxRate != nil {
		financial.TaxRate = req.TaxRate
	}
	if req.JuchuNote != nil {
		financial.JuchuNote = *req.JuchuNote
	}
	if req.SettlementDate != nil {
		financial.SettlementDate = *req.SettlementDate
	}
	if req.SettlementStaff != nil {
		financial.SettlementStaff = *req.SettlementStaff
	}
	if req.SettlementAmount != nil {
		financial.SettlementAmount = req.SettlementAmount
	}
	if req.PaymentTerms != nil {
		financial.PaymentTerms = *req.PaymentTerms
	}
	if req.SettlementNote != nil {
		financial.SettlementNote = *req.SettlementNote
	}

	if req.HasPermitApplication != nil {
		financial.HasPermitApplication = *req.HasPermitApplication
	}
	if req.HasInspectionSchedule != nil {
		financial.HasInspectionSchedule = *req.HasInspectionSchedule
	}
	if req.HasFoundationPlan != nil {
		financial.HasFoundationPlan = *req.HasFoundationPlan
	}
	if req.HasHardwarePlan != nil {
		financial.HasHardwarePlan = *req.HasHardwarePlan
	}
	if req.HasInvoice != nil {
		financial.HasInvoice = *req.HasInvoice
	}
	if req.HasEnergyCalculation != nil {
		financial.HasEnergyCalculation = *req.HasEnergyCalculation
	}
	if req.HasSettlementData != nil {
		financial.HasSettlementData = *req.HasSettlementData
	}
}

func applySchedulePatch(schedule *entity.Schedule, req *contract.ScheduleUpdateRequest) {
	if req.ReinforcementScheduled != nil {
		schedule.ReinforcementScheduled = *req.ReinforcementScheduled
	}
	if req.ReinforcementActual != nil {
		schedule.ReinforcementActual = *req.ReinforcementActual
	}
	if req.InterimScheduled != nil {
		schedule.InterimScheduled = *req.InterimScheduled
	}
	if req.InterimActual != nil {
		schedule.InterimActual = *req.InterimActual
	}
	if req.CompletionScheduled != nil {
		schedule.CompletionScheduled = *req.CompletionScheduled
	}
	if req.CompletionActual != nil {
		schedule.CompletionActual = *req.CompletionActual
	}
	if req.InspectionDate != nil {
		schedule.InspectionDate = *req.InspectionDate
	}
	if req.InspectionResult != nil {
		schedule.InspectionResult = *req.InspectionResult
	}
	if req.Corrections != nil {
		schedule.Corrections = *req.Corrections
	}
	if req.FinalReportDate != nil {
		schedule.FinalReportDate = *req.FinalReportDate
	}
	if req.CompletionNote != nil {
		schedule.CompletionNote = *req.CompletionNote
	}
	if req.ChangeMemo != nil {
		schedule.ChangeMemo = *req.ChangeMemo
	}

	if req.HasPermitReturned != nil {
		schedule.HasPermitReturned = *req.HasPermitReturned
	}
	if req.HasReportSent != nil {
		schedule.HasReportSent = *req.HasReportSent
	}
	if req.HasItemsConfirmed != nil {
		schedule.HasItemsConfirmed = *req.HasItemsConfirmed
	}
}
