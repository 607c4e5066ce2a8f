package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"kakunin/internal/contract"
	"kakunin/internal/domain/entity"
	"kakunin/internal/utils"
	"kakunin/internal/utils/apierror"
)

type ApplicationRepository interface {
	FindByProjectID(projectID int) ([]*entity.Application, error)
	FindTypeByID(id int) (*entity.ApplicationType, error)
	Save(application *entity.Application) error
}

type DefaultApplicationService struct {
	ProjectRepo ProjectRepository
	AppRepo     ApplicationRepository
	Validate    *validator.Validate
}

func NewApplicationService(
	projectRepo ProjectRepository,
	appRepo ApplicationRepository,
	validate *validator.Validate,
) *DefaultApplicationService {
	return &DefaultApplicationService{
		ProjectRepo: projectRepo,
		AppRepo:     appRepo,
		Validate:    validate,
	}
}

func (a *DefaultApplicationService) GetApplications(projectID int) ([]*contract.ApplicationResponse, apierror.ErrorResponse) {
	project, err := a.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	if project == nil {
		return nil, apierror.NotFoundError
	}

	applications, err := a.AppRepo.FindByProjectID(projectID)
	if err != nil {
		log.Errorf("failed to fetch applications for project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ApplicationResponse, len(applications))
	for i, application := range applications {
		resp[i] = toApplicationResponse(application)
	}
	return resp, nil
}

func (a *DefaultApplicationService) CreateApplication(projectID int, req *contract.ApplicationCreateRequest) (*contract.ApplicationResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	project, err := a.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}
	if project == nil {
		return nil, apierror.NotFoundError
	}

	appType, err := a.AppRepo.FindTypeByID(req.ApplicationTypeID)
	if err != nil {
		log.Errorf("failed to fetch application type %d: %v", req.ApplicationTypeID, err)
		return nil, apierror.InternalServerError
	}
	if appType == nil {
		return nil, apierror.UnknownAppTypeError
	}
	if !appType.IsActive {
		return nil, apierror.InactiveAppTypeError
	}

	application := &entity.Application{
		ProjectID:         projectID,
		ApplicationTypeID: appType.ID,
		Status:            req.Status,
		SubmittedDate:     req.SubmittedDate,
		ApprovedDate:      req.ApprovedDate,
		Notes:             req.Notes,
	}

	if err := a.AppRepo.Save(application); err != nil {
		log.Errorf("failed to save application for project %d: %v", projectID, err)
		return nil, apierror.InternalServerError
	}

	application.ApplicationType = *appType
	return toApplicationResponse(application), nil
}
