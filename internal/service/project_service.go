package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"kakunin/internal/contract"
	"kakunin/internal/domain/entity"
	"kakunin/internal/domain/validation"
	"kakunin/internal/utils"
	"kakunin/internal/utils/apierror"
	"kakunin/internal/utils/uid"
)

const DefaultPageSize = 20

type ProjectRepository interface {
	FindPage(offset, limit int, status string) ([]*entity.Project, int64, error)
	FindByID(id int) (*entity.Project, error)
	CreateAggregate(agg *entity.Aggregate) error
	Save(project *entity.Project) error
	Delete(project *entity.Project) error
	Count() (int64, error)
}

type DefaultProjectService struct {
	ProjectRepo ProjectRepository
}

func NewProjectService(projectRepo ProjectRepository) *DefaultProjectService {
	return &DefaultProjectService{ProjectRepo: projectRepo}
}

func (p *DefaultProjectService) ListProjects(page, limit int, status string) (*contract.ProjectListResponse, apierror.ErrorResponse) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	offset := (page - 1) * limit

	projects, total, err := p.ProjectRepo.FindPage(offset, limit, status)
	if err != nil {
		log.Errorf("failed to fetch projects: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ProjectResponse, len(projects))
	for i, project := range projects {
		resp[i] = toProjectResponse(project)
	}

	return &contract.ProjectListResponse{
		Projects: resp,
		Total:    total,
		Skip:     offset,
		Limit:    limit,
	}, nil
}

func (p *DefaultProjectService) GetProject(id int) (*contract.ProjectResponse, apierror.ErrorResponse) {
	project, err := p.ProjectRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if project == nil {
		return nil, apierror.NotFoundError
	}
	return toProjectResponse(project), nil
}

// CreateProject validates the candidate aggregate as one unit, then
// writes the project row and whichever related rows were submitted.
// Validation failures come back as the full ordered error list.
func (p *DefaultProjectService) CreateProject(req *contract.ProjectCreateRequest) (*contract.ProjectResponse, apierror.ErrorResponse) {
	sanitizeCreateRequest(req)

	// Form defaults, applied before validation so the candidate that is
	// checked is the candidate that gets written.
	if req.Status == "" {
		req.Status = string(entity.StatusPreConsultation)
	}
	if req.InputDate == "" {
		req.InputDate = utils.Today()
	}

	result := validation.Aggregate(req)
	if !result.Valid() {
		return nil, apierror.NewValidation(result.Errors, result.Warnings)
	}
	for _, warning := range result.Warnings {
		log.Warnf("project submission warning: %s", warning)
	}

	now := utils.NowUTC()
	agg := &entity.Aggregate{
		Project: &entity.Project{
			ProjectCode: generateProjectCode(time.Now()),
			ProjectName: req.ProjectName,
			Status:      entity.Status(req.Status),
			InputDate:   req.InputDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Customer:  toCustomerEntity(req.Customer),
		Site:      toSiteEntity(req.Site),
		Building:  toBuildingEntity(req.Building),
		Financial: toFinancialEntity(req.Financial),
		Schedule:  toScheduleEntity(req.Schedule),
	}

	opID := uuid.NewString()
	log.Infof("creating project aggregate op=%s code=%s", opID, agg.Project.ProjectCode)

	if err := p.ProjectRepo.CreateAggregate(agg); err != nil {
		log.Errorf("failed to create project aggregate op=%s: %v", opID, err)
		return nil, apierror.InternalServerError
	}

	// The created rows already carry their generated ids, so the
	// confirmation response is built straight from the aggregate.
	project := agg.Project
	project.Customer = agg.Customer
	project.Site = agg.Site
	project.Building = agg.Building
	project.Financial = agg.Financial
	project.Schedule = agg.Schedule
	return toProjectResponse(project), nil
}

// UpdateProject patches project columns only; fields absent from the
// request are left untouched and not revalidated.
func (p *DefaultProjectService) UpdateProject(id int, req *contract.ProjectUpdateRequest) (*contract.ProjectResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)

	result := validation.ProjectPatch(req)
	if !result.Valid() {
		return nil, apierror.NewValidation(result.Errors, result.Warnings)
	}

	project, err := p.ProjectRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if project == nil {
		return nil, apierror.NotFoundError
	}

	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.Status != nil {
		project.Status = entity.Status(*req.Status)
	}
	if req.InputDate != nil {
		project.InputDate = *req.InputDate
	}

	project.UpdatedAt = utils.NowUTC()
	if err := p.ProjectRepo.Save(project); err != nil {
		log.Errorf("failed to update project %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toProjectResponse(project), nil
}

func (p *DefaultProjectService) DeleteProject(id int) apierror.ErrorResponse {
	project, err := p.ProjectRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch project %d: %v", id, err)
		return apierror.InternalServerError
	}

	if project == nil {
		return apierror.NotFoundError
	}

	if err := p.ProjectRepo.Delete(project); err != nil {
		log.Errorf("failed to delete project %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// generateProjectCode yields P<year>-<6 digits>. The suffix comes from
// a snowflake id, so back-to-back submissions within the same
// millisecond still receive distinct codes.
func generateProjectCode(now time.Time) string {
	return fmt.Sprintf("P%d-%06d", now.Year(), uid.Generate()%1_000_000)
}

func sanitizeCreateRequest(req *contract.ProjectCreateRequest) {
	utils.Sanitize(req)
	if req.Customer != nil {
		utils.Sanitize(req.Customer)
	}
	if req.Site != nil {
		utils.Sanitize(req.Site)
	}
	if req.Building != nil {
		utils.Sanitize(req.Building)
	}
	if req.Financial != nil {
		utils.Sanitize(req.Financial)
	}
	if req.Schedule != nil {
		utils.Sanitize(req.Schedule)
	}
}
