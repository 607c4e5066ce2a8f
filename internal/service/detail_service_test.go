package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"kakunin/internal/contract"
	"kakunin/internal/domain/entity"
)

type fakeFinancialRepo struct {
	records map[int]*entity.Financial
}

func (r *fakeFinancialRepo) FindByProjectID(projectID int) (*entity.Financial, error) {
	return r.records[projectID], nil
}

func (r *fakeFinancialRepo) Save(financial *entity.Financial) error {
	if financial.ID == 0 {
		financial.ID = len(r.records) + 1
	}
	r.records[financial.ProjectID] = financial
	return nil
}

type fakeScheduleRepo struct {
	records map[int]*entity.Schedule
}

func (r *fakeScheduleRepo) FindByProjectID(projectID int) (*entity.Schedule, error) {
	return r.records[projectID], nil
}

func (r *fakeScheduleRepo) Save(schedule *entity.Schedule) error {
	if schedule.ID == 0 {
		schedule.ID = len(r.records) + 1
	}
	r.records[schedule.ProjectID] = schedule
	return nil
}

func newDetailFixture(t *testing.T) (*DefaultDetailService, int) {
	t.Helper()
	projectRepo := newFakeProjectRepo()
	svc := NewDetailService(
		projectRepo,
		&fakeFinancialRepo{records: map[int]*entity.Financial{}},
		&fakeScheduleRepo{records: map[int]*entity.Schedule{}},
		validator.New(),
	)
	return svc, seedProject(t, projectRepo)
}

func TestUpdateFinancial_CreatesRecordOnFirstWrite(t *testing.T) {
	svc, projectID := newDetailFixture(t)

	price := 25_000_000.0
	resp, apierr := svc.UpdateFinancial(projectID, &contract.FinancialUpdateRequest{ContractPrice: &price})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}

	if resp.ProjectID != projectID {
		t.Fatalf("record not bound to project: %+v", resp)
	}
	if resp.ContractPrice == nil || *resp.ContractPrice != price {
		t.Fatalf("contract price not written: %+v", resp.ContractPrice)
	}
}

func TestUpdateFinancial_PatchKeepsExistingFields(t *testing.T) {
	svc, projectID := newDetailFixture(t)

	price := 25_000_000.0
	if _, apierr := svc.UpdateFinancial(projectID, &contract.FinancialUpdateRequest{ContractPrice: &price}); apierr != nil {
		t.Fatalf("first write failed: %v", apierr)
	}

	note := "着手金50%"
	resp, apierr := svc.UpdateFinancial(projectID, &contract.FinancialUpdateRequest{JuchuNote: &note})
	if apierr != nil {
		t.Fatalf("second write failed: %v", apierr)
	}

	if resp.ContractPrice == nil || *resp.ContractPrice != price {
		t.Fatalf("earlier field lost on patch: %+v", resp.ContractPrice)
	}
	if resp.JuchuNote != note {
		t.Fatalf("note not written: %q", resp.JuchuNote)
	}
}

func TestUpdateFinancial_FutureSettlementWarns(t *testing.T) {
	svc, projectID := newDetailFixture(t)

	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	resp, apierr := svc.UpdateFinancial(projectID, &contract.FinancialUpdateRequest{SettlementDate: &future})
	if apierr != nil {
		t.Fatalf("future settlement must not block: %v", apierr)
	}
	if len(resp.Warnings) != 1 {
		t.Fatalf("expected one warning, got: %v", resp.Warnings)
	}
	if resp.SettlementDate != future {
		t.Fatalf("date not written: %q", resp.SettlementDate)
	}
}

func TestUpdateFinancial_Rejections(t *testing.T) {
	svc, projectID := newDetailFixture(t)

	negative := -1.0
	if _, apierr := svc.UpdateFinancial(projectID, &contract.FinancialUpdateRequest{ContractPrice: &negative}); apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Fatalf("negative amount should 400, got %v", apierr)
	}

	bad := "2026/01/01"
	if _, apierr := svc.UpdateFinancial(projectID, &contract.FinancialUpdateRequest{SettlementDate: &bad}); apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Fatalf("malformed date should 400, got %v", apierr)
	}

	price := 1000.0
	if _, apierr := svc.UpdateFinancial(999, &contract.FinancialUpdateRequest{ContractPrice: &price}); apierr == nil || apierr.Code() != http.StatusNotFound {
		t.Fatalf("unknown project should 404, got %v", apierr)
	}
}

func TestUpdateSchedule(t *testing.T) {
	svc, projectID := newDetailFixture(t)

	date := "2026-03-15"
	passed := "合格"
	resp, apierr := svc.UpdateSchedule(projectID, &contract.ScheduleUpdateRequest{
		ReinforcementScheduled: &date,
		InspectionResult:       &passed,
	})
	if apierr != nil {
		t.Fatalf("unexpected error: %v", apierr)
	}
	if resp.ReinforcementScheduled != date || resp.InspectionResult != passed {
		t.Fatalf("fields not written: %+v", resp)
	}

	bad := "15-03-2026"
	if _, apierr = svc.UpdateSchedule(projectID, &contract.ScheduleUpdateRequest{InterimScheduled: &bad}); apierr == nil || apierr.Code() != http.StatusBadRequest {
		t.Fatalf("malformed date should 400, got %v", apierr)
	}

	if _, apierr = svc.UpdateSchedule(999, &contract.ScheduleUpdateRequest{}); apierr == nil || apierr.Code() != http.StatusNotFound {
		t.Fatalf("unknown project should 404, got %v", apierr)
	}
}
