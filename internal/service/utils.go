package service

import (
	"kakunin/internal/contract"
	"kakunin/internal/domain/entity"
	"kakunin/internal/utils"
)

func toProjectResponse(project *entity.Project) *contract.ProjectResponse {
	resp := &contract.ProjectResponse{
		ID:          project.ID,
		ProjectCode: project.ProjectCode,
		ProjectName: project.ProjectName,
		Status:      string(project.Status),
		InputDate:   project.InputDate,
		CreatedAt:   utils.FormatEpoch(project.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(project.UpdatedAt),
		Customer:    toCustomerResponse(project.Customer),
		Site:        toSiteResponse(project.Site),
		Building:    toBuildingResponse(project.Building),
		Financial:   toFinancialResponse(project.Financial, nil),
		Schedule:    toScheduleResponse(project.Schedule),
	}

	for i := range project.Applications {
		resp.Applications = append(resp.Applications, toApplicationResponse(&project.Applications[i]))
	}
	return resp
}

func toCustomerResponse(c *entity.Customer) *contract.CustomerResponse {
	if c == nil {
		return nil
	}
	return &contract.CustomerResponse{
		ID:           c.ID,
		ProjectID:    c.ProjectID,
		OwnerName:    c.OwnerName,
		OwnerKana:    c.OwnerKana,
		OwnerZip:     c.OwnerZip,
		OwnerAddress: c.OwnerAddress,
		OwnerPhone:   c.OwnerPhone,
		JointName:    c.JointName,
		JointKana:    c.JointKana,
		ClientName:   c.ClientName,
		ClientStaff:  c.ClientStaff,
	}
}

func toSiteResponse(s *entity.Site) *contract.SiteResponse {
	if s == nil {
		return nil
	}
	return &contract.SiteResponse{
		ID:             s.ID,
		ProjectID:      s.ProjectID,
		Address:        s.Address,
		LandArea:       s.LandArea,
		CityPlan:       s.CityPlan,
		Zoning:         s.Zoning,
		FireZone:       s.FireZone,
		SlopeLimit:     s.SlopeLimit,
		Setback:        s.Setback,
		OtherBuildings: s.OtherBuildings,
		LandslideAlert: s.LandslideAlert,
		FloodZone:      s.FloodZone,
		TsunamiZone:    s.TsunamiZone,
	}
}

func toBuildingResponse(b *entity.Building) *contract.BuildingResponse {
	if b == nil {
		return nil
	}
	return &contract.BuildingResponse{
		ID:               b.ID,
		ProjectID:        b.ProjectID,
		BuildingName:     b.BuildingName,
		ConstructionType: b.ConstructionType,
		PrimaryUse:       b.PrimaryUse,
		Structure:        b.Structure,
		Floors:           b.Floors,
		MaxHeight:        b.MaxHeight,
		TotalArea:        b.TotalArea,
		BuildingArea:     b.BuildingArea,
	}
}

func toFinancialResponse(f *entity.Financial, warnings []string) *contract.FinancialResponse {
	if f == nil {
		return nil
	}
	return &contract.FinancialResponse{
		ID:               f.ID,
		ProjectID:        f.ProjectID,
		ContractPrice:    f.ContractPrice,
		EstimateAmount:   f.EstimateAmount,
		ConstructionCost: f.ConstructionCost,
		TaxRate:          f.TaxRate,
		JuchuNote:        f.JuchuNote,
		SettlementDate:   f.SettlementDate,
		SettlementStaff:  f.SettlementStaff,
		SettlementAmount: f.SettlementAmount,
		PaymentTerms:     f.PaymentTerms,
		SettlementNote:   f.SettlementNote,

		HasPermitApplication:  f.HasPermitApplication,
		HasInspectionSchedule: f.HasInspectionSchedule,
		HasFoundationPlan:     f.HasFoundationPlan,
		HasHardwarePlan:       f.HasHardwarePlan,
		HasInvoice:            f.HasInvoice,
		HasEnergyCalculation:  f.HasEnergyCalculation,
		HasSettlementData:     f.HasSettlementData,

		Warnings: warnings,
	}
}

func toScheduleResponse(s *entity.Schedule) *contract.ScheduleResponse {
	if s == nil {
		return nil
	}
	return &contract.ScheduleResponse{
		ID:                     s.ID,
		ProjectID:              s.ProjectID,
		ReinforcementScheduled: s.ReinforcementScheduled,
		ReinforcementActual:    s.ReinforcementActual,
		InterimScheduled:       s.InterimScheduled,
		InterimActual:          s.InterimActual,
		CompletionScheduled:    s.CompletionScheduled,
		CompletionActual:       s.CompletionActual,
		InspectionDate:         s.InspectionDate,
		InspectionResult:       s.InspectionResult,
		Corrections:            s.Corrections,
		FinalReportDate:        s.FinalReportDate,
		CompletionNote:         s.CompletionNote,
		ChangeMemo:             s.ChangeMemo,

		HasPermitReturned: s.HasPermitReturned,
		HasReportSent:     s.HasReportSent,
		HasItemsConfirmed: s.HasItemsConfirmed,
	}
}

func toApplicationResponse(a *entity.Application) *contract.ApplicationResponse {
	resp := &contract.ApplicationResponse{
		ID:                a.ID,
		ProjectID:         a.ProjectID,
		ApplicationTypeID: a.ApplicationTypeID,
		Status:            a.Status,
		SubmittedDate:     a.SubmittedDate,
		ApprovedDate:      a.ApprovedDate,
		Notes:             a.Notes,
	}

	if a.ApplicationType.ID != 0 {
		resp.ApplicationType = &contract.ApplicationTypeResponse{
			ID:          a.ApplicationType.ID,
			Code:        a.ApplicationType.Code,
			Name:        a.ApplicationType.Name,
			Description: a.ApplicationType.Description,
			IsActive:    a.ApplicationType.IsActive,
		}
	}
	return resp
}

func toCustomerEntity(c *contract.CustomerPayload) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		OwnerName:    c.OwnerName,
		OwnerKana:    c.OwnerKana,
		OwnerZip:     c.OwnerZip,
		OwnerAddress: c.OwnerAddress,
		OwnerPhone:   c.OwnerPhone,
		JointName:    c.JointName,
		JointKana:    c.JointKana,
		ClientName:   c.ClientName,
		ClientStaff:  c.ClientStaff,
	}
}

func toSiteEntity(s *contract.SitePayload) *entity.Site {
	if s == nil {
		return nil
	}
	return &entity.Site{
		Address:        s.Address,
		LandArea:       s.LandArea,
		CityPlan:       s.CityPlan,
		Zoning:         s.Zoning,
		FireZone:       s.FireZone,
		SlopeLimit:     s.SlopeLimit,
		Setback:        s.Setback,
		OtherBuildings: s.OtherBuildings,
		LandslideAlert: s.LandslideAlert,
		FloodZone:      s.FloodZone,
		TsunamiZone:    s.TsunamiZone,
	}
}

func toBuildingEntity(b *contract.BuildingPayload) *entity.Building {
	if b == nil {
		return nil
	}
	return &entity.Building{
		BuildingName:     b.BuildingName,
		ConstructionType: b.ConstructionType,
		PrimaryUse:       b.PrimaryUse,
		Structure:        b.Structure,
		Floors:           b.Floors,
		MaxHeight:        b.MaxHeight,
		TotalArea:        b.TotalArea,
		BuildingArea:     b.BuildingArea,
	}
}

func toFinancialEntity(f *contract.FinancialPayload) *entity.Financial {
	if f == nil {
		return nil
	}
	return &entity.Financial{
		ContractPrice:    f.ContractPrice,
		EstimateAmount:   f.EstimateAmount,
		ConstructionCost: f.ConstructionCost,
		TaxRate:          f.TaxRate,
		JuchuNote:        f.JuchuNote,
		SettlementDate:   f.SettlementDate,
		SettlementStaff:  f.SettlementStaff,
		SettlementAmount: f.SettlementAmount,
		PaymentTerms:     f.PaymentTerms,
		SettlementNote:   f.SettlementNote,

		HasPermitApplication:  f.HasPermitApplication,
		HasInspectionSchedule: f.HasInspectionSchedule,
		HasFoundationPlan:     f.HasFoundationPlan,
		HasHardwarePlan:       f.HasHardwarePlan,
		HasInvoice:            f.HasInvoice,
		HasEnergyCalculation:  f.HasEnergyCalculation,
		HasSettlementData:     f.HasSettlementData,
	}
}

func toScheduleEntity(s *contract.SchedulePayload) *entity.Schedule {
	if s == nil {
		return nil
	}
	return &entity.Schedule{
		ReinforcementScheduled: s.ReinforcementScheduled,
		ReinforcementActual:    s.ReinforcementActual,
		InterimScheduled:       s.InterimScheduled,
		InterimActual:          s.InterimActual,
		CompletionScheduled:    s.CompletionScheduled,
		CompletionActual:       s.CompletionActual,
		InspectionDate:         s.InspectionDate,
		InspectionResult:       s.InspectionResult,
		Corrections:            s.Corrections,
		FinalReportDate:        s.FinalReportDate,
		CompletionNote:         s.CompletionNote,
		ChangeMemo:             s.ChangeMemo,

		HasPermitReturned: s.HasPermitReturned,
		HasReportSent:     s.HasReportSent,
		HasItemsConfirmed: s.HasItemsConfirmed,
	}
}
