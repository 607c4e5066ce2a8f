package validation

import "kakunin/internal/contract"

// Aggregate validates a candidate aggregate in one pass. Absent
// sub-objects are skipped entirely; partial aggregates are legal. The
// order of the emitted error list is fixed (project fields first, then
// customer, site, building, the cross-field area check, and finally
// financial fields) because UIs display it top-to-bottom.
func Aggregate(req *contract.ProjectCreateRequest) *Result {
	result := &Result{}

	result.add(ProjectName(req.ProjectName))
	result.add(Status(req.Status))
	result.add(InputDate(req.InputDate))

	if c := req.Customer; c != nil {
		result.add(OwnerName(c.OwnerName))
		result.add(Kana(c.OwnerKana, "施主フリガナ"))
		result.add(PostalCode(c.OwnerZip))
		result.add(PhoneNumber(c.OwnerPhone))
	}

	if s := req.Site; s != nil {
		result.add(SiteAddress(s.Address))
		result.add(LandArea(s.LandArea))
	}

	if b := req.Building; b != nil {
		result.add(MaxHeight(b.MaxHeight))
		result.add(Area(b.BuildingArea, "建築面積"))
		result.add(Area(b.TotalArea, "延床面積"))
		result.add(BuildingAreas(b.BuildingArea, b.TotalArea))
	}

	if f := req.Financial; f != nil {
		addFinancial(result, f.ContractPrice, f.EstimateAmount, f.ConstructionCost, f.SettlementAmount, f.SettlementDate)
	}

	return result
}

// ProjectPatch validates only the fields present in an update request.
// Full-aggregate revalidation is deliberately not performed.
func ProjectPatch(req *contract.ProjectUpdateRequest) *Result {
	result := &Result{}

	if req.ProjectName != nil {
		result.add(ProjectName(*req.ProjectName))
	}
	if req.Status != nil {
		result.add(Status(*req.Status))
	}
	if req.InputDate != nil {
		result.add(InputDate(*req.InputDate))
	}
	return result
}

// FinancialPatch validates only the fields present in a financial
// update. A future settlement date surfaces as a warning, not an error.
func FinancialPatch(req *contract.FinancialUpdateRequest) *Result {
	result := &Result{}

	var date string
	if req.SettlementDate != nil {
		date = *req.SettlementDate
	}
	addFinancial(result, req.ContractPrice, req.EstimateAmount, req.ConstructionCost, req.SettlementAmount, date)
	return result
}

func addFinancial(result *Result, contractPrice, estimate, cost, settlement *float64, settlementDate string) {
	result.add(Amount(contractPrice, "契約金額"))
	result.add(Amount(estimate, "見積金額"))
	result.add(Amount(cost, "工事費用"))
	result.add(Amount(settlement, "決済金額"))
	result.add(SettlementDate(settlementDate))
}
