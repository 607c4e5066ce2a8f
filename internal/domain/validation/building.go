package validation

const maxHeightMeters = 999.99

func MaxHeight(height *float64) FieldResult {
	if height == nil {
		return ok()
	}
	if *height <= 0 {
		return fail("最高高さは0より大きい値を入力してください")
	}
	if *height > maxHeightMeters {
		return fail("最高高さは999.99m以下で入力してください")
	}
	return ok()
}

// Area checks a generic building area against the shared ceiling.
// The label (建築面積, 延床面積, ...) is embedded into the message.
func Area(area *float64, label string) FieldResult {
	if area == nil {
		return ok()
	}
	if *area <= 0 {
		return fail(label + "は0より大きい値を入力してください")
	}
	if *area > maxAreaSqm {
		return fail(label + "は999999.99㎡以下で入力してください")
	}
	return ok()
}

// BuildingAreas is the one cross-field rule: the building footprint may
// not exceed the total floor area. Skipped unless both are supplied.
func BuildingAreas(buildingArea, totalArea *float64) FieldResult {
	if buildingArea == nil || totalArea == nil {
		return ok()
	}
	if *buildingArea > *totalArea {
		return fail("建築面積は延床面積以下である必要があります")
	}
	return ok()
}
