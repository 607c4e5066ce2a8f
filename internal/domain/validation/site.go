package validation

import (
	"strings"
	"unicode/utf8"
)

const maxAreaSqm = 999999.99

func SiteAddress(address string) FieldResult {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return fail("建設地住所は必須です")
	}
	if utf8.RuneCountInString(trimmed) > 500 {
		return fail("建設地住所は500文字以内で入力してください")
	}
	return ok()
}

func LandArea(area *float64) FieldResult {
	if area == nil {
		return ok()
	}
	if *area <= 0 {
		return fail("敷地面積は0より大きい値を入力してください")
	}
	if *area > maxAreaSqm {
		return fail("敷地面積は999999.99㎡以下で入力してください")
	}
	return ok()
}
