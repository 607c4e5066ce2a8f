package validation

import "time"

const maxAmountYen = 999_999_999_999

func Amount(amount *float64, label string) FieldResult {
	if amount == nil {
		return ok()
	}
	if *amount < 0 {
		return fail(label + "は0以上の値を入力してください")
	}
	if *amount > maxAmountYen {
		return fail(label + "は999,999,999,999円以下で入力してください")
	}
	return ok()
}

// SettlementDate never blocks: a future date is still valid but carries
// a warning so the UI can flag it.
func SettlementDate(date string) FieldResult {
	if date == "" {
		return ok()
	}
	parsed, err := parseDate(date)
	if err != nil {
		return ok()
	}
	if parsed.After(time.Now()) {
		return warn("未来の決済日が設定されています（警告）")
	}
	return ok()
}
