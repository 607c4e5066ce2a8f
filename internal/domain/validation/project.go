package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"kakunin/internal/domain/entity"
)

var forbiddenNameChars = []string{"<", ">", `"`, "'", "&"}

func ProjectName(name string) FieldResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fail("プロジェクト名は必須です")
	}
	if utf8.RuneCountInString(trimmed) > 200 {
		return fail("プロジェクト名は200文字以内で入力してください")
	}
	for _, ch := range forbiddenNameChars {
		if strings.Contains(name, ch) {
			return fail("プロジェクト名に使用できない文字が含まれています")
		}
	}
	return ok()
}

func Status(status string) FieldResult {
	if entity.Status(status).Valid() {
		return ok()
	}
	labels := make([]string, len(entity.AllStatuses))
	for i, s := range entity.AllStatuses {
		labels[i] = string(s)
	}
	return fail("ステータスは " + strings.Join(labels, ", ") + " のいずれかである必要があります")
}

// InputDate accepts YYYY-MM-DD or RFC 3339 and rejects dates after
// today. Time of day is zeroed for the comparison.
func InputDate(date string) FieldResult {
	if date == "" {
		return ok()
	}
	parsed, perr := parseDate(date)
	if perr != nil {
		return fail("入力日の日付形式が正しくありません")
	}

	today := truncateToDay(time.Now())
	if truncateToDay(parsed).After(today) {
		return fail("入力日は今日以前の日付を指定してください")
	}
	return ok()
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, date)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
