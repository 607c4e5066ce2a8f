package utils

import (
	"reflect"
	"strings"
	"time"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// Today returns the current date as YYYY-MM-DD, the format every date
// column in the store uses.
func Today() string {
	return time.Now().Format("2006-01-02")
}

var zipSeparators = strings.NewReplacer("-", "", "ー", "", "－", "", "−", "", " ", "", "　", "")

// NormalizePostalCode strips hyphens and spaces and converts full-width
// digits to half-width. The result is not guaranteed to be 7 digits;
// callers validate that separately.
func NormalizePostalCode(code string) string {
	stripped := zipSeparators.Replace(code)
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return '0' + (r - '０')
		}
		return r
	}, stripped)
}

// Sanitize trims every string field (and *string / []string field) of
// the given struct pointer in place.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(strings.TrimSpace(field.String()))

		case reflect.Ptr:
			if field.Type().Elem().Kind() == reflect.String && !field.IsNil() {
				elem := field.Elem()
				elem.SetString(strings.TrimSpace(elem.String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(strings.TrimSpace(field.Index(j).String()))
				}
			}
		}
	}
}
