package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	kanaPattern     = regexp.MustCompile(`^[あ-んア-ンヴー\s　]*$`)
	sevenDigits     = regexp.MustCompile(`^\d{7}$`)
	zipWithHyphen   = regexp.MustCompile(`^\d{3}-\d{4}$`)
	digitsOnly      = regexp.MustCompile(`^\d+$`)
	phoneSeparators = strings.NewReplacer("-", "", "(", "", ")", "", "（", "", "）", "", " ", "", "　", "")
)

func OwnerName(name string) FieldResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fail("施主名は必須です")
	}
	if utf8.RuneCountInString(trimmed) > 100 {
		return fail("施主名は100文字以内で入力してください")
	}
	return ok()
}

// Kana allows hiragana, katakana and spaces only. Optional field.
func Kana(kana, label string) FieldResult {
	if kana == "" {
		return ok()
	}
	if utf8.RuneCountInString(kana) > 100 {
		return fail(label + "は100文字以内で入力してください")
	}
	if !kanaPattern.MatchString(kana) {
		return fail(label + "はひらがな・カタカナで入力してください")
	}
	return ok()
}

// PostalCode accepts a bare 7-digit code or the 3-4 hyphenated form.
// "123-4567" is valid, "12-34567" is not.
func PostalCode(code string) FieldResult {
	if code == "" {
		return ok()
	}
	if sevenDigits.MatchString(code) || zipWithHyphen.MatchString(code) {
		return ok()
	}
	return fail("郵便番号は7桁の数字で入力してください（例：123-4567）")
}

// PhoneNumber strips hyphens, parentheses and spaces, then requires an
// all-digit remainder of 10 or 11 digits.
func PhoneNumber(phone string) FieldResult {
	if phone == "" {
		return ok()
	}
	stripped := phoneSeparators.Replace(phone)
	if !digitsOnly.MatchString(stripped) {
		return fail("電話番号は数字、ハイフン、括弧のみ使用可能です")
	}
	if len(stripped) < 10 || len(stripped) > 11 {
		return fail("電話番号は10桁または11桁で入力してください")
	}
	return ok()
}
