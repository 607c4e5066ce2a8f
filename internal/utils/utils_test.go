package utils

import (
	"regexp"
	"testing"
)

func TestFormatEpoch(t *testing.T) {
	got := FormatEpoch(1700000000000)
	if got != "2023-11-14T22:13:20Z" {
		t.Fatalf("unexpected timestamp: %q", got)
	}
}

func TestToday_Format(t *testing.T) {
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(Today()) {
		t.Fatalf("Today() returned %q", Today())
	}
}

func TestNormalizePostalCode(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already bare", "1234567", "1234567"},
		{"hyphenated", "123-4567", "1234567"},
		{"zenkaku digits", "１２３４５６７", "1234567"},
		{"zenkaku digits with zenkaku hyphen", "１２３－４５６７", "1234567"},
		{"spaces", " 123 4567 ", "1234567"},
		{"long vowel as separator", "123ー4567", "1234567"},
		{"too short passes through", "12345", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePostalCode(tc.input); got != tc.want {
				t.Fatalf("NormalizePostalCode(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	type payload struct {
		Name  string
		Kana  *string
		Tags  []string
		Count int
	}

	kana := "  ヤマダ  "
	p := &payload{
		Name:  "  山田太郎  ",
		Kana:  &kana,
		Tags:  []string{" a ", "b "},
		Count: 3,
	}
	Sanitize(p)

	if p.Name != "山田太郎" {
		t.Fatalf("Name not trimmed: %q", p.Name)
	}
	if *p.Kana != "ヤマダ" {
		t.Fatalf("Kana not trimmed: %q", *p.Kana)
	}
	if p.Tags[0] != "a" || p.Tags[1] != "b" {
		t.Fatalf("Tags not trimmed: %v", p.Tags)
	}
	if p.Count != 3 {
		t.Fatalf("non-string field touched")
	}
}

func TestSanitize_NilStringPointer(t *testing.T) {
	type payload struct {
		Kana *string
	}
	p := &payload{}
	Sanitize(p) // must not panic
	if p.Kana != nil {
		t.Fatalf("nil pointer should stay nil")
	}
}
