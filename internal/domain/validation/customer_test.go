package validation

import (
	"strings"
	"testing"
)

func TestOwnerName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain name", "山田太郎", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"at limit", strings.Repeat("あ", 100), true},
		{"over limit", strings.Repeat("あ", 101), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OwnerName(tc.input)
			if got.Valid != tc.valid {
				t.Fatalf("OwnerName(%q): valid=%v, want %v (msg=%q)", tc.input, got.Valid, tc.valid, got.Message)
			}
		})
	}
}

func TestKana(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty is fine", "", true},
		{"hiragana", "やまだたろう", true},
		{"katakana", "ヤマダタロウ", true},
		{"mixed with spaces", "ヤマダ　タロウ", true},
		{"long vowel mark", "スズキイチロー", true},
		{"kanji rejected", "山田", false},
		{"latin rejected", "yamada", false},
		{"over limit", strings.Repeat("ア", 101), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Kana(tc.input, "施主フリガナ")
			if got.Valid != tc.valid {
				t.Fatalf("Kana(%q): valid=%v, want %v (msg=%q)", tc.input, got.Valid, tc.valid, got.Message)
			}
		})
	}
}

func TestKana_MessageCarriesLabel(t *testing.T) {
	got := Kana("abc", "連名フリガナ")
	if got.Valid {
		t.Fatalf("expected invalid result")
	}
	if !strings.HasPrefix(got.Message, "連名フリガナ") {
		t.Fatalf("message should start with label, got %q", got.Message)
	}
}

func TestPostalCode(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty is fine", "", true},
		{"bare seven digits", "1234567", true},
		{"hyphenated", "123-4567", true},
		{"hyphen in wrong place", "12-34567", false},
		{"too short", "123456", false},
		{"too long", "12345678", false},
		{"letters", "123-456a", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PostalCode(tc.input)
			if got.Valid != tc.valid {
				t.Fatalf("PostalCode(%q): valid=%v, want %v (msg=%q)", tc.input, got.Valid, tc.valid, got.Message)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty is fine", "", true},
		{"landline with hyphens", "03-1234-5678", true},
		{"mobile with hyphens", "090-1234-5678", true},
		{"bare digits", "0312345678", true},
		{"parentheses", "(03)1234-5678", true},
		{"zenkaku parentheses", "（03）1234-5678", true},
		{"nine digits", "031234567", false},
		{"twelve digits", "090123456789", false},
		{"letters", "03-abcd-5678", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PhoneNumber(tc.input)
			if got.Valid != tc.valid {
				t.Fatalf("PhoneNumber(%q): valid=%v, want %v (msg=%q)", tc.input, got.Valid, tc.valid, got.Message)
			}
		})
	}
}
